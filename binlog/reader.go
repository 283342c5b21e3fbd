package binlog

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Reader decodes Frames previously written by a Writer, in the order they
// were appended.
type Reader struct {
	zr  *zstd.Decoder
	dec *msgpack.Decoder
}

// NewReader wraps r with a zstd decoder and msgpack stream decoder.
func NewReader(r io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("binlog: create zstd reader: %w", err)
	}

	return &Reader{
		zr:  zr,
		dec: msgpack.NewDecoder(zr),
	}, nil
}

// Next decodes the following frame. It returns io.EOF once the stream is
// exhausted.
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("binlog: decode frame: %w", err)
	}
	return f, nil
}

// All decodes every remaining frame in the stream.
func (r *Reader) All() ([]Frame, error) {
	var frames []Frame
	for {
		f, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, err
		}
		frames = append(frames, f)
	}
}

// Close releases the zstd decoder's resources. It does not close the
// underlying io.Reader.
func (r *Reader) Close() error {
	r.zr.Close()
	return nil
}
