package binlog

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Writer appends Frames to an underlying stream, msgpack-encoded and
// zstd-compressed. Every frame written through one Writer carries the same
// session id, so frames from different navengine run invocations can be
// told apart. The id does not affect where the stream is written.
type Writer struct {
	session uuid.UUID
	seq     uint64

	zw  *zstd.Encoder
	enc *msgpack.Encoder
}

// NewWriter wraps w with a zstd encoder and msgpack stream encoder, and
// mints one fresh session id shared by every frame this Writer produces.
func NewWriter(w io.Writer) (*Writer, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("binlog: create zstd writer: %w", err)
	}

	return &Writer{
		session: uuid.New(),
		zw:      zw,
		enc:     msgpack.NewEncoder(zw),
	}, nil
}

// Session returns the id this Writer tags every frame with.
func (w *Writer) Session() uuid.UUID {
	return w.session
}

// Append encodes f and writes it to the stream. Session and Seq are
// stamped by the Writer; any values the caller set on those fields are
// overwritten.
func (w *Writer) Append(f Frame) error {
	f.Session = w.session
	f.Seq = w.seq
	w.seq++

	if err := w.enc.Encode(&f); err != nil {
		return fmt.Errorf("binlog: encode frame %d: %w", f.Seq, err)
	}
	return nil
}

// Close flushes and closes the zstd stream. It does not close the
// underlying io.Writer.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		return fmt.Errorf("binlog: close zstd writer: %w", err)
	}
	return nil
}
