package binlog

import (
	"bytes"
	"io"
	"testing"

	"github.com/aeronav/wpnav/nav"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	frames := []Frame{
		{Now: 1_000_000, Item: nav.Item{NavCmd: nav.CmdTakeoff, Z: -20}},
		{Now: 1_100_000, Item: nav.Item{NavCmd: nav.CmdWaypoint, X: 50, Y: 10}, Reached: true},
		{Now: 1_200_000, Item: nav.Item{NavCmd: nav.CmdLoiterToAlt}, MissionFailure: "unable to reach heading within timeout"},
	}

	for _, f := range frames {
		if err := w.Append(f); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("compressed stream is empty")
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	got, err := r.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	if len(got) != len(frames) {
		t.Fatalf("got %d frames, want %d", len(got), len(frames))
	}

	session := w.Session()
	for i, f := range got {
		if f.Session != session {
			t.Errorf("frame %d session = %v, want %v", i, f.Session, session)
		}
		if f.Seq != uint64(i) {
			t.Errorf("frame %d seq = %d, want %d", i, f.Seq, i)
		}
		if f.Now != frames[i].Now || f.Item.NavCmd != frames[i].Item.NavCmd {
			t.Errorf("frame %d = %+v, want %+v", i, f, frames[i])
		}
		if f.MissionFailure != frames[i].MissionFailure {
			t.Errorf("frame %d MissionFailure = %q, want %q", i, f.MissionFailure, frames[i].MissionFailure)
		}
	}
}

func TestReader_EOFOnEmptyStream(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next on empty stream = %v, want io.EOF", err)
	}
}

func TestWriter_DistinctSessionsPerWriter(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	w1, _ := NewWriter(&buf1)
	w2, _ := NewWriter(&buf2)

	if w1.Session() == w2.Session() {
		t.Error("two independent writers minted the same session id")
	}
}
