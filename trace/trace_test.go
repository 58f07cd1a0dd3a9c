package trace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestWriterStampsSessionAndSequence(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if w.Session() == uuid.Nil {
		t.Fatal("Expected non-nil session id")
	}

	recs := []Record{
		{AtMs: 1000, Op: "start", From: "idle", To: "running", RemainingMs: 30000},
		{AtMs: 6000, Op: "open", From: "running", To: "opened", RemainingMs: 25000},
		{AtMs: 7000, Op: "select", From: "running", To: "running", RemainingMs: 24000, Err: "rejected"},
	}
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	got, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("Expected %d records, got %d", len(recs), len(got))
	}

	for i, rec := range got {
		if rec.Session != w.Session() {
			t.Errorf("record %d: session %v, want %v", i, rec.Session, w.Session())
		}
		if rec.Seq != uint64(i+1) {
			t.Errorf("record %d: seq %d, want %d", i, rec.Seq, i+1)
		}
		if rec.Op != recs[i].Op || rec.From != recs[i].From || rec.To != recs[i].To {
			t.Errorf("record %d: got %+v, want %+v", i, rec, recs[i])
		}
		if rec.AtMs != recs[i].AtMs || rec.RemainingMs != recs[i].RemainingMs || rec.Err != recs[i].Err {
			t.Errorf("record %d: got %+v, want %+v", i, rec, recs[i])
		}
	}
}

func TestWriterDropsAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if err := w.Write(Record{Op: "start"}); err != nil {
		t.Fatalf("Write after close returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no bytes after close, got %d", buf.Len())
	}
}

func TestCreateAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	for i := 0; i < 2; i++ {
		w, err := Create(path)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := w.Write(Record{Op: "select", To: "idle"}); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	got, err := ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 records across sessions, got %d", len(got))
	}
	if got[0].Session == got[1].Session {
		t.Error("Expected distinct session ids per writer")
	}
}

func TestCreateBadPath(t *testing.T) {
	if _, err := Create(filepath.Join(t.TempDir(), "missing", "dir", "x.cbor")); err == nil {
		t.Error("Expected error for unreachable path")
	}
}

func TestReadAllTruncated(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(Record{Op: "start"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data := buf.Bytes()
	got, err := ReadAll(bytes.NewReader(data[:len(data)-1]))
	if err == nil {
		t.Error("Expected error for truncated record")
	}
	if len(got) != 0 {
		t.Errorf("Expected no complete records, got %d", len(got))
	}
}
