package trace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileServiceLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.trace")
	svc := NewFileService(path)

	if svc.Writer() != nil {
		t.Fatal("Expected no writer before Start")
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	w := svc.Writer()
	if w == nil {
		t.Fatal("Expected writer after Start")
	}
	if err := svc.Start(); err != nil || svc.Writer() != w {
		t.Error("Second Start should keep the open writer")
	}

	if err := w.Write(Record{Op: "start", From: "idle", To: "running"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Second Stop should be a no-op, got %v", err)
	}
	if svc.Writer() != nil {
		t.Error("Expected no writer after Stop")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	recs, err := ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Op != "start" {
		t.Errorf("Expected one start record, got %+v", recs)
	}
}

func TestFileServiceStartFails(t *testing.T) {
	svc := NewFileService(filepath.Join(t.TempDir(), "missing", "dir", "session.trace"))
	if err := svc.Start(); err == nil {
		t.Error("Expected Start to fail for a missing directory")
	}
	if svc.Writer() != nil {
		t.Error("Expected no writer after failed Start")
	}
}
