package watch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setup(t *testing.T) (string, *Watcher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a\n1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return path, w
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherReportsWrite(t *testing.T) {
	path, w := setup(t)
	if err := os.WriteFile(path, []byte("a\n2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ev := waitEvent(t, w)
	if ev.Path != w.Path() {
		t.Errorf("Event.Path = %q, want %q", ev.Path, w.Path())
	}
	if !ev.Op.Has(OpWrite) && !ev.Op.Has(OpCreate) {
		t.Errorf("Event.Op = %v, want write", ev.Op)
	}
}

func TestWatcherCoalesces(t *testing.T) {
	path, w := setup(t)
	for i := range 5 {
		if err := os.WriteFile(path, []byte{byte('0' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	waitEvent(t, w)
	select {
	case ev := <-w.Events():
		t.Errorf("unexpected second event %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path, w := setup(t)
	other := filepath.Join(filepath.Dir(path), "other.csv")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event for sibling: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherSeesAtomicSave(t *testing.T) {
	path, w := setup(t)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("a\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	if ev := waitEvent(t, w); !ev.Op.Has(OpCreate) && !ev.Op.Has(OpRename) && !ev.Op.Has(OpWrite) {
		t.Errorf("Event.Op = %v, want create or rename", ev.Op)
	}
}

func TestWatcherClose(t *testing.T) {
	_, w := setup(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("Events() not closed")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("New() error = %v, want fs.ErrNotExist", err)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{0, "none"},
		{OpWrite, "write"},
		{OpCreate | OpRemove, "create|remove"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
