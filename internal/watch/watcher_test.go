package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatal("events channel closed unexpectedly")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for watcher event")
	}
	return Event{}
}

func TestWatcherReportsModification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	if err := os.WriteFile(path, []byte("home:\n  title: Home\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	w := NewWatcher(path, 10*time.Millisecond)
	defer w.Stop()

	// move the mtime well past the recorded baseline
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	evt := waitEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("event error: %v", evt.Err)
	}
	if evt.Path != path {
		t.Fatalf("event path: got %q", evt.Path)
	}
}

func TestWatcherReportsMissingFileOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	w := NewWatcher(path, 10*time.Millisecond)
	defer w.Stop()

	evt := waitEvent(t, w)
	if evt.Err == nil {
		t.Fatal("expected stat error event")
	}

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected second event for the same failure: %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	w := NewWatcher(path, 10*time.Millisecond)
	w.Stop()
	w.Wait()

	if _, ok := <-w.Events(); ok {
		t.Fatal("events channel still open after Wait")
	}
}
