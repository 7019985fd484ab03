// Package watch polls the page tree manifest for changes so the running
// simulator can rebuild its tree without a restart.
package watch

import (
	"context"
	"os"
	"sync"
	"time"
)

// Event reports a manifest change or a failed probe.
type Event struct {
	Path    string
	ModTime time.Time
	Err     error
}

// Watcher polls a file's modification time at a fixed interval and
// publishes an event whenever it moves. The first probe only records the
// baseline, so an unchanged file never produces an event.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that probes path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current probe
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	throttle := newThrottle(w.interval / 2)
	var last time.Time
	var lastErr string

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	probe := func(first bool) bool {
		throttle.wait()
		info, err := os.Stat(w.path)
		if err != nil {
			// report each distinct failure once instead of flooding
			if err.Error() == lastErr {
				return true
			}
			lastErr = err.Error()
			return emit(Event{Path: w.path, Err: err})
		}
		lastErr = ""
		if info.ModTime().Equal(last) {
			return true
		}
		changed := !last.IsZero() && !first
		last = info.ModTime()
		if !changed {
			return true
		}
		return emit(Event{Path: w.path, ModTime: info.ModTime()})
	}

	if !probe(true) {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !probe(false) {
				return
			}
		}
	}
}
