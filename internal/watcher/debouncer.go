package watcher

import (
	"log/slog"
	"sync"
	"time"
)

// Debouncer coalesces bursts of file events so one save-spree triggers a
// single corpus re-analysis. Events for the same path within the window
// merge pairwise: a create followed by modifies is still a create, a create
// undone by a delete vanishes, a modify ending in a delete is a delete, and
// delete-then-create (the editor atomic-replace pattern) is reported as a
// modify.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]FileEvent
	timer   *time.Timer
	output  chan []FileEvent
	stopped bool
}

// NewDebouncer creates a debouncer that emits one batch per quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]FileEvent),
		output:  make(chan []FileEvent, 4),
	}
}

// Add folds an event into the pending batch and re-arms the flush timer.
func (d *Debouncer) Add(event FileEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if prev, ok := d.pending[event.Path]; ok {
		op, keep := mergeOps(prev.Operation, event.Operation)
		if !keep {
			delete(d.pending, event.Path)
		} else {
			event.Operation = op
			d.pending[event.Path] = event
		}
	} else {
		d.pending[event.Path] = event
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

// mergeOps collapses two consecutive operations on the same path. The second
// return is false when the pair cancels out and the path should be dropped
// from the batch.
func mergeOps(prev, next Operation) (Operation, bool) {
	switch {
	case prev == OpCreate && next == OpModify:
		return OpCreate, true
	case prev == OpCreate && next == OpDelete:
		return OpCreate, false
	case prev == OpDelete && next == OpCreate:
		return OpModify, true
	default:
		return next, true
	}
}

// flush hands the pending batch to the consumer. The send never blocks: a
// consumer stuck mid-analysis loses the batch, and the next file change
// starts a fresh one.
func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.pending) == 0 {
		return
	}

	batch := make([]FileEvent, 0, len(d.pending))
	for _, ev := range d.pending {
		batch = append(batch, ev)
	}
	d.pending = make(map[string]FileEvent)

	select {
	case d.output <- batch:
	default:
		slog.Warn("debouncer_batch_dropped", slog.Int("events", len(batch)))
	}
}

// Output returns the channel of debounced event batches.
func (d *Debouncer) Output() <-chan []FileEvent {
	return d.output
}

// Stop discards pending events and closes the output channel. Safe to call
// more than once.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.output)
}
