package locatortest

import (
	"testing"

	"github.com/go-drift/introspect/pkg/dispatch"
)

// Harness owns a serial task queue registered as the UI-thread dispatcher
// and simulates the host's layout passes. Deferred searches scheduled during
// a pass run when the pass's queue is drained, mirroring a real frame.
type Harness struct {
	queue *dispatch.Queue
}

// NewHarness creates a harness and registers its queue as the dispatch
// function. Call Cleanup when done, or use NewHarnessWithT instead.
func NewHarness() *Harness {
	h := &Harness{queue: &dispatch.Queue{}}
	dispatch.Register(h.queue.Push)
	return h
}

// NewHarnessWithT creates a harness that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup unregisters the dispatcher. Must be called if not using
// NewHarnessWithT.
func (h *Harness) Cleanup() {
	dispatch.Register(nil)
}

// PumpLayout runs one simulated layout pass: it invokes each hook
// synchronously, then drains the deferred task queue. Returns the number of
// deferred tasks executed.
func (h *Harness) PumpLayout(hooks ...func()) int {
	for _, hook := range hooks {
		if hook != nil {
			hook()
		}
	}
	return h.queue.Drain()
}

// Pending returns the number of deferred tasks not yet executed.
func (h *Harness) Pending() int {
	return h.queue.Len()
}

// Drain runs pending deferred tasks without a layout pass. Useful for tests
// that mutate the tree between scheduling and execution.
func (h *Harness) Drain() int {
	return h.queue.Drain()
}
