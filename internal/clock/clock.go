// Package clock abstracts timers so the game can run on a real event loop or
// on a manually advanced clock in tests and headless simulation.
package clock

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel stops future invocations. Cancelling twice is a no-op.
	Cancel()
}

// Scheduler registers periodic and one-shot callbacks. Callbacks run on the
// scheduler's own goroutine and must not block.
type Scheduler interface {
	Every(d time.Duration, fn func()) Task
	After(d time.Duration, fn func()) Task
}

// Stop cancels t if it is non-nil.
func Stop(t Task) {
	if t != nil {
		t.Cancel()
	}
}
