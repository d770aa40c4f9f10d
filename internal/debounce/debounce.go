// Package debounce coalesces bursts of updates into a single trailing call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the latest pushed value to fn once wait has elapsed
// without another Push. Earlier pending values are dropped.
type Debouncer[T any] struct {
	wait time.Duration
	fn   func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	armed   bool
	seq     uint64
}

func New[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Push records v as the latest value and restarts the quiet period.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = v
	d.armed = true
	d.seq++

	if d.timer != nil {
		d.timer.Stop()
	}

	seq := d.seq
	d.timer = time.AfterFunc(d.wait, func() {
		d.fire(seq)
	})
}

// Flush delivers the pending value now, if any. It reports whether fn ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return false
	}
	v := d.take()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Stop discards the pending value without delivering it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.armed {
		d.take()
	}
}

// Pending reports whether a value is waiting for delivery.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.armed
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	// a later Push, Flush or Stop superseded this timer
	if !d.armed || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()

	d.fn(v)
}

// take must be called with mu held.
func (d *Debouncer[T]) take() T {
	var zero T

	v := d.pending
	d.pending = zero
	d.armed = false
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	return v
}
