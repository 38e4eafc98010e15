// Package debounce runs a function on the trailing edge of a burst of triggers.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules fn(key) once the key has been quiet for the delay.
// A new trigger cancels the pending schedule; a run already in progress is never interrupted.
type Debouncer[K comparable] struct {
	delay time.Duration
	fn    func(K)

	mu      sync.Mutex
	timers  map[K]*time.Timer
	stopped bool
}

// New creates a Debouncer. A non-positive delay defaults to one second.
func New[K comparable](delay time.Duration, fn func(K)) *Debouncer[K] {
	if delay <= 0 {
		delay = time.Second
	}
	return &Debouncer[K]{
		delay:  delay,
		fn:     fn,
		timers: make(map[K]*time.Timer),
	}
}

// Trigger (re)starts the quiet period for key
func (d *Debouncer[K]) Trigger(key K) {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if timer, ok := d.timers[key]; ok {
		timer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timers[key] != timer {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()
		d.fn(key)
	})
	d.timers[key] = timer
}

// Cancel drops a pending run for key and reports whether one was pending
func (d *Debouncer[K]) Cancel(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	timer, ok := d.timers[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(d.timers, key)
	return true
}

// Pending reports whether a run is scheduled for key
func (d *Debouncer[K]) Pending(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.timers[key]
	return ok
}

// Stop cancels all pending runs and ignores further triggers
func (d *Debouncer[K]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
