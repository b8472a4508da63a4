package clock

import (
	"sync"
	"time"
)

// Real fires deferred triggers after wall-clock delays.
//
// Timers run on their own goroutines but only post the callback to C; the
// game loop receives from C and invokes the callback itself.
type Real struct {
	c chan func()

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

// NewReal creates a real clock whose channel buffers up to size fired callbacks.
func NewReal(size int) *Real {
	return &Real{
		c:      make(chan func(), size),
		timers: make(map[*time.Timer]struct{}),
	}
}

// C delivers fired callbacks. The receiver must call them.
func (r *Real) C() <-chan func() {
	return r.c
}

// AfterFunc implements Deferrer.
func (r *Real) AfterFunc(d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		r.mu.Lock()
		delete(r.timers, t)
		stopped := r.stopped
		r.mu.Unlock()
		if stopped {
			return
		}
		r.c <- fn
	})
	r.timers[t] = struct{}{}
}

// Pending returns the number of timers that have not fired yet.
func (r *Real) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop cancels every outstanding timer. Later AfterFunc calls are ignored.
func (r *Real) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	for t := range r.timers {
		t.Stop()
	}
	clear(r.timers)
}
