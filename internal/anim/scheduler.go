// Package anim provides the per-frame task registry and the animation tasks
// that run on it.
package anim

// Task is advanced once per frame by a Scheduler.
//
// Tasks are identified by value, so implementations should be pointers:
// registering the same pointer twice keeps a single registration.
type Task interface {
	Update(delta float64)
}

// Scheduler runs registered tasks once per frame tick in registration order.
// It is not safe for concurrent use; every call must come from the game loop.
type Scheduler struct {
	tasks   []Task
	pending []Task // reused snapshot for Tick
	ticks   uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers t. Adding a task that is already registered is a no-op.
func (s *Scheduler) Add(t Task) {
	if s.indexOf(t) >= 0 {
		return
	}
	s.tasks = append(s.tasks, t)
}

// Remove unregisters t. Removing an unregistered task is a no-op.
func (s *Scheduler) Remove(t Task) {
	i := s.indexOf(t)
	if i < 0 {
		return
	}
	copy(s.tasks[i:], s.tasks[i+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]
}

// Has reports whether t is registered.
func (s *Scheduler) Has(t Task) bool {
	return s.indexOf(t) >= 0
}

// Len returns the number of registered tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Ticks returns how many frames have been run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick runs one frame. delta is the elapsed time in frame units
// (1.0 at the nominal frame rate).
//
// Tasks added during the tick first run on the next tick. A task removed
// during the tick is skipped if its turn has not come yet.
func (s *Scheduler) Tick(delta float64) {
	s.ticks++
	s.pending = append(s.pending[:0], s.tasks...)
	for i, t := range s.pending {
		s.pending[i] = nil
		if s.indexOf(t) < 0 {
			continue
		}
		t.Update(delta)
	}
	s.pending = s.pending[:0]
}

func (s *Scheduler) indexOf(t Task) int {
	for i, existing := range s.tasks {
		if existing == t {
			return i
		}
	}
	return -1
}
