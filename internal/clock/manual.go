package clock

import (
	"sort"
	"time"
)

// Manual is a Deferrer driven by explicit Advance calls, for tests.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []trigger
}

type trigger struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewManual creates a manual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Deferrer.
func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.pending = append(m.pending, trigger{due: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves time forward by d, firing every trigger that comes due in
// due order. Triggers scheduled by a firing callback fire within the same
// call if they come due before the new time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		i := m.next()
		if i < 0 || m.pending[i].due > target {
			break
		}
		t := m.pending[i]
		m.pending = append(m.pending[:i], m.pending[i+1:]...)
		m.now = t.due
		t.fn()
	}
	m.now = target
}

// Now returns the time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of triggers that have not fired yet.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// NextDue returns the delay until the next trigger fires.
func (m *Manual) NextDue() (time.Duration, bool) {
	i := m.next()
	if i < 0 {
		return 0, false
	}
	return m.pending[i].due - m.now, true
}

func (m *Manual) next() int {
	if len(m.pending) == 0 {
		return -1
	}
	sort.SliceStable(m.pending, func(a, b int) bool {
		if m.pending[a].due != m.pending[b].due {
			return m.pending[a].due < m.pending[b].due
		}
		return m.pending[a].seq < m.pending[b].seq
	})
	return 0
}
