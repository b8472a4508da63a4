package anim

import (
	"testing"
)

// recordTask appends its name to a shared log on every update.
type recordTask struct {
	name   string
	log    *[]string
	deltas []float64
	onTick func()
}

func (r *recordTask) Update(delta float64) {
	*r.log = append(*r.log, r.name)
	r.deltas = append(r.deltas, delta)
	if r.onTick != nil {
		r.onTick()
	}
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler()
	a := &recordTask{name: "a", log: &log}
	b := &recordTask{name: "b", log: &log}
	c := &recordTask{name: "c", log: &log}

	s.Add(b)
	s.Add(a)
	s.Add(c)
	s.Tick(1)

	want := []string{"b", "a", "c"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("run order %v, want %v", log, want)
			break
		}
	}
	if a.deltas[0] != 1 {
		t.Errorf("task received delta %v, want 1", a.deltas[0])
	}
}

func TestSchedulerAddIsIdempotent(t *testing.T) {
	var log []string
	s := NewScheduler()
	a := &recordTask{name: "a", log: &log}

	s.Add(a)
	s.Add(a)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after double add, want 1", s.Len())
	}

	s.Tick(1)
	if len(log) != 1 {
		t.Errorf("task ran %d times in one tick, want 1", len(log))
	}
}

func TestSchedulerRemove(t *testing.T) {
	var log []string
	s := NewScheduler()
	a := &recordTask{name: "a", log: &log}
	b := &recordTask{name: "b", log: &log}

	// Removing an absent task is a no-op.
	s.Remove(a)

	s.Add(a)
	s.Add(b)
	s.Remove(a)
	s.Remove(a)

	if s.Has(a) {
		t.Error("Has(a) after Remove(a) = true")
	}
	if !s.Has(b) || s.Len() != 1 {
		t.Errorf("b should remain registered alone, Len() = %d", s.Len())
	}
}

func TestSchedulerRemovalDuringTick(t *testing.T) {
	var log []string
	s := NewScheduler()
	b := &recordTask{name: "b", log: &log}
	a := &recordTask{name: "a", log: &log, onTick: func() { s.Remove(b) }}

	s.Add(a)
	s.Add(b)
	s.Tick(1)

	if len(log) != 1 || log[0] != "a" {
		t.Errorf("ran %v, want [a]: b was removed before its turn", log)
	}
}

func TestSchedulerSelfRemovalDuringTick(t *testing.T) {
	var log []string
	s := NewScheduler()
	var a *recordTask
	a = &recordTask{name: "a", log: &log, onTick: func() { s.Remove(a) }}
	b := &recordTask{name: "b", log: &log}

	s.Add(a)
	s.Add(b)
	s.Tick(1)
	s.Tick(1)

	want := []string{"a", "b", "b"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("ran %v, want %v", log, want)
		}
	}
}

func TestSchedulerAddDuringTickRunsNextTick(t *testing.T) {
	var log []string
	s := NewScheduler()
	b := &recordTask{name: "b", log: &log}
	a := &recordTask{name: "a", log: &log, onTick: func() { s.Add(b) }}

	s.Add(a)
	s.Tick(1)
	if len(log) != 1 {
		t.Fatalf("ran %v on first tick, want [a]", log)
	}

	s.Tick(1)
	if len(log) != 3 || log[2] != "b" {
		t.Errorf("ran %v, want b on second tick", log)
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", s.Ticks())
	}
}
