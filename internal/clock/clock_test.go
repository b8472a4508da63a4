package clock

import (
	"testing"
	"time"
)

func TestManualFiresInDueOrder(t *testing.T) {
	m := NewManual()
	var fired []string

	m.AfterFunc(600*time.Millisecond, func() { fired = append(fired, "late") })
	m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "early") })
	m.AfterFunc(600*time.Millisecond, func() { fired = append(fired, "late2") })

	m.Advance(99 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired %v before any trigger was due", fired)
	}

	m.Advance(time.Second)
	want := []string{"early", "late", "late2"}
	if len(fired) != len(want) {
		t.Fatalf("fired %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired %v, want %v", fired, want)
			break
		}
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestManualNestedTriggers(t *testing.T) {
	m := NewManual()
	var at []time.Duration

	m.AfterFunc(time.Second, func() {
		at = append(at, m.Now())
		m.AfterFunc(1200*time.Millisecond, func() {
			at = append(at, m.Now())
			m.AfterFunc(600*time.Millisecond, func() {
				at = append(at, m.Now())
			})
		})
	})

	m.Advance(2 * time.Second)
	if len(at) != 1 {
		t.Fatalf("fired %d triggers after 2s, want 1", len(at))
	}
	if d, ok := m.NextDue(); !ok || d != 200*time.Millisecond {
		t.Errorf("NextDue() = %v, %v, want 200ms", d, ok)
	}

	m.Advance(5 * time.Second)
	want := []time.Duration{time.Second, 2200 * time.Millisecond, 2800 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired at %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("fired at %v, want %v", at, want)
			break
		}
	}
	if m.Now() != 7*time.Second {
		t.Errorf("Now() = %v, want 7s", m.Now())
	}
}

func TestRealPostsToChannel(t *testing.T) {
	r := NewReal(4)
	defer r.Stop()

	done := false
	r.AfterFunc(time.Millisecond, func() { done = true })

	select {
	case fn := <-r.C():
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("trigger never fired")
	}
	if !done {
		t.Error("callback from C() did not run")
	}
}

func TestRealStopCancels(t *testing.T) {
	r := NewReal(1)
	r.AfterFunc(time.Hour, func() {})
	if r.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", r.Pending())
	}

	r.Stop()
	if r.Pending() != 0 {
		t.Errorf("Pending() after Stop() = %d, want 0", r.Pending())
	}

	r.AfterFunc(time.Millisecond, func() {})
	if r.Pending() != 0 {
		t.Error("AfterFunc after Stop() should be ignored")
	}
}

var (
	_ Deferrer = (*Real)(nil)
	_ Deferrer = (*Manual)(nil)
)
