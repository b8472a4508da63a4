package selection

import (
	"math/rand"
	"testing"
)

func TestSelectToggle(t *testing.T) {
	s := NewStore()

	s.Select(2)
	if !s.HasSelected(2) {
		t.Fatal("Select(2) should select choice 2")
	}

	s.Select(2)
	if s.HasSelected(2) {
		t.Error("Select(2) twice should clear the selection")
	}
	if s.MaxSelectionReached() {
		t.Error("MaxSelectionReached() = true after toggle-off, want false")
	}
}

func TestSelectPairFromEveryState(t *testing.T) {
	s := NewStore()
	s.Select(3)

	for _, c := range Choices(4) {
		before, hadBefore := s.Selected()

		s.Select(c)
		s.Select(c)

		after, hasAfter := s.Selected()
		if c == before {
			// Toggling the selected choice off and on again leaves it selected.
			if !hasAfter || after != before {
				t.Errorf("select(%d) pair: got (%d, %v), want (%d, true)", c, after, hasAfter, before)
			}
			continue
		}
		// Selecting another choice replaces, then toggles it off.
		if hasAfter {
			t.Errorf("select(%d) pair from (%d, %v): got (%d, true), want none", c, before, hadBefore, after)
		}
		s.Select(3)
	}
}

func TestSelectReplaces(t *testing.T) {
	s := NewStore()
	s.Select(1)
	s.Select(4)

	if s.HasSelected(1) {
		t.Error("choice 1 should be replaced by choice 4")
	}
	if !s.HasSelected(4) {
		t.Error("choice 4 should be selected")
	}
}

func TestSingleSelectionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	s := NewStore()
	choices := Choices(4)

	for i := 0; i < 500; i++ {
		s.Select(choices[rng.Intn(len(choices))])

		count := 0
		for _, c := range choices {
			if s.HasSelected(c) {
				count++
			}
		}
		if count > 1 {
			t.Fatalf("step %d: %d choices selected, want at most 1", i, count)
		}
		if (count == 1) != s.MaxSelectionReached() {
			t.Fatalf("step %d: MaxSelectionReached() = %v with %d selected", i, s.MaxSelectionReached(), count)
		}
	}
}

func TestMaxSelectionReachedFollowsLastSelect(t *testing.T) {
	tests := []struct {
		name  string
		picks []Choice
		want  bool
	}{
		{"empty", nil, false},
		{"one pick", []Choice{1}, true},
		{"toggle off", []Choice{1, 1}, false},
		{"replace", []Choice{1, 2}, true},
		{"replace then toggle off", []Choice{1, 2, 2}, false},
		{"toggle back on", []Choice{3, 3, 3}, true},
	}

	for _, tt := range tests {
		s := NewStore()
		for _, c := range tt.picks {
			s.Select(c)
		}
		if got := s.MaxSelectionReached(); got != tt.want {
			t.Errorf("%s: MaxSelectionReached() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Select(2)
	s.Clear()

	if _, ok := s.Selected(); ok {
		t.Error("Clear() should leave no selection")
	}
	if s.HasSelected(2) {
		t.Error("HasSelected(2) after Clear() = true")
	}
}

func TestHasSelectedZeroChoice(t *testing.T) {
	var s Store
	if s.HasSelected(0) {
		t.Error("zero choice must never report as selected")
	}
}

func TestChoices(t *testing.T) {
	got := Choices(4)
	if len(got) != 4 {
		t.Fatalf("Choices(4) length = %d, want 4", len(got))
	}
	for i, c := range got {
		if c != Choice(i+1) {
			t.Errorf("Choices(4)[%d] = %d, want %d", i, c, i+1)
		}
	}
	if Choices(0) != nil {
		t.Error("Choices(0) should be nil")
	}

	if !Choice(4).Valid(4) || Choice(5).Valid(4) || Choice(0).Valid(4) {
		t.Error("Valid bounds are wrong")
	}
}

func TestSelectPairFromEmptyIsIdentity(t *testing.T) {
	for _, c := range Choices(4) {
		s := NewStore()
		s.Select(c)
		s.Select(c)
		if s.MaxSelectionReached() {
			t.Errorf("select(%d); select(%d) from empty left a selection", c, c)
		}
	}
}
