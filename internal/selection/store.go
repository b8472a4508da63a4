// Package selection holds the player's current symbol pick.
package selection

// Choice identifies one of the symbols the player can pick.
// Valid choices start at 1; the zero value means "no choice".
type Choice int

// Valid reports whether c is one of the first n choices.
func (c Choice) Valid(n int) bool {
	return c >= 1 && int(c) <= n
}

// Choices returns the choices 1..n in order.
func Choices(n int) []Choice {
	if n <= 0 {
		return nil
	}
	all := make([]Choice, n)
	for i := range all {
		all[i] = Choice(i + 1)
	}
	return all
}

// Store holds at most one selected Choice.
// The zero value is an empty store ready for use.
type Store struct {
	selected Choice
}

// NewStore creates an empty selection store.
func NewStore() *Store {
	return &Store{}
}

// Select toggles c: selecting the current choice clears it,
// selecting any other choice replaces it.
func (s *Store) Select(c Choice) {
	if s.selected == c {
		s.selected = 0
		return
	}
	s.selected = c
}

// HasSelected reports whether c is the current selection.
func (s *Store) HasSelected(c Choice) bool {
	return s.selected != 0 && s.selected == c
}

// MaxSelectionReached reports whether a choice is currently selected.
// Only one choice can ever be selected, so one is the maximum.
func (s *Store) MaxSelectionReached() bool {
	return s.selected != 0
}

// Selected returns the current choice, if any.
func (s *Store) Selected() (Choice, bool) {
	return s.selected, s.selected != 0
}

// Clear drops the current selection.
func (s *Store) Clear() {
	s.selected = 0
}
