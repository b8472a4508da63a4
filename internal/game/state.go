// Package game provides the round state machine and its timed choreography.
package game

import "github.com/samdwyer/luckysymbol/internal/selection"

// State represents the current phase of a round.
type State int

const (
	// StateSelecting is the default state where the player picks a symbol.
	StateSelecting State = iota
	// StateRevealing runs between confirming a pick and revealing the winner.
	StateRevealing
	// StateResult shows the outcome until the player starts another round.
	StateResult
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateRevealing:
		return "revealing"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Outcome is the resolution of one round.
type Outcome struct {
	Round    string           // Unique round identifier
	Selected selection.Choice // The player's pick
	Winning  selection.Choice // The independently drawn winner
	Won      bool
}

// Stats counts finished rounds.
type Stats struct {
	Rounds int
	Wins   int
}

// WinRate returns the fraction of rounds won, or 0 before the first round.
func (s Stats) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}
