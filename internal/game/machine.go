package game

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/luckysymbol/internal/selection"
)

// Machine is the entry point for player input. It validates every action
// against the current state and ignores the ones that do not apply.
type Machine struct {
	w   *World
	seq *Sequencer
}

// NewMachine creates a machine over w, starting in the selecting state.
func NewMachine(w *World) (*Machine, error) {
	if err := w.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if w.Timers == nil || w.Rand == nil || w.Confetti == nil {
		return nil, errors.New("world is missing timers, randomizer or confetti")
	}
	if w.Log == nil {
		w.Log = zap.NewNop()
	}

	return &Machine{w: w, seq: NewSequencer(w)}, nil
}

// OnSelect toggles choice c and refreshes the confirm button and highlights.
// Ignored outside the selecting state or for an unknown choice.
func (m *Machine) OnSelect(ctx context.Context, c selection.Choice) {
	if m.seq.State() != StateSelecting || !c.Valid(m.w.Config.Choices) {
		m.w.Log.Debug("select ignored", zap.Int("choice", int(c)), zap.Stringer("state", m.seq.State()))
		return
	}

	m.w.Store.Select(c)

	scene := m.w.Scene
	scene.Choose.Disabled = !m.w.Store.MaxSelectionReached()

	for i, b := range scene.Choices {
		b.Active = scene.Choose.Disabled || m.w.Store.HasSelected(selection.Choice(i+1))
	}

	if scene.Choose.Disabled {
		m.w.Animations.Remove(m.w.Tasks.Float)
		m.w.Tasks.Float.Rest()
	} else {
		m.w.Animations.Add(m.w.Tasks.Float)
	}
}

// OnConfirm finalizes the round. Ignored unless confirm is enabled.
func (m *Machine) OnConfirm(ctx context.Context) {
	if !m.IsConfirmEnabled() {
		m.w.Log.Debug("confirm ignored", zap.Stringer("state", m.seq.State()))
		return
	}
	m.seq.Finalize(ctx)
}

// OnPlayAgain starts a new round. Ignored until the play again control shows.
func (m *Machine) OnPlayAgain(ctx context.Context) {
	if m.seq.State() != StateResult || !m.w.Scene.PlayAgain.Node.Visible {
		m.w.Log.Debug("play again ignored", zap.Stringer("state", m.seq.State()))
		return
	}
	m.seq.Reset(ctx)
}

// Click dispatches a click at stage coordinates to whichever button it hits.
// It reports whether a button was hit.
func (m *Machine) Click(ctx context.Context, x, y float64) bool {
	scene := m.w.Scene

	if scene.PlayAgain.Hit(x, y) {
		m.OnPlayAgain(ctx)
		return true
	}
	if scene.Choose.Hit(x, y) {
		m.OnConfirm(ctx)
		return true
	}
	for i, b := range scene.Choices {
		if b.Hit(x, y) {
			m.OnSelect(ctx, selection.Choice(i+1))
			return true
		}
	}
	return false
}

// Advance runs one animation frame.
func (m *Machine) Advance(delta float64) {
	m.w.Animations.Tick(delta)
}

// IsConfirmEnabled reports whether OnConfirm would finalize the round.
func (m *Machine) IsConfirmEnabled() bool {
	choose := m.w.Scene.Choose
	return m.seq.State() == StateSelecting && choose.Node.Visible && !choose.Disabled
}

// HighlightedChoices returns the choices drawn at full brightness.
func (m *Machine) HighlightedChoices() []selection.Choice {
	var lit []selection.Choice
	for i, b := range m.w.Scene.Choices {
		if b.Active {
			lit = append(lit, selection.Choice(i+1))
		}
	}
	return lit
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.seq.State()
}

// Outcome returns the revealed outcome while in the result state.
func (m *Machine) Outcome() (Outcome, bool) {
	return m.seq.Outcome()
}

// Stats returns totals over every revealed round.
func (m *Machine) Stats() Stats {
	return m.seq.Stats()
}

// Scene returns the display objects for rendering.
func (m *Machine) Scene() *Scene {
	return m.w.Scene
}

// Selected returns the current pick, if any.
func (m *Machine) Selected() (selection.Choice, bool) {
	return m.w.Store.Selected()
}
