package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/luckysymbol/internal/gamedata"
	"github.com/samdwyer/luckysymbol/internal/selection"
	"github.com/samdwyer/luckysymbol/internal/stage"
	"github.com/samdwyer/luckysymbol/internal/telemetry"
)

// Sequencer drives a round from the confirmed pick to the play again control.
//
// Every delayed step is tagged with the round generation it was scheduled
// in. Reset starts a new generation, so steps from an abandoned round are
// dropped when they fire.
type Sequencer struct {
	w          *World
	state      State
	outcome    Outcome
	generation uint64
	stats      Stats
	roundSpan  trace.SpanContext
}

// NewSequencer creates a sequencer in the selecting state.
func NewSequencer(w *World) *Sequencer {
	s := &Sequencer{w: w}
	s.enterSelecting()
	return s
}

// State returns the current phase.
func (s *Sequencer) State() State {
	return s.state
}

// Outcome returns the current round's outcome once it has been revealed.
func (s *Sequencer) Outcome() (Outcome, bool) {
	return s.outcome, s.state == StateResult
}

// Generation returns the current round generation.
func (s *Sequencer) Generation() uint64 {
	return s.generation
}

// Stats returns totals over every revealed round.
func (s *Sequencer) Stats() Stats {
	return s.stats
}

// Finalize locks in the current selection and starts the reveal.
// It reports false, changing nothing, unless the round is selecting and a
// choice is selected.
func (s *Sequencer) Finalize(ctx context.Context) bool {
	selected, ok := s.w.Store.Selected()
	if s.state != StateSelecting || !ok {
		s.w.Log.Debug("finalize ignored", zap.Stringer("state", s.state), zap.Bool("selected", ok))
		return false
	}

	winning := selection.Choice(s.w.Rand.Intn(s.w.Config.Choices) + 1)
	won := s.w.Store.HasSelected(winning)

	s.outcome = Outcome{
		Round:    uuid.NewString(),
		Selected: selected,
		Winning:  winning,
		Won:      won,
	}

	_, span := telemetry.Tracer("game").Start(ctx, "round.finalize")
	span.SetAttributes(
		attribute.String("round.id", s.outcome.Round),
		attribute.Int("round.selected", int(selected)),
		attribute.Int("round.winning", int(winning)),
		attribute.Bool("round.won", won),
	)
	s.roundSpan = span.SpanContext()
	span.End()

	scene := s.w.Scene
	for _, b := range scene.Choices {
		b.Node.Interactive = false
	}
	scene.Choose.Node.Visible = false

	s.w.Animations.Remove(s.w.Tasks.Float)
	s.w.Tasks.Float.Rest()
	s.w.Animations.Add(s.w.Tasks.Pulse)

	s.state = StateRevealing
	s.w.Log.Info("round finalized",
		zap.String("round", s.outcome.Round),
		zap.Int("selected", int(selected)),
		zap.Int("winning", int(winning)),
		zap.Bool("won", won),
	)

	s.after(s.w.Config.RevealDelay, "reveal", s.reveal)
	return true
}

// Reset starts a new round. It reports false, changing nothing, unless the
// current round has reached its result.
func (s *Sequencer) Reset(ctx context.Context) bool {
	if s.state != StateResult {
		s.w.Log.Debug("reset ignored", zap.Stringer("state", s.state))
		return false
	}

	_, span := telemetry.Tracer("game").Start(ctx, "round.reset")
	span.SetAttributes(
		attribute.String("round.id", s.outcome.Round),
		attribute.Int("stats.rounds", s.stats.Rounds),
		attribute.Int("stats.wins", s.stats.Wins),
	)
	defer span.End()

	s.generation++
	s.enterSelecting()
	s.w.Log.Info("round reset", zap.Uint64("generation", s.generation))
	return true
}

// enterSelecting restores every scene element to the start of a round.
func (s *Sequencer) enterSelecting() {
	scene := s.w.Scene
	tasks := s.w.Tasks

	for _, b := range scene.Choices {
		b.Disabled = false
		b.Active = true
		b.Node.Interactive = true
	}

	scene.WonText.Visible = false
	scene.LostText.Visible = false

	scene.PlayAgain.Node.Visible = false
	s.w.Animations.Remove(tasks.FadeSlide)
	tasks.FadeSlide.Prepare()

	scene.Choose.Node.Visible = true
	scene.Choose.Disabled = true
	s.w.Animations.Remove(tasks.Float)
	tasks.Float.Rest()

	scene.Reveal.Texture = gamedata.KeyBlank
	scene.Mystery.Visible = true
	s.w.Animations.Remove(tasks.Pulse)
	tasks.Pulse.Rest()

	s.w.Store.Clear()
	s.outcome = Outcome{}
	s.roundSpan = trace.SpanContext{}
	s.state = StateSelecting
}

// reveal shows the winning symbol and branches on the outcome.
func (s *Sequencer) reveal() {
	ctx := trace.ContextWithSpanContext(context.Background(), s.roundSpan)
	_, span := telemetry.Tracer("game").Start(ctx, "round.reveal")
	span.SetAttributes(
		attribute.String("round.id", s.outcome.Round),
		attribute.Bool("round.won", s.outcome.Won),
	)
	defer span.End()

	scene := s.w.Scene
	s.w.Animations.Remove(s.w.Tasks.Pulse)
	scene.Mystery.Visible = false
	scene.Reveal.Texture = gamedata.SymbolKey(s.outcome.Winning)

	s.state = StateResult
	s.stats.Rounds++

	if s.outcome.Won {
		s.stats.Wins++
		s.w.Confetti.Shoot(stage.Width/2, stage.Height, s.w.Config.ConfettiCount)
		span.SetAttributes(attribute.Int("confetti.count", s.w.Config.ConfettiCount))
		s.after(s.w.Config.WinMessageDelay, "won message", s.showWonMessage)
	} else {
		scene.LostText.Visible = true
		s.after(s.w.Config.PlayAgainDelay, "play again", s.showPlayAgain)
	}

	s.w.Log.Info("round revealed",
		zap.String("round", s.outcome.Round),
		zap.Bool("won", s.outcome.Won),
		zap.Int("rounds", s.stats.Rounds),
		zap.Int("wins", s.stats.Wins),
	)
}

func (s *Sequencer) showWonMessage() {
	s.w.Scene.WonText.Visible = true
	s.w.Tasks.FadeSlide.Prepare()
	s.after(s.w.Config.PlayAgainDelay, "play again", s.showPlayAgain)
}

func (s *Sequencer) showPlayAgain() {
	s.w.Scene.PlayAgain.Node.Visible = true
	s.w.Animations.Add(s.w.Tasks.FadeSlide)
}

// after schedules step for the current generation only.
func (s *Sequencer) after(d time.Duration, name string, step func()) {
	generation := s.generation
	s.w.Timers.AfterFunc(d, func() {
		if generation != s.generation {
			s.w.Log.Debug("stale step dropped",
				zap.String("step", name),
				zap.Uint64("scheduled", generation),
				zap.Uint64("current", s.generation),
			)
			return
		}
		step()
	})
}
