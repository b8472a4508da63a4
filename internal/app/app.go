// Package app runs the game loop: terminal input, animation frames and
// deferred triggers are all handled on one goroutine.
package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/luckysymbol/internal/clock"
	"github.com/samdwyer/luckysymbol/internal/game"
	"github.com/samdwyer/luckysymbol/internal/selection"
	"github.com/samdwyer/luckysymbol/internal/telemetry"
	"github.com/samdwyer/luckysymbol/internal/ui"
)

// baseFrame is the frame length a delta of 1 corresponds to.
const baseFrame = time.Second / 60

// App owns the screen and drives the machine.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	machine  *game.Machine
	timers   *clock.Real
	frame    time.Duration
	log      *zap.Logger

	pressed bool // primary button held; clicks fire on press only
}

// New creates an app. timers must be the clock the machine's world defers on.
func New(screen *ui.Screen, renderer *ui.Renderer, machine *game.Machine, timers *clock.Real, frame time.Duration, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		screen:   screen,
		renderer: renderer,
		machine:  machine,
		timers:   timers,
		frame:    frame,
		log:      log,
	}
}

// Run executes the main loop until ctx is cancelled or the player quits.
// The screen is closed on return.
func (a *App) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("app").Start(ctx, "app.start")
	span.SetAttributes(
		attribute.Int("game.choices", len(a.machine.Scene().Choices)),
		attribute.Int64("app.frame_ms", a.frame.Milliseconds()),
	)
	span.End()

	defer a.screen.Close()
	defer a.timers.Stop()

	done := make(chan struct{})
	defer close(done)
	events := a.pollEvents(done)

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()
	last := time.Now()

	a.render()
	a.log.Info("game started", zap.Duration("frame", a.frame))

	for {
		select {
		case <-ctx.Done():
			a.log.Info("game stopped", zap.Error(ctx.Err()))
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ctx, ev) {
				a.log.Info("player quit", zap.Int("rounds", a.machine.Stats().Rounds))
				return nil
			}

		case fn := <-a.timers.C():
			fn()

		case now := <-ticker.C:
			delta := float64(now.Sub(last)) / float64(baseFrame)
			last = now
			a.machine.Advance(delta)
			a.render()
		}
	}
}

// pollEvents forwards terminal events until the screen closes or done is closed.
func (a *App) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	case *tcell.EventMouse:
		a.handleMouse(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}
	return true
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.advanceRound(ctx)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			return false
		case r == ' ':
			a.advanceRound(ctx)
		case r >= '1' && r <= '9':
			a.machine.OnSelect(ctx, selection.Choice(r-'0'))
		}
	}
	return true
}

// advanceRound confirms the pick or starts another round, whichever applies.
func (a *App) advanceRound(ctx context.Context) {
	if a.machine.State() == game.StateResult {
		a.machine.OnPlayAgain(ctx)
		return
	}
	a.machine.OnConfirm(ctx)
}

func (a *App) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down || a.pressed {
		a.pressed = down
		return
	}
	a.pressed = true

	cx, cy := ev.Position()
	cols, rows := a.renderer.Viewport()
	if cy >= rows {
		return
	}
	x, y := ui.ToStage(cx, cy, cols, rows)
	if !a.machine.Click(ctx, x, y) {
		a.log.Debug("click missed", zap.Int("x", cx), zap.Int("y", cy))
	}
}

func (a *App) render() {
	a.renderer.Render(a.machine.Scene(), a.machine.State(), a.machine.Stats())
}
