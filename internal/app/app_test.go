package app

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap/zaptest"

	"github.com/samdwyer/luckysymbol/internal/clock"
	"github.com/samdwyer/luckysymbol/internal/game"
	"github.com/samdwyer/luckysymbol/internal/gamedata"
	"github.com/samdwyer/luckysymbol/internal/selection"
	"github.com/samdwyer/luckysymbol/internal/ui"
)

type harness struct {
	app     *App
	machine *game.Machine
	clk     *clock.Manual
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	screen, err := ui.NewSimulationScreen(80, 25)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error: %v", err)
	}
	t.Cleanup(screen.Close)

	log := zaptest.NewLogger(t)
	clk := clock.NewManual()
	w := game.NewWorld(game.DefaultConfig(), clk, rand.New(rand.NewSource(7)), log)
	m, err := game.NewMachine(w)
	if err != nil {
		t.Fatalf("NewMachine() error: %v", err)
	}

	timers := clock.NewReal(4)
	t.Cleanup(timers.Stop)

	renderer := ui.NewRenderer(screen, gamedata.MustLoadAssetRegistry())
	a := New(screen, renderer, m, timers, time.Second/60, log)
	return &harness{app: a, machine: m, clk: clk}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNumberKeysSelect(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.app.HandleEvent(ctx, key('3'))
	if c, ok := h.machine.Selected(); !ok || c != 3 {
		t.Fatalf("Selected() = %d, %v; want 3, true", c, ok)
	}

	h.app.HandleEvent(ctx, key('3'))
	if _, ok := h.machine.Selected(); ok {
		t.Error("pressing the same key again should clear the pick")
	}

	h.app.HandleEvent(ctx, key('9'))
	if _, ok := h.machine.Selected(); ok {
		t.Error("key for a missing choice should be ignored")
	}
}

func TestEnterConfirmsThenPlaysAgain(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if h.machine.State() != game.StateSelecting {
		t.Fatal("enter without a pick should do nothing")
	}

	h.app.HandleEvent(ctx, key('1'))
	h.app.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if h.machine.State() != game.StateRevealing {
		t.Fatalf("State() = %v, want revealing", h.machine.State())
	}

	h.clk.Advance(5 * time.Second)
	if h.machine.State() != game.StateResult {
		t.Fatalf("State() = %v, want result", h.machine.State())
	}

	h.app.HandleEvent(ctx, key(' '))
	if h.machine.State() != game.StateSelecting {
		t.Fatalf("State() after space = %v, want selecting", h.machine.State())
	}
	if h.machine.Stats().Rounds != 1 {
		t.Errorf("Stats().Rounds = %d, want 1", h.machine.Stats().Rounds)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", key('q')},
		{"Q", key('Q')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if h.app.HandleEvent(context.Background(), tt.ev) {
				t.Error("HandleEvent() = true, want false")
			}
		})
	}

	h := newHarness(t)
	if !h.app.HandleEvent(context.Background(), key('x')) {
		t.Error("unbound key should not quit")
	}
}

func TestMouseClickSelectsOnPress(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	node := h.machine.Scene().Button(selection.Choice(2)).Node
	cols, rows := 80, 24
	cx, cy := ui.ToCell(node.X, node.Y, cols, rows)

	press := tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(cx, cy, tcell.ButtonNone, tcell.ModNone)

	h.app.HandleEvent(ctx, press)
	if c, ok := h.machine.Selected(); !ok || c != 2 {
		t.Fatalf("Selected() = %d, %v; want 2, true", c, ok)
	}

	// Held button reports repeat; the pick must not toggle back.
	h.app.HandleEvent(ctx, press)
	if _, ok := h.machine.Selected(); !ok {
		t.Fatal("held button toggled the pick")
	}

	h.app.HandleEvent(ctx, release)
	h.app.HandleEvent(ctx, press)
	if _, ok := h.machine.Selected(); ok {
		t.Error("second click should clear the pick")
	}
}

func TestMouseOnStatusLineIgnored(t *testing.T) {
	h := newHarness(t)
	h.app.HandleEvent(context.Background(), tcell.NewEventMouse(40, 24, tcell.Button1, tcell.ModNone))
	if _, ok := h.machine.Selected(); ok {
		t.Error("click on the status line selected a choice")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- h.app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
