package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/luckysymbol/internal/anim"
	"github.com/samdwyer/luckysymbol/internal/clock"
	"github.com/samdwyer/luckysymbol/internal/confetti"
	"github.com/samdwyer/luckysymbol/internal/selection"
	"github.com/samdwyer/luckysymbol/internal/stage"
)

// Randomizer draws winners and particle parameters. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
}

// Launcher fires confetti bursts.
type Launcher interface {
	Shoot(x, y float64, count int)
}

// Tasks are the per-entity animations of a scene.
type Tasks struct {
	Float     *anim.Float     // confirm button bob
	Pulse     *anim.Pulse     // mystery icon spin while revealing
	FadeSlide *anim.FadeSlide // play again entrance
}

// World is the state shared by the machine and the sequencer.
// Every field is touched only from the game loop.
type World struct {
	Config     Config
	Store      *selection.Store
	Scene      *Scene
	Tasks      Tasks
	Animations *anim.Scheduler
	Timers     clock.Deferrer
	Confetti   Launcher
	Rand       Randomizer
	Log        *zap.Logger
}

// NewWorld wires a fresh scene, store and animation tasks. Confetti is drawn
// into the scene's confetti layer and runs on the same scheduler.
func NewWorld(cfg Config, timers clock.Deferrer, rng Randomizer, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}

	scene := NewScene(cfg.Choices)
	animations := anim.NewScheduler()

	return &World{
		Config: cfg,
		Store:  selection.NewStore(),
		Scene:  scene,
		Tasks: Tasks{
			Float:     anim.NewFloat(scene.Choose.Node),
			Pulse:     anim.NewPulse(scene.Mystery),
			FadeSlide: anim.NewFadeSlide(scene.PlayAgain.Node),
		},
		Animations: animations,
		Timers:     timers,
		Confetti:   confetti.NewEngine(animations, scene.Confetti, rng, stage.Height),
		Rand:       rng,
		Log:        log,
	}
}
