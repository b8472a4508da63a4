// Package confetti simulates bursts of confetti particles on the stage.
package confetti

import (
	"math"

	"github.com/samdwyer/luckysymbol/internal/anim"
	"github.com/samdwyer/luckysymbol/internal/stage"
)

// Physics constants in stage units per frame.
const (
	Gravity   = 0.3
	FadeRate  = 0.015
	EdgeSlack = 100.0

	MaxSpeedX = 6.0
	MinLift   = 10.0
	MaxLift   = 20.0
	MaxSpin   = 0.15

	// DefaultCount is the size of a celebration burst.
	DefaultCount = 100

	particleWidth  = 8
	particleHeight = 12
)

// Palette is the colour cycle for spawned particles.
var Palette = [...]uint32{
	0xffffff, 0xff2a5c, 0xe4ff2a, 0xa62aff, 0x3df2da, 0xff2a9c, 0x5a2bb8,
}

// Ticker is the frame-clock registry the engine runs on.
type Ticker interface {
	Add(t anim.Task)
	Remove(t anim.Task)
}

// Randomizer supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Randomizer interface {
	Float64() float64
}

// Particle is one piece of confetti. Its display node carries position,
// rotation and opacity.
type Particle struct {
	Node *stage.Node
	VX   float64
	VY   float64
	Spin float64
}

// Engine spawns particles into a layer and advances them every frame while
// any are alive. It unregisters itself from the ticker when the last one dies.
type Engine struct {
	ticker Ticker
	layer  *stage.Layer
	rng    Randomizer
	floor  float64

	live    []*Particle
	running bool
}

// NewEngine creates an engine that draws into layer. Particles die once they
// fall below stageHeight plus a fixed margin.
func NewEngine(ticker Ticker, layer *stage.Layer, rng Randomizer, stageHeight float64) *Engine {
	return &Engine{
		ticker: ticker,
		layer:  layer,
		rng:    rng,
		floor:  stageHeight + EdgeSlack,
	}
}

// Shoot spawns count particles at (x, y). A non-positive count does nothing.
func (e *Engine) Shoot(x, y float64, count int) {
	if count <= 0 {
		return
	}

	for i := 0; i < count; i++ {
		n := stage.NewSprite("confetti", "", particleWidth, particleHeight)
		n.X, n.Y = x, y
		n.Rotation = e.rng.Float64() * math.Pi
		n.SetTint(Palette[i%len(Palette)])

		e.live = append(e.live, &Particle{
			Node: n,
			VX:   (e.rng.Float64() - 0.5) * 2 * MaxSpeedX,
			VY:   -(MinLift + e.rng.Float64()*(MaxLift-MinLift)),
			Spin: (e.rng.Float64() - 0.5) * 2 * MaxSpin,
		})
		e.layer.Add(n)
	}

	if !e.running {
		e.running = true
		e.ticker.Add(e)
	}
}

// Update advances every live particle by one frame. Particles move a fixed
// step per frame regardless of delta.
func (e *Engine) Update(float64) {
	kept := e.live[:0]
	for _, p := range e.live {
		n := p.Node
		n.X += p.VX
		n.Y += p.VY
		p.VY += Gravity
		n.Rotation += p.Spin
		n.Alpha -= FadeRate

		if n.Alpha <= 0 || n.Y > e.floor {
			e.layer.Remove(n)
			continue
		}
		kept = append(kept, p)
	}
	clear(e.live[len(kept):])
	e.live = kept

	if len(e.live) == 0 && e.running {
		e.running = false
		e.ticker.Remove(e)
	}
}

// Live returns the number of particles still alive.
func (e *Engine) Live() int {
	return len(e.live)
}

// Running reports whether the engine is registered on the ticker.
func (e *Engine) Running() bool {
	return e.running
}

// Particles returns the live particles in spawn order.
// The slice is owned by the engine and must not be modified.
func (e *Engine) Particles() []*Particle {
	return e.live
}
