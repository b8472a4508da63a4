package anim

import (
	"math"

	"github.com/samdwyer/luckysymbol/internal/stage"
)

// Animation constants in stage units and frame-delta units.
const (
	FloatAmplitude = 5.0
	FloatSpeed     = 0.05

	PulseSpeed     = 0.1
	PulseAmplitude = 0.3
	PulseSpin      = 0.1

	FadeSlideDuration = 60.0
	FadeSlideOffset   = 30.0
)

// Float bobs a node up and down around a base height.
type Float struct {
	Target *stage.Node
	BaseY  float64
	phase  float64
}

// NewFloat creates a float task anchored at the node's current height.
func NewFloat(target *stage.Node) *Float {
	return &Float{Target: target, BaseY: target.Y}
}

// Update advances the oscillation.
func (f *Float) Update(delta float64) {
	f.phase += delta * FloatSpeed
	f.Target.Y = f.BaseY + math.Sin(f.phase)*FloatAmplitude
}

// Rest puts the node back at its base height and rewinds the phase.
func (f *Float) Rest() {
	f.phase = 0
	f.Target.Y = f.BaseY
}

// Pulse spins a node and breathes its scale.
type Pulse struct {
	Target *stage.Node
	phase  float64
}

// NewPulse creates a pulse task for target.
func NewPulse(target *stage.Node) *Pulse {
	return &Pulse{Target: target}
}

// Update spins the node by a fixed step and sets its scale from the phase.
func (p *Pulse) Update(delta float64) {
	p.phase += delta * PulseSpeed
	p.Target.Rotation -= PulseSpin
	p.Target.Scale = 1 + math.Sin(p.phase)*PulseAmplitude
}

// Rest restores rotation and scale and rewinds the phase.
func (p *Pulse) Rest() {
	p.phase = 0
	p.Target.Rotation = 0
	p.Target.Scale = 1
}

// FadeSlide fades a node in while sliding it from StartY down to EndY.
// Once the duration has elapsed further updates leave the node untouched.
type FadeSlide struct {
	Target   *stage.Node
	StartY   float64
	EndY     float64
	Duration float64
	elapsed  float64
}

// NewFadeSlide creates a fade-slide that ends at the node's current height and
// starts FadeSlideOffset above it.
func NewFadeSlide(target *stage.Node) *FadeSlide {
	return &FadeSlide{
		Target:   target,
		StartY:   target.Y - FadeSlideOffset,
		EndY:     target.Y,
		Duration: FadeSlideDuration,
	}
}

// Update advances the entrance.
func (f *FadeSlide) Update(delta float64) {
	if f.Done() {
		return
	}
	f.elapsed += delta
	if f.Done() {
		f.Target.Alpha = 1
		f.Target.Y = f.EndY
		return
	}

	progress := f.elapsed / f.Duration
	f.Target.Alpha = progress
	f.Target.Y = f.StartY + progress*(f.EndY-f.StartY)
}

// Done reports whether the entrance has completed.
func (f *FadeSlide) Done() bool {
	return f.elapsed >= f.Duration
}

// Prepare rewinds the entrance and puts the node at its starting alpha and height.
func (f *FadeSlide) Prepare() {
	f.elapsed = 0
	f.Target.Alpha = 0
	f.Target.Y = f.StartY
}
