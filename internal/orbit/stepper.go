// Package orbit advances orbital and spin phases and produces the
// per-frame render states handed to a renderer.
package orbit

import (
	"math"

	"github.com/san-kum/orrery/internal/body"
)

// Vec3 is a position in display units, Y-up with orbits on the y=0 plane.
type Vec3 struct {
	X, Y, Z float64
}

// RenderState is everything a renderer needs for one body on one frame.
// Renderers draw from this snapshot and never touch the bodies directly.
type RenderState struct {
	Name         string
	Position     Vec3
	SpinDegrees  float64
	VisualRadius float64
	Color        body.RGB
	Highlighted  bool
	Appearance   body.Appearance
}

// Stepper advances every body once per frame. TimeScale multiplies both
// angle increments uniformly (1.0 = one simulated day per frame).
type Stepper struct {
	TimeScale float64
	frames    uint64
}

func NewStepper(timeScale float64) *Stepper {
	if timeScale <= 0 {
		timeScale = 1.0
	}
	return &Stepper{TimeScale: timeScale}
}

// Frames returns how many times Advance has run.
func (s *Stepper) Frames() uint64 {
	return s.frames
}

// Advance steps orbit and spin phases for every body under the registry
// write lock. Orbit and spin are independent accumulators; the central
// body's orbit phase never moves.
func (s *Stepper) Advance(reg *body.Registry) {
	reg.Mutate(func(b *body.Body) {
		if b.Distance > 0 {
			b.OrbitAngle += b.OrbitalSpeed * s.TimeScale
		}
		b.SpinAngle += b.RotationSpeed * s.TimeScale
	})
	s.frames++
}

// Position places a body on its circular orbit in the ecliptic plane.
func Position(b *body.Body) Vec3 {
	if b.Distance == 0 {
		return Vec3{}
	}
	return Vec3{
		X: b.Distance * math.Cos(b.OrbitAngle),
		Z: b.Distance * math.Sin(b.OrbitAngle),
	}
}

// States snapshots every body into render states, in catalog order,
// under the registry read lock. Edits applied between frames are
// visible on the very next call.
func States(reg *body.Registry) []RenderState {
	states := make([]RenderState, 0, reg.Len())
	reg.Each(func(b *body.Body) {
		states = append(states, RenderState{
			Name:         b.Name,
			Position:     Position(b),
			SpinDegrees:  b.SpinAngle * 180 / math.Pi,
			VisualRadius: b.VisualRadius,
			Color:        b.Color,
			Highlighted:  b.Highlighted,
			Appearance:   b.Appearance,
		})
	})
	return states
}
