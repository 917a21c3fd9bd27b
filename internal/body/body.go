package body

import (
	"fmt"
	"math"
)

// RGB is a color with components in the unit range.
type RGB struct {
	R, G, B float64
}

// Appearance selects how a body is drawn. Only Earth uses the textured
// variant; everything else is a plain shaded sphere.
type Appearance int

const (
	Sphere Appearance = iota
	TexturedSphere
)

func (a Appearance) String() string {
	switch a {
	case Sphere:
		return "sphere"
	case TexturedSphere:
		return "textured"
	default:
		return "unknown"
	}
}

// Spec holds the raw construction parameters for a body, in physical
// units (meters, AU, kilograms). Scaling to display units happens in New.
type Spec struct {
	Name          string
	RadiusMeters  float64
	DistanceAU    float64
	RotationSpeed float64
	Mass          float64
	Color         RGB
	Appearance    Appearance
	// VisualRadius overrides the rendering radius in display units.
	// Zero means "use the scaled physical radius".
	VisualRadius float64
}

type snapshot struct {
	radius        float64
	distance      float64
	rotationSpeed float64
	mass          float64
	density       float64
}

// Body is one celestial object. All float fields except the angle
// accumulators are in display units (see constants.go for the scaling).
//
// Bodies are shared between the frame loop and the editing panel; every
// mutation must go through the owning Registry's lock.
type Body struct {
	Name          string
	Radius        float64
	Distance      float64
	VisualRadius  float64
	OrbitalSpeed  float64
	RotationSpeed float64
	Mass          float64
	Density       float64
	Color         RGB
	Appearance    Appearance

	// OrbitAngle and SpinAngle are separate accumulators: orbital phase
	// and self-rotation advance independently. Both grow without bound
	// and are only ever read through trig functions.
	OrbitAngle float64
	SpinAngle  float64

	Highlighted bool

	defaults snapshot
}

// New constructs a body from its spec, applying the display scaling and
// deriving orbital speed and density. The construction parameters are
// captured as the defaults snapshot for RestoreDefaults.
func New(s Spec) (*Body, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("body: spec has no name")
	}
	if s.RadiusMeters <= 0 {
		return nil, fmt.Errorf("body %s: radius must be positive, got %g", s.Name, s.RadiusMeters)
	}
	if s.Mass <= 0 {
		return nil, fmt.Errorf("body %s: mass must be positive, got %g", s.Name, s.Mass)
	}
	if s.DistanceAU < 0 {
		return nil, fmt.Errorf("body %s: distance must be non-negative, got %g", s.Name, s.DistanceAU)
	}

	radius := s.RadiusMeters * RadiusScale
	distance := s.DistanceAU * AU * DistanceScale

	visual := s.VisualRadius
	if visual == 0 {
		visual = radius
	}

	b := &Body{
		Name:          s.Name,
		Radius:        radius,
		Distance:      distance,
		VisualRadius:  visual,
		OrbitalSpeed:  ComputeOrbitalSpeed(distance),
		RotationSpeed: s.RotationSpeed,
		Mass:          s.Mass,
		Density:       ComputeDensity(s.Mass, radius),
		Color:         s.Color,
		Appearance:    s.Appearance,
	}

	b.defaults = snapshot{
		radius:        b.Radius,
		distance:      b.Distance,
		rotationSpeed: b.RotationSpeed,
		mass:          b.Mass,
		density:       b.Density,
	}

	return b, nil
}

// Central reports whether this is the non-orbiting central body.
func (b *Body) Central() bool {
	return b.Distance == 0
}

// ComputeOrbitalSpeed derives the per-day orbital angle increment from
// the circular-orbit speed sqrt(G*M/r) around the Sun, normalized by
// the 1 AU orbit circumference (Earth advances ~1/365 per day; inner
// planets more, outer planets less). The distance argument is in
// display units; a central body (distance 0) never orbits.
func ComputeOrbitalSpeed(distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	meters := distance / DistanceScale
	return math.Sqrt(G*SunMass/meters) * SecondsPerDay / (2 * math.Pi * AU)
}

// ComputeDensity returns mass over the sphere volume of the physical
// radius. The radius argument is in display units and is unscaled back
// to meters so the result is a real bulk density in kg/m^3. A
// non-positive radius yields NaN; callers validate radius before edits.
func ComputeDensity(mass, radius float64) float64 {
	if radius <= 0 {
		return math.NaN()
	}
	meters := radius / RadiusScale
	volume := (4.0 / 3.0) * math.Pi * meters * meters * meters
	return mass / volume
}

// RecomputeMassFromDensity sets mass from the current density and
// radius. Density and radius are untouched.
func (b *Body) RecomputeMassFromDensity() {
	meters := b.Radius / RadiusScale
	volume := (4.0 / 3.0) * math.Pi * meters * meters * meters
	b.Mass = b.Density * volume
}

// RecomputeDensityFromMass sets density from the current mass and
// radius. Mass and radius are untouched.
func (b *Body) RecomputeDensityFromMass() {
	b.Density = ComputeDensity(b.Mass, b.Radius)
}

// RestoreDefaults resets the editable fields to the construction
// snapshot and re-derives the orbital speed from the restored distance.
// Idempotent; the snapshot itself never changes.
func (b *Body) RestoreDefaults() {
	b.Radius = b.defaults.radius
	b.Distance = b.defaults.distance
	b.RotationSpeed = b.defaults.rotationSpeed
	b.Mass = b.defaults.mass
	b.Density = b.defaults.density
	b.OrbitalSpeed = ComputeOrbitalSpeed(b.Distance)
}

func (b *Body) String() string {
	return fmt.Sprintf("%s r=%.3g d=%.3g m=%.3g rho=%.4g", b.Name, b.Radius, b.Distance, b.Mass, b.Density)
}
