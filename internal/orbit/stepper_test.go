package orbit

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/body"
)

func newTestRegistry(t *testing.T) *body.Registry {
	t.Helper()
	r, err := body.NewRegistry([]body.Spec{
		{Name: "Sun", RadiusMeters: 6.96e8, Mass: body.SunMass, Color: body.RGB{R: 1, G: 1, B: 0}, VisualRadius: 10, RotationSpeed: 0.001},
		{Name: "Earth", RadiusMeters: 6.37e6, DistanceAU: 1.0, RotationSpeed: 0.01, Mass: 5.97e24, Color: body.RGB{B: 1}, Appearance: body.TexturedSphere},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return r
}

func get(t *testing.T, r *body.Registry, name string) body.Body {
	t.Helper()
	var out body.Body
	if err := r.View(name, func(b *body.Body) { out = *b }); err != nil {
		t.Fatalf("view %s: %v", name, err)
	}
	return out
}

func TestAdvanceOrbitAndSpinIndependent(t *testing.T) {
	r := newTestRegistry(t)
	s := NewStepper(1.0)

	for i := 0; i < 10; i++ {
		s.Advance(r)
	}

	earth := get(t, r, "Earth")
	wantOrbit := earth.OrbitalSpeed * 10
	if math.Abs(earth.OrbitAngle-wantOrbit) > 1e-12 {
		t.Errorf("orbit angle = %g, want %g", earth.OrbitAngle, wantOrbit)
	}
	wantSpin := 0.01 * 10
	if math.Abs(earth.SpinAngle-wantSpin) > 1e-12 {
		t.Errorf("spin angle = %g, want %g", earth.SpinAngle, wantSpin)
	}

	if s.Frames() != 10 {
		t.Errorf("frames = %d, want 10", s.Frames())
	}
}

func TestAdvanceCentralBodyFrozenOrbit(t *testing.T) {
	r := newTestRegistry(t)
	s := NewStepper(1.0)

	for i := 0; i < 50; i++ {
		s.Advance(r)
	}

	sun := get(t, r, "Sun")
	if sun.OrbitAngle != 0 {
		t.Errorf("central body orbit angle moved: %g", sun.OrbitAngle)
	}
	if sun.SpinAngle == 0 {
		t.Error("central body should still spin")
	}
}

func TestTimeScale(t *testing.T) {
	r1 := newTestRegistry(t)
	r4 := newTestRegistry(t)

	NewStepper(4.0).Advance(r4)
	s1 := NewStepper(1.0)
	for i := 0; i < 4; i++ {
		s1.Advance(r1)
	}

	e1 := get(t, r1, "Earth")
	e4 := get(t, r4, "Earth")
	if math.Abs(e1.OrbitAngle-e4.OrbitAngle) > 1e-12 {
		t.Errorf("time scale 4 x1 frame (%g) != scale 1 x4 frames (%g)", e4.OrbitAngle, e1.OrbitAngle)
	}
}

func TestNewStepperBadScale(t *testing.T) {
	if s := NewStepper(0); s.TimeScale != 1.0 {
		t.Errorf("zero scale should default to 1.0, got %g", s.TimeScale)
	}
	if s := NewStepper(-2); s.TimeScale != 1.0 {
		t.Errorf("negative scale should default to 1.0, got %g", s.TimeScale)
	}
}

func TestPosition(t *testing.T) {
	r := newTestRegistry(t)

	var earth *body.Body
	r.Each(func(b *body.Body) {
		if b.Name == "Earth" {
			earth = b
		}
	})

	earth.OrbitAngle = 0
	p := Position(earth)
	if math.Abs(p.X-earth.Distance) > 1e-9 || p.Z != 0 || p.Y != 0 {
		t.Errorf("at angle 0 expected (d,0,0), got %+v", p)
	}

	earth.OrbitAngle = math.Pi / 2
	p = Position(earth)
	if math.Abs(p.Z-earth.Distance) > 1e-9 || math.Abs(p.X) > 1e-9 {
		t.Errorf("at angle pi/2 expected (0,0,d), got %+v", p)
	}
}

func TestStatesSnapshot(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Select("Earth"); err != nil {
		t.Fatalf("select: %v", err)
	}

	states := States(r)
	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	if states[0].Name != "Sun" || states[1].Name != "Earth" {
		t.Errorf("catalog order lost: %s, %s", states[0].Name, states[1].Name)
	}
	if !states[1].Highlighted || states[0].Highlighted {
		t.Error("only Earth should be highlighted")
	}
	if states[1].Appearance != body.TexturedSphere {
		t.Error("Earth state should carry the textured appearance")
	}

	// An edit between frames is visible on the next snapshot.
	if err := r.Update("Earth", func(b *body.Body) error {
		b.VisualRadius = 42
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	states = States(r)
	if states[1].VisualRadius != 42 {
		t.Errorf("edit not visible on next frame: %g", states[1].VisualRadius)
	}
}
