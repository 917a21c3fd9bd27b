package catalog

import (
	"testing"

	"github.com/san-kum/orrery/internal/body"
)

func TestBodiesCount(t *testing.T) {
	specs := Bodies()
	if len(specs) != 9 {
		t.Fatalf("expected 9 bodies (Sun + 8 planets), got %d", len(specs))
	}
}

func TestBodiesUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Bodies() {
		if seen[s.Name] {
			t.Errorf("duplicate body name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestOnlySunIsCentral(t *testing.T) {
	for _, s := range Bodies() {
		central := s.DistanceAU == 0
		if central && s.Name != "Sun" {
			t.Errorf("%s has zero distance but is not the Sun", s.Name)
		}
		if !central && s.Name == "Sun" {
			t.Error("Sun should have zero distance")
		}
	}
}

func TestOnlyEarthTextured(t *testing.T) {
	for _, s := range Bodies() {
		if s.Appearance == body.TexturedSphere && s.Name != "Earth" {
			t.Errorf("%s should not use the textured appearance", s.Name)
		}
		if s.Name == "Earth" && s.Appearance != body.TexturedSphere {
			t.Error("Earth should use the textured appearance")
		}
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if r.Len() != 9 {
		t.Errorf("expected 9 bodies, got %d", r.Len())
	}

	// Central body invariant: distance == 0 iff orbital speed == 0.
	r.Each(func(b *body.Body) {
		if (b.Distance == 0) != (b.OrbitalSpeed == 0) {
			t.Errorf("%s: distance %g but orbital speed %g", b.Name, b.Distance, b.OrbitalSpeed)
		}
	})

	if err := r.View("Sun", func(b *body.Body) {
		if b.VisualRadius != SunVisualRadius {
			t.Errorf("Sun visual radius = %g, want %d", b.VisualRadius, SunVisualRadius)
		}
	}); err != nil {
		t.Fatalf("view Sun: %v", err)
	}
}
