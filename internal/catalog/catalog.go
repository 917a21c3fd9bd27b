// Package catalog holds the fixed set of bodies shown by the visualizer.
package catalog

import "github.com/san-kum/orrery/internal/body"

// SunVisualRadius shrinks the Sun for display; at the shared radius
// scaling it would be drawn ~700 units wide and swallow Mercury.
const SunVisualRadius = 10

// Bodies returns the Sun and the eight planets with their physical
// parameters: radius in meters, distance in AU, rotation step per frame,
// mass in kilograms. Order is heliocentric and stable.
func Bodies() []body.Spec {
	return []body.Spec{
		{
			Name:         "Sun",
			RadiusMeters: 6.96e8,
			Mass:         body.SunMass,
			Color:        body.RGB{R: 1.0, G: 1.0, B: 0.0},
			VisualRadius: SunVisualRadius,
		},
		{
			Name:          "Mercury",
			RadiusMeters:  2.44e6,
			DistanceAU:    0.39,
			RotationSpeed: 0.004,
			Mass:          3.30e23,
			Color:         body.RGB{R: 0.6, G: 0.6, B: 0.6},
		},
		{
			Name:          "Venus",
			RadiusMeters:  6.05e6,
			DistanceAU:    0.72,
			RotationSpeed: 0.002,
			Mass:          4.87e24,
			Color:         body.RGB{R: 1.0, G: 0.8, B: 0.2},
		},
		{
			Name:          "Earth",
			RadiusMeters:  6.37e6,
			DistanceAU:    1.0,
			RotationSpeed: 0.01,
			Mass:          5.97e24,
			Color:         body.RGB{R: 0.0, G: 0.0, B: 1.0},
			Appearance:    body.TexturedSphere,
		},
		{
			Name:          "Mars",
			RadiusMeters:  3.39e6,
			DistanceAU:    1.52,
			RotationSpeed: 0.015,
			Mass:          6.42e23,
			Color:         body.RGB{R: 1.0, G: 0.5, B: 0.0},
		},
		{
			Name:          "Jupiter",
			RadiusMeters:  7.14e7,
			DistanceAU:    5.20,
			RotationSpeed: 0.03,
			Mass:          1.90e27,
			Color:         body.RGB{R: 0.8, G: 0.7, B: 0.5},
		},
		{
			Name:          "Saturn",
			RadiusMeters:  6.03e7,
			DistanceAU:    9.58,
			RotationSpeed: 0.027,
			Mass:          5.68e26,
			Color:         body.RGB{R: 0.9, G: 0.8, B: 0.5},
		},
		{
			Name:          "Uranus",
			RadiusMeters:  2.56e7,
			DistanceAU:    19.22,
			RotationSpeed: 0.022,
			Mass:          8.68e25,
			Color:         body.RGB{R: 0.4, G: 0.7, B: 1.0},
		},
		{
			Name:          "Neptune",
			RadiusMeters:  2.47e7,
			DistanceAU:    30.05,
			RotationSpeed: 0.018,
			Mass:          1.02e26,
			Color:         body.RGB{R: 0.3, G: 0.5, B: 1.0},
		},
	}
}

// NewRegistry builds the default registry from the full catalog.
func NewRegistry() (*body.Registry, error) {
	return body.NewRegistry(Bodies())
}
