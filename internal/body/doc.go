// Package body models the celestial objects of the solar system view.
//
// Each [Body] carries physical state (mass, radius, density), orbital
// state (distance, orbital speed, orbit angle) and display state
// (visual radius, color, highlight flag). Mass, radius and density are
// mutually dependent; the package exposes explicit recompute operations
// and leaves the choice of dependent variable to the caller:
//
//   - [Body.RecomputeDensityFromMass]: density follows mass and radius
//   - [Body.RecomputeMassFromDensity]: mass follows density and radius
//
// A [Registry] holds the full catalog behind a mutex so that a frame
// loop and an editing panel can share the bodies without racing.
package body
