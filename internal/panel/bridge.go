// Package panel implements the parameter-editing bridge between a UI
// panel and the body registry. Edits are validated up front and applied
// as one transaction, so a malformed field never leaves a body half
// updated.
package panel

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/san-kum/orrery/internal/body"
)

// Domain errors for panel operations.
var (
	// ErrNoSelection indicates an edit was applied with no body selected.
	ErrNoSelection = errors.New("panel: no body selected")

	// ErrNotNumeric indicates a field that does not parse as a number.
	ErrNotNumeric = errors.New("panel: field is not numeric")

	// ErrOutOfRange indicates a numeric field outside its valid domain.
	ErrOutOfRange = errors.New("panel: field out of range")

	// ErrAlreadyOpen indicates a second panel open attempt.
	ErrAlreadyOpen = errors.New("panel: already open")
)

// NotApplicable is shown in the orbital-speed field for the central
// body, which has no orbit.
const NotApplicable = "n/a"

// Fields is the panel's view of a body, as entered/displayed text.
// OrbitalSpeed is display-only: it is always re-derived from distance
// on apply, never taken from input.
type Fields struct {
	RotationSpeed string
	OrbitalSpeed  string
	Mass          string
	Radius        string
	Density       string
}

// displayed keeps the numeric values behind the last populated Fields,
// so ApplyEdits can tell an explicit density edit from an echo of what
// the panel showed.
type displayed struct {
	rotationSpeed float64
	mass          float64
	radius        float64
	density       float64
}

// Bridge mediates between one editing panel and the registry. Only one
// panel may be open at a time.
type Bridge struct {
	reg      *body.Registry
	selected string
	open     bool
	fields   Fields
	shown    displayed
}

func NewBridge(reg *body.Registry) *Bridge {
	return &Bridge{reg: reg}
}

// Open marks the panel open. A second open while one panel is active
// fails, which is what keeps the double-click handler from spawning
// two panels.
func (br *Bridge) Open() error {
	if br.open {
		return ErrAlreadyOpen
	}
	br.open = true
	return nil
}

func (br *Bridge) IsOpen() bool { return br.open }

// Selected returns the selected body name, or "" when none.
func (br *Bridge) Selected() string { return br.selected }

// Fields returns the panel fields as of the last populate.
func (br *Bridge) Fields() Fields { return br.fields }

// Select highlights the named body and populates the panel fields from
// its live state. Any previously highlighted body is cleared.
func (br *Bridge) Select(name string) error {
	if err := br.reg.Select(name); err != nil {
		return err
	}
	br.selected = name
	return br.populate()
}

// ApplyEdits validates every field and then writes the body in one
// transaction. Radius and mass take priority: density is recomputed
// from them. If the density field was explicitly changed relative to
// what the panel displayed, density wins instead and mass is
// recomputed from it. Rotation speed is set directly; orbital speed is
// re-derived from distance for orbiting bodies. On any validation
// error the body is untouched and the error is returned to the panel.
func (br *Bridge) ApplyEdits(f Fields) error {
	if br.selected == "" {
		return ErrNoSelection
	}

	radius, err := parseField("radius", f.Radius)
	if err != nil {
		return err
	}
	mass, err := parseField("mass", f.Mass)
	if err != nil {
		return err
	}
	density, err := parseField("density", f.Density)
	if err != nil {
		return err
	}
	rotation, err := parseField("rotation speed", f.RotationSpeed)
	if err != nil {
		return err
	}

	if radius <= 0 {
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrOutOfRange, radius)
	}
	if mass <= 0 {
		return fmt.Errorf("%w: mass must be > 0, got %g", ErrOutOfRange, mass)
	}
	if density <= 0 {
		return fmt.Errorf("%w: density must be > 0, got %g", ErrOutOfRange, density)
	}

	densityEdited := !closeEnough(density, br.shown.density)

	err = br.reg.Update(br.selected, func(b *body.Body) error {
		b.Radius = radius
		b.Mass = mass
		b.RecomputeDensityFromMass()

		if densityEdited {
			b.Density = density
			b.RecomputeMassFromDensity()
		}

		b.RotationSpeed = rotation
		if b.Distance > 0 {
			b.OrbitalSpeed = body.ComputeOrbitalSpeed(b.Distance)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return br.populate()
}

// RestoreSelected reverts the selected body to its construction
// defaults and refreshes the panel.
func (br *Bridge) RestoreSelected() error {
	if br.selected == "" {
		return ErrNoSelection
	}
	err := br.reg.Update(br.selected, func(b *body.Body) error {
		b.RestoreDefaults()
		return nil
	})
	if err != nil {
		return err
	}
	return br.populate()
}

// Close clears every highlight, drops the selection and marks the
// panel closed. Always safe to call.
func (br *Bridge) Close() {
	br.reg.ClearHighlights()
	br.selected = ""
	br.open = false
	br.fields = Fields{}
	br.shown = displayed{}
}

func (br *Bridge) populate() error {
	return br.reg.View(br.selected, func(b *body.Body) {
		br.shown = displayed{
			rotationSpeed: b.RotationSpeed,
			mass:          b.Mass,
			radius:        b.Radius,
			density:       b.Density,
		}
		br.fields = Fields{
			RotationSpeed: formatField(b.RotationSpeed),
			Mass:          formatField(b.Mass),
			Radius:        formatField(b.Radius),
			Density:       formatField(b.Density),
		}
		if b.Central() {
			br.fields.OrbitalSpeed = NotApplicable
		} else {
			br.fields.OrbitalSpeed = formatField(b.OrbitalSpeed)
		}
	})
}

func parseField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrNotNumeric, name, raw)
	}
	return v, nil
}

func formatField(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	scale := b
	if scale < 0 {
		scale = -scale
	}
	if scale == 0 {
		return false
	}
	return diff/scale < 1e-9
}
