package texture

import (
	"math"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Rows: 24, Cols: 48, LandDensity: 0.45, Seed: 7}
	a := Generate(opts)
	b := Generate(opts)

	for row := 0; row < a.Rows; row++ {
		for col := 0; col < a.Cols; col++ {
			if a.At(row, col) != b.At(row, col) {
				t.Fatalf("maps differ at (%d,%d) for identical options", row, col)
			}
		}
	}
}

func TestGenerateSeedChangesMap(t *testing.T) {
	a := Generate(Options{Rows: 24, Cols: 48, LandDensity: 0.45, Seed: 1})
	b := Generate(Options{Rows: 24, Cols: 48, LandDensity: 0.45, Seed: 2})

	same := true
	for row := 0; row < a.Rows && same; row++ {
		for col := 0; col < a.Cols; col++ {
			if a.At(row, col) != b.At(row, col) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical maps")
	}
}

func TestPolesAreIce(t *testing.T) {
	m := Generate(Options{Rows: 24, Cols: 48, LandDensity: 0.45, Seed: 7})

	for col := 0; col < m.Cols; col++ {
		if m.At(0, col) != ice {
			t.Fatalf("north pole cell %d is not ice", col)
		}
		if m.At(m.Rows-1, col) != ice {
			t.Fatalf("south pole cell %d is not ice", col)
		}
	}
}

func TestLandDensityExtremes(t *testing.T) {
	allSea := Generate(Options{Rows: 24, Cols: 48, LandDensity: 0, Seed: 7})
	if f := allSea.LandFraction(); f != 0 {
		t.Errorf("density 0 should give no land, got fraction %g", f)
	}

	allLand := Generate(Options{Rows: 24, Cols: 48, LandDensity: 1, Seed: 7})
	if f := allLand.LandFraction(); f != 1 {
		t.Errorf("density 1 should give all land, got fraction %g", f)
	}
}

func TestLandDensityMonotonic(t *testing.T) {
	low := Generate(Options{Rows: 48, Cols: 96, LandDensity: 0.2, Seed: 7})
	high := Generate(Options{Rows: 48, Cols: 96, LandDensity: 0.7, Seed: 7})

	if low.LandFraction() >= high.LandFraction() {
		t.Errorf("land fraction should grow with density: %g vs %g",
			low.LandFraction(), high.LandFraction())
	}
}

func TestDefaultsFilled(t *testing.T) {
	m := Generate(Options{LandDensity: 0.45, Seed: 7})
	if m.Rows <= 0 || m.Cols <= 0 {
		t.Fatalf("zero options should fall back to a usable grid, got %dx%d", m.Rows, m.Cols)
	}
}

func TestLandDensityClamped(t *testing.T) {
	m := Generate(Options{Rows: 24, Cols: 48, LandDensity: 2.0, Seed: 7})
	if f := m.LandFraction(); math.Abs(f-1) > 1e-9 {
		t.Errorf("density above 1 should clamp to all land, got %g", f)
	}
}
