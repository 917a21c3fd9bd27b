// Package texture generates the procedural surface map used for the
// textured planet. The map is a latitude/longitude grid of colors:
// noise-driven continents over ocean, with white polar caps.
package texture

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/san-kum/orrery/internal/body"
)

const (
	// noiseScale stretches the noise field so continents span many
	// grid cells instead of speckling.
	noiseScale = 2.2

	// poleLatitude is the absolute latitude (radians) above which
	// cells become ice caps.
	poleLatitude = 1.31
)

var (
	ocean = body.RGB{R: 0.05, G: 0.22, B: 0.55}
	land  = body.RGB{R: 0.13, G: 0.55, B: 0.13}
	ice   = body.RGB{R: 0.95, G: 0.95, B: 0.98}
)

// Map is a lat/long color grid. Rows run from the north pole (latitude
// +pi/2) to the south pole; columns run a full turn of longitude.
type Map struct {
	Rows, Cols int
	cells      []body.RGB
}

func (m *Map) At(row, col int) body.RGB {
	return m.cells[row*m.Cols+col]
}

// Options control continent coverage and the noise field.
type Options struct {
	Rows        int
	Cols        int
	LandDensity float64 // fraction of non-polar surface that is land, in [0,1]
	Seed        int64
}

func (o *Options) fill() {
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.Cols <= 0 {
		o.Cols = 48
	}
	if o.LandDensity < 0 {
		o.LandDensity = 0
	}
	if o.LandDensity > 1 {
		o.LandDensity = 1
	}
}

// Generate builds the surface map. The same options always produce the
// same map: the noise source is seeded, and sampling is performed on
// the unit sphere so the texture wraps seamlessly in longitude.
func Generate(opts Options) *Map {
	opts.fill()
	noise := opensimplex.NewNormalized(opts.Seed)

	m := &Map{
		Rows:  opts.Rows,
		Cols:  opts.Cols,
		cells: make([]body.RGB, opts.Rows*opts.Cols),
	}

	// LandDensity is a quantile over the normalized noise: density d
	// makes cells with noise above 1-d land.
	threshold := 1 - opts.LandDensity

	for row := 0; row < opts.Rows; row++ {
		lat := math.Pi/2 - math.Pi*(float64(row)+0.5)/float64(opts.Rows)
		for col := 0; col < opts.Cols; col++ {
			lon := 2 * math.Pi * float64(col) / float64(opts.Cols)

			var c body.RGB
			switch {
			case math.Abs(lat) > poleLatitude:
				c = ice
			default:
				x := math.Cos(lat) * math.Cos(lon)
				y := math.Cos(lat) * math.Sin(lon)
				z := math.Sin(lat)
				v := noise.Eval3(x*noiseScale, y*noiseScale, z*noiseScale)
				if v >= threshold {
					c = land
				} else {
					c = ocean
				}
			}
			m.cells[row*m.Cols+col] = c
		}
	}
	return m
}

// LandFraction reports the share of non-polar cells that are land.
func (m *Map) LandFraction() float64 {
	var landCells, total int
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			c := m.At(row, col)
			if c == ice {
				continue
			}
			total++
			if c == land {
				landCells++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(landCells) / float64(total)
}
