package tui

import (
	"math"
	"strings"
)

// Braille patterns: 2x4 dots per cell, offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface for the top-down orbit view.
// Sub-pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawCircle traces an orbit ring around (cx, cy) in sub-pixel
// coordinates. Dots are spaced so the ring stays sparse and doesn't
// overpower the bodies.
func (c *Canvas) DrawCircle(cx, cy int, radius float64) {
	if radius <= 0 {
		return
	}
	steps := int(radius * 2)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(radius*math.Cos(angle))
		// Terminal cells are taller than wide; halve y to keep rings round.
		y := cy + int(radius*math.Sin(angle)*0.5)
		c.Set(x, y)
	}
}

// DrawDot fills a small disc, used for body markers.
func (c *Canvas) DrawDot(cx, cy, size int) {
	for dy := -size; dy <= size; dy++ {
		for dx := -size; dx <= size; dx++ {
			if dx*dx+dy*dy <= size*size {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
