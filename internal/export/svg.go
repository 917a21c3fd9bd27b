// Package export renders recorded sessions as standalone SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orrery/internal/storage"
)

var palette = []string{
	"#f5d442", "#b0a99f", "#e8c07a", "#4a90d9", "#d95d39",
	"#d9b38c", "#e0cda9", "#8fd0d9", "#4a62d9",
}

// OrbitsToSVG draws a top-down view of every body's recorded path, one
// polyline per body. Bounds are fitted to the data with padding so a
// short session still fills the frame.
func OrbitsToSVG(track *storage.Track, width, height int) string {
	if track == nil || len(track.Rows) < 2 || len(track.Bodies) == 0 {
		return ""
	}

	minX, maxX, minZ, maxZ := bounds(track)
	rangeX := maxX - minX
	rangeZ := maxZ - minZ
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeZ == 0 {
		rangeZ = 1
	}
	minX -= rangeX * 0.05
	minZ -= rangeZ * 0.05
	rangeX *= 1.1
	rangeZ *= 1.1

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#05050c"/>
`, width, height, width, height))

	for i := range track.Bodies {
		xs := track.Column(i, 0)
		zs := track.Column(i, 1)
		if len(xs) < 2 || len(zs) < 2 {
			continue
		}

		color := palette[i%len(palette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j := range xs {
			px := (xs[j] - minX) / rangeX * float64(width)
			pz := (zs[j] - minZ) / rangeZ * float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, pz))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, pz))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(track *storage.Track) (minX, maxX, minZ, maxZ float64) {
	firstX, firstZ := true, true
	for i := range track.Bodies {
		for _, x := range track.Column(i, 0) {
			if firstX || x < minX {
				minX = x
			}
			if firstX || x > maxX {
				maxX = x
			}
			firstX = false
		}
		for _, z := range track.Column(i, 1) {
			if firstZ || z < minZ {
				minZ = z
			}
			if firstZ || z > maxZ {
				maxZ = z
			}
			firstZ = false
		}
	}
	return
}
