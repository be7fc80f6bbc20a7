package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbital/internal/body"
	"github.com/san-kum/orbital/internal/vec"
)

// TrailsToSVG renders the bodies' trails and current positions as an SVG
// image. Bounds are fitted to the drawn geometry with 10% padding.
func TrailsToSVG(bodies []*body.Body, width, height int) string {
	points := make([]vec.Vec2, 0)
	for _, b := range bodies {
		points = append(points, b.Trail...)
		points = append(points, b.Pos)
	}
	if len(points) == 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	toX := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	toY := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }
	// One uniform scale keeps circles round.
	scale := min(float64(width)/rangeX, float64(height)/rangeY)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, b := range bodies {
		color := b.Color
		if color == "" {
			color = "#ffffff"
		}
		if len(b.Trail) >= 2 {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="0.5" stroke-width="1" d="M`, color))
			for i, p := range b.Trail {
				if i == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.X), toY(p.Y)))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p.X), toY(p.Y)))
				}
			}
			sb.WriteString("\"/>\n")
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, toX(b.Pos.X), toY(b.Pos.Y), max(b.Radius*scale, 1.5), color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
