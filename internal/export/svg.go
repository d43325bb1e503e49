// Package export writes trajectory charts to files.
package export

import (
	"fmt"
	"strings"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

// ChartSVG renders both solution curves as polylines on a dark background.
// The Euler approximation is drawn in cyan, the analytical solution in
// orange.
func ChartSVG(traj *ode.Trajectory, width, height int) string {
	if traj.Len() < 2 {
		return ""
	}

	minX, maxX := traj.X[0], traj.X[traj.Len()-1]
	minY, maxY := traj.Euler[0], traj.Euler[0]
	for i := 0; i < traj.Len(); i++ {
		for _, v := range []float64{traj.Euler[i], traj.Exact[i]} {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writePath := func(ys []float64, stroke string) {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i := 0; i < traj.Len(); i++ {
			px := (traj.X[i] - minX) / rangeX * float64(width)
			py := float64(height) - (ys[i]-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	writePath(traj.Exact, "#ff8800")
	writePath(traj.Euler, "#00ffff")

	sb.WriteString("</svg>")
	return sb.String()
}
