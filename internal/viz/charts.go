// Package viz renders trajectories as terminal charts.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

// ComparisonChart plots the Euler approximation and the analytical solution
// on a single graph. The Euler curve is blue, the analytical curve red.
func ComparisonChart(traj *ode.Trajectory, width, height int) string {
	return asciigraph.PlotMany(
		[][]float64{traj.Euler, traj.Exact},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption("euler (blue) vs analytical (red)"),
	)
}

// ErrorChart plots the absolute error against the grid index.
func ErrorChart(traj *ode.Trajectory, width, height int) string {
	return asciigraph.Plot(traj.Errors(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Green),
		asciigraph.Caption("absolute error"),
	)
}
