package export

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

// SavePlot renders both curves with gonum/plot and writes the chart to path.
// The format follows the file extension (.png, .svg, .pdf, ...).
func SavePlot(traj *ode.Trajectory, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	eulerPts := make(plotter.XYs, traj.Len())
	exactPts := make(plotter.XYs, traj.Len())
	for i := 0; i < traj.Len(); i++ {
		eulerPts[i] = plotter.XY{X: traj.X[i], Y: traj.Euler[i]}
		exactPts[i] = plotter.XY{X: traj.X[i], Y: traj.Exact[i]}
	}

	eulerLine, err := plotter.NewLine(eulerPts)
	if err != nil {
		return err
	}
	eulerLine.Color = color.RGBA{B: 255, A: 255}

	exactLine, err := plotter.NewLine(exactPts)
	if err != nil {
		return err
	}
	exactLine.Color = color.RGBA{R: 255, A: 255}

	p.Add(eulerLine, exactLine)
	p.Legend.Add("euler", eulerLine)
	p.Legend.Add("analytical", exactLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveErrorPlot renders the absolute-error curve to path.
func SaveErrorPlot(traj *ode.Trajectory, path string) error {
	p := plot.New()
	p.Title.Text = "absolute error"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "|euler - analytical|"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, traj.Len())
	for i := 0; i < traj.Len(); i++ {
		pts[i] = plotter.XY{X: traj.X[i], Y: traj.ErrorAt(i)}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{G: 160, A: 255}

	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
