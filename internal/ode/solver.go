package ode

import "math"

// Params defines a single initial value problem for dy/dx = K·y on
// [X0, XFinal] with fixed step H. K may be any sign or zero.
type Params struct {
	K      float64
	X0     float64
	Y0     float64
	XFinal float64
	H      float64
}

// Validate checks the interval and step constraints. The step range
// recommended by the front ends ([0.001, 1.0]) is not enforced here.
func (p Params) Validate() error {
	if p.H <= 0 {
		return &ParamError{Field: "h", Value: p.H, Message: "step size must be positive"}
	}
	if p.XFinal <= p.X0 {
		return &ParamError{Field: "x_final", Value: p.XFinal, Message: "final x must be greater than initial x"}
	}
	return nil
}

// Derivative evaluates dy/dx = K·y.
func (p Params) Derivative(y float64) float64 {
	return p.K * y
}

// ExactAt evaluates the closed-form solution y0·e^(K(x−x0)) at x.
func (p Params) ExactAt(x float64) float64 {
	return p.Y0 * math.Exp(p.K*(x-p.X0))
}

// Steps is the number of Euler updates: floor((XFinal−X0)/H). The truncating
// conversion drops any final partial interval, so the last grid point can
// land short of XFinal when the interval is not an exact multiple of H.
func (p Params) Steps() int {
	return int((p.XFinal - p.X0) / p.H)
}

// Trajectory holds the uniform grid and both solution curves. All three
// slices share the same length and are never mutated after Solve returns.
type Trajectory struct {
	X     []float64
	Euler []float64
	Exact []float64
}

func (t *Trajectory) Len() int {
	return len(t.X)
}

// ErrorAt is the absolute error |Euler[i] − Exact[i]|.
func (t *Trajectory) ErrorAt(i int) float64 {
	return math.Abs(t.Euler[i] - t.Exact[i])
}

// Errors returns the absolute error at every grid point.
func (t *Trajectory) Errors() []float64 {
	errs := make([]float64, t.Len())
	for i := range errs {
		errs[i] = t.ErrorAt(i)
	}
	return errs
}

// FinalEuler returns the last Euler value.
func (t *Trajectory) FinalEuler() float64 {
	return t.Euler[t.Len()-1]
}

// FinalExact returns the last analytical value.
func (t *Trajectory) FinalExact() float64 {
	return t.Exact[t.Len()-1]
}

// Solve integrates dy/dx = K·y with forward Euler,
// y[i+1] = y[i] + H·K·y[i], and evaluates the exact solution at each grid
// point. The returned trajectory has Steps()+1 points, the first being the
// initial condition.
func Solve(p Params) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Steps()
	traj := &Trajectory{
		X:     make([]float64, 0, n+1),
		Euler: make([]float64, 0, n+1),
		Exact: make([]float64, 0, n+1),
	}

	x := p.X0
	y := p.Y0
	traj.X = append(traj.X, x)
	traj.Euler = append(traj.Euler, y)
	traj.Exact = append(traj.Exact, p.Y0)

	for i := 0; i < n; i++ {
		y = y + p.H*p.Derivative(y)
		x = x + p.H

		traj.X = append(traj.X, x)
		traj.Euler = append(traj.Euler, y)
		traj.Exact = append(traj.Exact, p.ExactAt(x))
	}

	return traj, nil
}
