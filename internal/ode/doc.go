// Package ode solves the linear growth/decay equation dy/dx = k·y with the
// forward Euler method and evaluates the exact solution alongside it.
//
// The package defines the numerical core of eulerlab:
//
//   - [Params]: problem definition (k, initial condition, interval, step)
//   - [Solve]: fixed-step forward Euler over a uniform grid
//   - [Trajectory]: the resulting x / Euler / exact sequences
//
// # Example
//
//	traj, err := ode.Solve(ode.Params{K: 0.1, Y0: 1, XFinal: 5, H: 0.1})
//
// Solve is pure and deterministic: the trajectory is built once and never
// mutated afterwards. The exact curve is evaluated from the closed form
// y0·e^(k(x−x0)) at every grid point rather than recursively, so it does not
// accumulate floating-point error of its own.
package ode
