package ode_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

var _ = Describe("Solve", func() {
	It("starts both curves at the initial condition", func() {
		traj, err := ode.Solve(ode.Params{K: 0.3, X0: 1.5, Y0: 2.0, XFinal: 3.0, H: 0.1})
		Expect(err).NotTo(HaveOccurred())

		Expect(traj.X[0]).To(Equal(1.5))
		Expect(traj.Euler[0]).To(Equal(2.0))
		Expect(traj.Exact[0]).To(Equal(2.0))
	})

	It("produces a uniform grid with spacing h", func() {
		traj, err := ode.Solve(ode.Params{K: 0.1, Y0: 1, XFinal: 2, H: 0.25})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i+1 < traj.Len(); i++ {
			Expect(traj.X[i+1] - traj.X[i]).To(BeNumerically("~", 0.25, 1e-12))
		}
	})

	It("has floor((x_final-x0)/h)+1 points", func() {
		traj, err := ode.Solve(ode.Params{K: 0.1, Y0: 1, XFinal: 1, H: 0.1})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(11))
	})

	It("drops the final partial interval when h does not divide the span", func() {
		// (1.0 - 0) / 0.3 truncates to 3 steps; the grid ends at 0.9.
		traj, err := ode.Solve(ode.Params{K: 0.1, Y0: 1, XFinal: 1, H: 0.3})
		Expect(err).NotTo(HaveOccurred())

		Expect(traj.Len()).To(Equal(4))
		Expect(traj.X[3]).To(BeNumerically("~", 0.9, 1e-12))
	})

	It("stays constant when k is zero", func() {
		traj, err := ode.Solve(ode.Params{K: 0, Y0: 3.5, XFinal: 2, H: 0.1})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < traj.Len(); i++ {
			Expect(traj.Euler[i]).To(Equal(3.5))
			Expect(traj.Exact[i]).To(BeNumerically("~", 3.5, 1e-12))
		}
	})

	It("is non-decreasing for positive k and positive y0", func() {
		traj, err := ode.Solve(ode.Params{K: 0.5, Y0: 1, XFinal: 4, H: 0.2})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i+1 < traj.Len(); i++ {
			Expect(traj.Euler[i+1]).To(BeNumerically(">=", traj.Euler[i]))
			Expect(traj.Exact[i+1]).To(BeNumerically(">=", traj.Exact[i]))
		}
	})

	It("matches the coarse growth scenario", func() {
		traj, err := ode.Solve(ode.Params{K: 0.1, X0: 0, Y0: 1, XFinal: 1.0, H: 0.5})
		Expect(err).NotTo(HaveOccurred())

		Expect(traj.Len()).To(Equal(3))
		Expect(traj.X).To(Equal([]float64{0, 0.5, 1.0}))
		Expect(traj.Euler[1]).To(BeNumerically("~", 1.05, 1e-12))
		Expect(traj.Euler[2]).To(BeNumerically("~", 1.1025, 1e-12))
		Expect(traj.Exact[1]).To(BeNumerically("~", math.Exp(0.05), 1e-12))
		Expect(traj.Exact[2]).To(BeNumerically("~", math.Exp(0.1), 1e-12))
	})

	It("matches the decay scenario", func() {
		traj, err := ode.Solve(ode.Params{K: -1, X0: 0, Y0: 1, XFinal: 1.0, H: 0.1})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i+1 < traj.Len(); i++ {
			Expect(traj.Euler[i+1]).To(BeNumerically("<", traj.Euler[i]))
		}
		Expect(traj.FinalEuler()).To(BeNumerically("~", math.Pow(0.9, 10), 1e-12))
		Expect(traj.FinalExact()).To(BeNumerically("~", math.Exp(-1), 1e-12))
	})

	It("rejects a degenerate interval", func() {
		_, err := ode.Solve(ode.Params{K: 1, X0: 5, Y0: 1, XFinal: 5, H: 0.1})
		Expect(errors.Is(err, ode.ErrInvalidParameter)).To(BeTrue())
	})

	It("rejects a non-positive step", func() {
		_, err := ode.Solve(ode.Params{K: 1, Y0: 1, XFinal: 1, H: 0})
		Expect(errors.Is(err, ode.ErrInvalidParameter)).To(BeTrue())

		var perr *ode.ParamError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Field).To(Equal("h"))
	})
})

var _ = Describe("Trajectory", func() {
	It("reports pointwise absolute errors", func() {
		traj := &ode.Trajectory{
			X:     []float64{0, 1},
			Euler: []float64{1, 1.1},
			Exact: []float64{1, 1.2},
		}

		Expect(traj.ErrorAt(0)).To(Equal(0.0))
		Expect(traj.ErrorAt(1)).To(BeNumerically("~", 0.1, 1e-12))
		Expect(traj.Errors()).To(HaveLen(2))
	})
})
