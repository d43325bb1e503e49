// Package metrics computes error statistics over a solved trajectory.
package metrics

import "math"

// Metric accumulates a statistic over the absolute-error sequence.
type Metric interface {
	Name() string
	Observe(err float64)
	Value() float64
	Reset()
}

type MaxError struct {
	max float64
}

func NewMaxError() *MaxError { return &MaxError{} }

func (m *MaxError) Name() string { return "max_error" }

func (m *MaxError) Observe(err float64) {
	if err > m.max {
		m.max = err
	}
}

func (m *MaxError) Value() float64 { return m.max }
func (m *MaxError) Reset()         { m.max = 0 }

type MeanError struct {
	total   float64
	samples int
}

func NewMeanError() *MeanError { return &MeanError{} }

func (m *MeanError) Name() string { return "mean_error" }

func (m *MeanError) Observe(err float64) {
	m.total += err
	m.samples++
}

func (m *MeanError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanError) Reset() {
	m.total = 0
	m.samples = 0
}

// RMSError is the root of the mean of squared errors.
type RMSError struct {
	totalSq float64
	samples int
}

func NewRMSError() *RMSError { return &RMSError{} }

func (m *RMSError) Name() string { return "rms_error" }

func (m *RMSError) Observe(err float64) {
	m.totalSq += err * err
	m.samples++
}

func (m *RMSError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.totalSq / float64(m.samples))
}

func (m *RMSError) Reset() {
	m.totalSq = 0
	m.samples = 0
}
