package metrics

import (
	"math"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

// Summary collects the headline numbers shown after a solve.
type Summary struct {
	FinalEuler       float64 `json:"final_euler"`
	FinalExact       float64 `json:"final_analytical"`
	FinalAbsError    float64 `json:"final_abs_error"`
	FinalRelErrorPct float64 `json:"final_rel_error_pct"`
	MaxError         float64 `json:"max_error"`
	MeanError        float64 `json:"mean_error"`
	RMSError         float64 `json:"rms_error"`
}

// Summarize runs the error metrics over the trajectory and derives the final
// point statistics. Relative error is reported as a percentage of the final
// analytical value, or 0 when that value is exactly zero.
func Summarize(traj *ode.Trajectory) Summary {
	maxErr := NewMaxError()
	meanErr := NewMeanError()
	rmsErr := NewRMSError()

	for _, e := range traj.Errors() {
		maxErr.Observe(e)
		meanErr.Observe(e)
		rmsErr.Observe(e)
	}

	s := Summary{
		FinalEuler:    traj.FinalEuler(),
		FinalExact:    traj.FinalExact(),
		FinalAbsError: math.Abs(traj.FinalEuler() - traj.FinalExact()),
		MaxError:      maxErr.Value(),
		MeanError:     meanErr.Value(),
		RMSError:      rmsErr.Value(),
	}

	if s.FinalExact != 0 {
		s.FinalRelErrorPct = s.FinalAbsError / math.Abs(s.FinalExact) * 100
	}

	return s
}

// Map returns the summary as named values, in the shape the run store
// persists.
func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		"final_euler":         s.FinalEuler,
		"final_analytical":    s.FinalExact,
		"final_abs_error":     s.FinalAbsError,
		"final_rel_error_pct": s.FinalRelErrorPct,
		"max_error":           s.MaxError,
		"mean_error":          s.MeanError,
		"rms_error":           s.RMSError,
	}
}
