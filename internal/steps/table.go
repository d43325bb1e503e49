// Package steps turns a solved trajectory into the row-per-step calculation
// table shown by the CLI and TUI.
package steps

import (
	"fmt"
	"strconv"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

// InitialValue marks the first row, which has no preceding update.
const InitialValue = "Initial value"

// Record is one row of the step table. Numeric fields are pre-formatted for
// display: x with 4 decimals, everything else with 6. Derivative and NextY
// describe the update that produced this row, so for row i > 0 they are
// evaluated at the previous Euler value.
type Record struct {
	Step       int
	X          string
	Euler      string
	Exact      string
	Derivative string
	Error      string
	NextY      string
}

// Build derives one record per trajectory index, in index order.
func Build(traj *ode.Trajectory, k, h float64) []Record {
	records := make([]Record, 0, traj.Len())

	for i := 0; i < traj.Len(); i++ {
		rec := Record{
			Step:  i,
			X:     strconv.FormatFloat(traj.X[i], 'f', 4, 64),
			Euler: strconv.FormatFloat(traj.Euler[i], 'f', 6, 64),
			Exact: strconv.FormatFloat(traj.Exact[i], 'f', 6, 64),
			Error: strconv.FormatFloat(traj.ErrorAt(i), 'f', 6, 64),
		}

		if i == 0 {
			rec.Derivative = strconv.FormatFloat(k*traj.Euler[0], 'f', 6, 64)
			rec.NextY = InitialValue
		} else {
			deriv := k * traj.Euler[i-1]
			rec.Derivative = strconv.FormatFloat(deriv, 'f', 6, 64)
			rec.NextY = fmt.Sprintf("%s + %s × %s",
				strconv.FormatFloat(traj.Euler[i-1], 'f', 6, 64),
				strconv.FormatFloat(h, 'g', -1, 64),
				strconv.FormatFloat(deriv, 'f', 6, 64))
		}

		records = append(records, rec)
	}

	return records
}
