package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

// WriteCSV writes the trajectory with x, both curves and the absolute error
// per row, six fixed decimals throughout.
func WriteCSV(w io.Writer, traj *ode.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "y_euler", "y_analytical", "abs_error"}); err != nil {
		return err
	}

	for i := 0; i < traj.Len(); i++ {
		row := []string{
			strconv.FormatFloat(traj.X[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Euler[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Exact[i], 'f', 6, 64),
			strconv.FormatFloat(traj.ErrorAt(i), 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type exportData struct {
	ID      string             `json:"id,omitempty"`
	K       float64            `json:"k"`
	X0      float64            `json:"x0"`
	Y0      float64            `json:"y0"`
	XFinal  float64            `json:"x_final"`
	H       float64            `json:"h"`
	Points  int                `json:"points"`
	X       []float64          `json:"x"`
	Euler   []float64          `json:"y_euler"`
	Exact   []float64          `json:"y_analytical"`
	Errors  []float64          `json:"abs_errors"`
	Metrics map[string]float64 `json:"metrics"`
}

// WriteJSON writes a full run, metadata included, as indented JSON.
func WriteJSON(w io.Writer, meta *RunMetadata, traj *ode.Trajectory) error {
	data := exportData{
		ID:      meta.ID,
		K:       meta.K,
		X0:      meta.X0,
		Y0:      meta.Y0,
		XFinal:  meta.XFinal,
		H:       meta.H,
		Points:  traj.Len(),
		X:       traj.X,
		Euler:   traj.Euler,
		Exact:   traj.Exact,
		Errors:  traj.Errors(),
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
