package steps

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TruncateAt is how many rows Render shows before cutting over to a footer;
// full output is available via RenderAll.
const TruncateAt = 20

// RenderAll writes every record as an aligned table.
func RenderAll(w io.Writer, records []Record) error {
	return render(w, records, len(records))
}

// Render writes at most TruncateAt rows, followed by a footer naming how
// many rows were omitted.
func Render(w io.Writer, records []Record) error {
	return render(w, records, TruncateAt)
}

func render(w io.Writer, records []Record, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tX\tY (EULER)\tY (ANALYTICAL)\tDY/DX = KY\tERROR\tNEXT Y")

	shown := len(records)
	if shown > limit {
		shown = limit
	}

	for _, rec := range records[:shown] {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Step, rec.X, rec.Euler, rec.Exact, rec.Derivative, rec.Error, rec.NextY)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if omitted := len(records) - shown; omitted > 0 {
		fmt.Fprintf(w, "… %d more rows\n", omitted)
	}

	return nil
}
