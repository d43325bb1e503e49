package steps

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

func TestBuildCoarseGrowth(t *testing.T) {
	traj, err := ode.Solve(ode.Params{K: 0.1, X0: 0, Y0: 1, XFinal: 1.0, H: 0.5})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	got := Build(traj, 0.1, 0.5)

	want := []Record{
		{
			Step: 0, X: "0.0000",
			Euler: "1.000000", Exact: "1.000000",
			Derivative: "0.100000", Error: "0.000000",
			NextY: InitialValue,
		},
		{
			Step: 1, X: "0.5000",
			Euler: "1.050000", Exact: "1.051271",
			Derivative: "0.100000", Error: "0.001271",
			NextY: "1.000000 + 0.5 × 0.100000",
		},
		{
			Step: 2, X: "1.0000",
			Euler: "1.102500", Exact: "1.105171",
			Derivative: "0.105000", Error: "0.002671",
			NextY: "1.050000 + 0.5 × 0.105000",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDerivativeUsesPreviousValue(t *testing.T) {
	traj, err := ode.Solve(ode.Params{K: -1, Y0: 1, XFinal: 1.0, H: 0.1})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	records := Build(traj, -1, 0.1)

	if records[0].NextY != InitialValue {
		t.Errorf("row 0 NextY = %q, want sentinel", records[0].NextY)
	}

	// Row i narrates the update from row i-1, so its derivative is
	// k * yEuler[i-1], not k * yEuler[i].
	if records[1].Derivative != "-1.000000" {
		t.Errorf("row 1 derivative = %s, want -1.000000", records[1].Derivative)
	}
	if records[2].Derivative != "-0.900000" {
		t.Errorf("row 2 derivative = %s, want -0.900000", records[2].Derivative)
	}
}

func TestRenderTruncation(t *testing.T) {
	traj, err := ode.Solve(ode.Params{K: 0.1, Y0: 1, XFinal: 5, H: 0.1})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	records := Build(traj, 0.1, 0.1)
	if len(records) <= TruncateAt {
		t.Fatalf("expected more than %d records, got %d", TruncateAt, len(records))
	}

	var short strings.Builder
	if err := Render(&short, records); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(short.String(), "more rows") {
		t.Error("expected truncation footer")
	}
	// header + TruncateAt rows + footer
	if lines := strings.Count(strings.TrimRight(short.String(), "\n"), "\n") + 1; lines != TruncateAt+2 {
		t.Errorf("expected %d lines, got %d", TruncateAt+2, lines)
	}

	var full strings.Builder
	if err := RenderAll(&full, records); err != nil {
		t.Fatalf("render all failed: %v", err)
	}
	if strings.Contains(full.String(), "more rows") {
		t.Error("RenderAll should not truncate")
	}
}
