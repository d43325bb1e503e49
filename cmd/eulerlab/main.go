package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Lilvurtuzi/eulerlab/internal/config"
	"github.com/Lilvurtuzi/eulerlab/internal/export"
	"github.com/Lilvurtuzi/eulerlab/internal/metrics"
	"github.com/Lilvurtuzi/eulerlab/internal/ode"
	"github.com/Lilvurtuzi/eulerlab/internal/steps"
	"github.com/Lilvurtuzi/eulerlab/internal/storage"
	"github.com/Lilvurtuzi/eulerlab/internal/tui"
	"github.com/Lilvurtuzi/eulerlab/internal/viz"
)

var (
	dataDir    string
	k          float64
	x0         float64
	y0         float64
	xFinal     float64
	h          float64
	configFile string
	preset     string
	save       bool
	showAll    bool
	outFile    string
	errOutFile string
	stepSizes  string
)

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&k, "k", config.DefaultK, "rate constant")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial x")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial y")
	cmd.Flags().Float64Var(&xFinal, "xf", config.DefaultXFinal, "final x")
	cmd.Flags().Float64Var(&h, "h", config.DefaultH, "step size")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "eulerlab",
		Short: "explore Euler's method for dy/dx = k·y",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eulerlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve and print metrics, table and charts",
		RunE:  runSolve,
	}
	addProblemFlags(solveCmd)
	solveCmd.Flags().BoolVar(&save, "save", false, "persist the run")
	solveCmd.Flags().BoolVar(&showAll, "all", false, "show every table row")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the step-by-step calculation table",
		RunE:  runTable,
	}
	addProblemFlags(tableCmd)
	tableCmd.Flags().BoolVar(&showAll, "all", false, "show every table row")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write a saved run's chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "chart.svg", "output file")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "write a saved run's chart as PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&outFile, "out", "chart.png", "output file")
	exportPNGCmd.Flags().StringVar(&errOutFile, "error-out", "", "also write the error chart to this file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tK\tX0\tY0\tX_FINAL\tH")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\n",
					name, cfg.K, cfg.X0, cfg.Y0, cfg.XFinal, cfg.H)
			}
			return w.Flush()
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare step sizes on the same problem",
		RunE:  compareSteps,
	}
	addProblemFlags(compareCmd)
	compareCmd.Flags().StringVar(&stepSizes, "steps", "0.5,0.1,0.01", "comma-separated step sizes")

	rootCmd.AddCommand(solveCmd, tableCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, exportPNGCmd,
		presetsCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveParams layers preset, config file and CLI flags, flags winning.
func resolveParams(cmd *cobra.Command) (ode.Params, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return ode.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return ode.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("k") {
		cfg.K = k
	}
	if cmd.Flags().Changed("x0") {
		cfg.X0 = x0
	}
	if cmd.Flags().Changed("y0") {
		cfg.Y0 = y0
	}
	if cmd.Flags().Changed("xf") {
		cfg.XFinal = xFinal
	}
	if cmd.Flags().Changed("h") {
		cfg.H = h
	}

	if cfg.DataDir != "" {
		if f := cmd.Flags().Lookup("data"); f == nil || !f.Changed {
			dataDir = cfg.DataDir
		}
	}

	p := cfg.Params()
	if err := p.Validate(); err != nil {
		return ode.Params{}, err
	}

	if p.H < config.RecommendedMinH || p.H > config.RecommendedMaxH {
		fmt.Fprintf(os.Stderr, "warning: step size %g outside recommended range [%g, %g]\n",
			p.H, config.RecommendedMinH, config.RecommendedMaxH)
	}

	return p, nil
}

func solveHeader(p ode.Params) string {
	return fmt.Sprintf("dy/dx = %g·y on [%g, %g], y(%g) = %g, h = %g (%d steps)",
		p.K, p.X0, p.XFinal, p.X0, p.Y0, p.H, p.Steps())
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	traj, err := ode.Solve(p)
	if err != nil {
		return err
	}

	summary := metrics.Summarize(traj)

	fmt.Printf("%s\n\n", solveHeader(p))

	fmt.Printf("final euler value:      %.6f\n", summary.FinalEuler)
	fmt.Printf("final analytical value: %.6f\n", summary.FinalExact)
	fmt.Printf("final absolute error:   %.6f\n", summary.FinalAbsError)
	fmt.Printf("final relative error:   %.4f%%\n", summary.FinalRelErrorPct)
	fmt.Printf("max error:              %.6f\n", summary.MaxError)
	fmt.Printf("mean error:             %.6f\n", summary.MeanError)
	fmt.Printf("rms error:              %.6f\n\n", summary.RMSError)

	records := steps.Build(traj, p.K, p.H)
	if showAll {
		steps.RenderAll(os.Stdout, records)
	} else {
		steps.Render(os.Stdout, records)
		if len(records) > steps.TruncateAt {
			fmt.Println("(use --all to show every step)")
		}
	}

	fmt.Println()
	fmt.Println(viz.ComparisonChart(traj, 80, 10))
	fmt.Println()
	fmt.Println(viz.ErrorChart(traj, 80, 10))

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(p, traj, summary.Map())
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	traj, err := ode.Solve(p)
	if err != nil {
		return err
	}

	records := steps.Build(traj, p.K, p.H)
	if showAll {
		return steps.RenderAll(os.Stdout, records)
	}
	if err := steps.Render(os.Stdout, records); err != nil {
		return err
	}
	if len(records) > steps.TruncateAt {
		fmt.Println("(use --all to show every step)")
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tK\tX0\tY0\tX_FINAL\tH\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%g\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.K, run.X0, run.Y0, run.XFinal, run.H, run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("dy/dx = %g·y, h = %g, %d points\n\n", meta.K, meta.H, traj.Len())

	fmt.Println(viz.ComparisonChart(traj, 80, 10))
	fmt.Println()
	fmt.Println(viz.ErrorChart(traj, 80, 10))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.WriteJSON(os.Stdout, meta, traj)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	svg := export.ChartSVG(traj, 800, 500)
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	title := fmt.Sprintf("dy/dx = %g·y, h = %g", meta.K, meta.H)
	if err := export.SavePlot(traj, title, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)

	if errOutFile != "" {
		if err := export.SaveErrorPlot(traj, errOutFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", errOutFile)
	}
	return nil
}

func compareSteps(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	var hs []float64
	for _, s := range strings.Split(stepSizes, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid step size %q: %w", s, err)
		}
		hs = append(hs, v)
	}

	fmt.Printf("comparing step sizes for dy/dx = %g·y on [%g, %g]\n\n", p.K, p.X0, p.XFinal)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tSTEPS\tFINAL EULER\tFINAL ERROR\tRMS ERROR")

	for _, hv := range hs {
		pv := p
		pv.H = hv

		traj, err := ode.Solve(pv)
		if err != nil {
			fmt.Fprintf(w, "%g\terror: %v\n", hv, err)
			continue
		}

		s := metrics.Summarize(traj)
		fmt.Fprintf(w, "%g\t%d\t%.6f\t%.6f\t%.6f\n",
			hv, pv.Steps(), s.FinalEuler, s.FinalAbsError, s.RMSError)
	}

	return w.Flush()
}
