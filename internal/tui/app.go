// Package tui implements the interactive form-and-plot front end.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Lilvurtuzi/eulerlab/internal/config"
	"github.com/Lilvurtuzi/eulerlab/internal/metrics"
	"github.com/Lilvurtuzi/eulerlab/internal/ode"
	"github.com/Lilvurtuzi/eulerlab/internal/steps"
	"github.com/Lilvurtuzi/eulerlab/internal/viz"
)

const (
	stateForm = iota
	statePresets
	stateResult
)

var paramHelp = map[string]string{
	"k":       "rate constant (growth > 0, decay < 0)",
	"x0":      "initial x",
	"y0":      "initial y",
	"x_final": "final x, must exceed x0",
	"h":       "step size, recommended 0.001 – 1.0",
}

type model struct {
	state      int
	cursor     int
	paramNames []string
	params     map[string]float64
	nudge      map[string]float64

	editing bool
	editBuf string
	errMsg  string

	presets      []string
	presetCursor int

	traj    *ode.Trajectory
	summary metrics.Summary
	records []steps.Record
	showAll bool

	width, height int
}

func NewApp() *model {
	cfg := config.Default()
	return &model{
		state:      stateForm,
		paramNames: []string{"k", "x0", "y0", "x_final", "h"},
		params: map[string]float64{
			"k": cfg.K, "x0": cfg.X0, "y0": cfg.Y0, "x_final": cfg.XFinal, "h": cfg.H,
		},
		nudge: map[string]float64{
			"k": 0.1, "x0": 0.1, "y0": 0.1, "x_final": 0.1, "h": 0.01,
		},
		presets: config.ListPresets(),
		width:   80, height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateForm:
		return m.formKey(msg)
	case statePresets:
		return m.presetKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.params[m.paramNames[m.cursor]] = val
			}
			m.editing, m.editBuf = false, ""
		case "esc", "escape":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.paramNames)-1 {
			m.cursor++
		}
	case "left", "h":
		name := m.paramNames[m.cursor]
		m.params[name] -= m.nudge[name]
	case "right", "l":
		name := m.paramNames[m.cursor]
		m.params[name] += m.nudge[name]
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.params[m.paramNames[m.cursor]])
	case "p":
		m.state, m.presetCursor = statePresets, 0
	case "s", " ":
		return m.solve()
	}
	return m, nil
}

func (m model) presetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "escape":
		m.state = stateForm
	case "up", "k":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case "down", "j":
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
	case "enter", " ":
		cfg := config.GetPreset(m.presets[m.presetCursor])
		if cfg != nil {
			m.params["k"] = cfg.K
			m.params["x0"] = cfg.X0
			m.params["y0"] = cfg.Y0
			m.params["x_final"] = cfg.XFinal
			m.params["h"] = cfg.H
		}
		m.state = stateForm
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.showAll = !m.showAll
	case "esc", "escape", "b":
		m.state = stateForm
	}
	return m, nil
}

// solve validates at the boundary; on failure the computation is skipped and
// the form shows which constraint failed.
func (m model) solve() (tea.Model, tea.Cmd) {
	p := ode.Params{
		K:      m.params["k"],
		X0:     m.params["x0"],
		Y0:     m.params["y0"],
		XFinal: m.params["x_final"],
		H:      m.params["h"],
	}

	traj, err := ode.Solve(p)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.traj = traj
	m.summary = metrics.Summarize(traj)
	m.records = steps.Build(traj, p.K, p.H)
	m.showAll = false
	m.state = stateResult
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateForm:
		return m.viewForm()
	case statePresets:
		return m.viewPresets()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewForm() string {
	var b strings.Builder
	b.WriteString("\n  " + viz.Title.Render("EULERLAB") + "\n")
	b.WriteString("  " + viz.Subtle.Render("dy/dx = k·y — forward Euler vs analytical") + "\n")
	b.WriteString("  " + viz.Subtle.Render(strings.Repeat("─", 44)) + "\n\n")

	for i, name := range m.paramNames {
		valStr := fmt.Sprintf("%10.4f", m.params[name])
		if m.editing && i == m.cursor {
			valStr = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
				viz.Title.Render("▸"),
				viz.MetricValue.Render(fmt.Sprintf("%-8s", name)),
				valStr,
				viz.Subtle.Render(paramHelp[name])))
		} else {
			b.WriteString(viz.Subtle.Render(fmt.Sprintf("    %-8s %s", name, valStr)) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n  " + viz.ErrorText.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n  " + viz.KeyHint.Render("j/k move · h/l adjust · enter type · p presets · s solve · q quit") + "\n")
	return b.String()
}

func (m model) viewPresets() string {
	var b strings.Builder
	b.WriteString("\n  " + viz.Title.Render("PRESETS") + "\n")
	b.WriteString("  " + viz.Subtle.Render(strings.Repeat("─", 44)) + "\n\n")

	for i, name := range m.presets {
		cfg := config.GetPreset(name)
		desc := fmt.Sprintf("k=%g  y0=%g  [%g, %g]  h=%g", cfg.K, cfg.Y0, cfg.X0, cfg.XFinal, cfg.H)
		if i == m.presetCursor {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				viz.Title.Render("▸"),
				viz.MetricValue.Render(fmt.Sprintf("%-12s", name)),
				viz.Subtle.Render(desc)))
		} else {
			b.WriteString(viz.Subtle.Render(fmt.Sprintf("    %-12s  %s", name, desc)) + "\n")
		}
	}

	b.WriteString("\n  " + viz.KeyHint.Render("j/k move · enter apply · esc back") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n  " + viz.Title.Render("RESULTS") + "\n\n")

	metric := func(label string, val float64, unit string) string {
		return fmt.Sprintf("  %s %s%s",
			viz.MetricLabel.Render(fmt.Sprintf("%-22s", label)),
			viz.MetricValue.Render(fmt.Sprintf("%.6f", val)),
			unit)
	}
	b.WriteString(metric("final euler", m.summary.FinalEuler, "") + "\n")
	b.WriteString(metric("final analytical", m.summary.FinalExact, "") + "\n")
	b.WriteString(metric("final abs error", m.summary.FinalAbsError, "") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s%%\n",
		viz.MetricLabel.Render(fmt.Sprintf("%-22s", "final rel error")),
		viz.MetricValue.Render(fmt.Sprintf("%.4f", m.summary.FinalRelErrorPct))))
	b.WriteString(metric("max error", m.summary.MaxError, "") + "\n")
	b.WriteString(metric("mean error", m.summary.MeanError, "") + "\n")
	b.WriteString(metric("rms error", m.summary.RMSError, "") + "\n")

	chartWidth := m.width - 12
	if chartWidth > 72 {
		chartWidth = 72
	}
	if chartWidth < 20 {
		chartWidth = 20
	}

	b.WriteString("\n  " + viz.Separator(chartWidth) + "\n")
	b.WriteString("\n" + viz.ComparisonChart(m.traj, chartWidth, 8) + "\n")
	b.WriteString("\n" + viz.ErrorChart(m.traj, chartWidth, 6) + "\n")
	b.WriteString("\n  " + viz.MetricLabel.Render("error trend ") + viz.Sparkline(m.traj.Errors(), chartWidth) + "\n\n")

	var table strings.Builder
	if m.showAll {
		steps.RenderAll(&table, m.records)
	} else {
		steps.Render(&table, m.records)
	}
	for _, line := range strings.Split(strings.TrimRight(table.String(), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + viz.KeyHint.Render("a toggle all rows · esc back · q quit") + "\n")
	return b.String()
}

// Run launches the interactive application.
func Run() error {
	_, err := tea.NewProgram(NewApp(), tea.WithAltScreen()).Run()
	return err
}
