package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "navmend.dev/pkg/navmend/internal/model"
)

const (
	maxRecentLines = 8
	minBarWidth    = 10
	maxBarWidth    = 60
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	updatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view in update mode. List mode prints directly.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := applyStartOptions(options)
	if cfg.mode != ModeUpdate {
		return nil
	}

	t.program = tea.NewProgram(newProgressModel(), tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	program := t.program
	done := t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("progress view stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the progress view if it is still running.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()

	select {
	case <-t.done:
	case <-ctx.Done():
	}

	t.program = nil
}

// Wait blocks until the user closes the progress view.
func (t *TUI) Wait(ctx context.Context) {
	if t.program == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	}
}

// DisplayDiscovered sets the progress total.
func (t *TUI) DisplayDiscovered(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(discoveredMsg{count: count})
}

// DisplayReport advances the progress bar.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(reportMsg{report: report})
}

// DisplaySummary shows the final tally.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		_, _ = fmt.Fprint(t.output, summaryText(summary))
		return
	}

	t.send(summaryMsg{summary: summary})
}

// DisplayPlan prints the file plan; lists are static so no program is run.
func (t *TUI) DisplayPlan(ctx context.Context, entries []m.PlanEntry, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderPlan(entries, format)
	if err != nil {
		return err
	}

	if format == FormatYAML {
		_, err = fmt.Fprint(t.output, out)
		return err
	}

	_, err = fmt.Fprintf(t.output, "%s\n\n%s", titleStyle.Render("navmend - files"), out)

	return err
}

// DisplayAudit prints the template audit with a styled verdict.
func (t *TUI) DisplayAudit(ctx context.Context, audit m.Audit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	verdict := updatedStyle.Render("safe")
	if !audit.Safe() {
		verdict = errorStyle.Render("unsafe")
	}

	_, err := fmt.Fprintf(t.output, "%s (%s)\n\n%s", titleStyle.Render("navmend - template audit"), verdict, renderAudit(audit))

	return err
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

type discoveredMsg struct{ count int }

type reportMsg struct{ report m.Report }

type summaryMsg struct{ summary m.Summary }

// progressModel is the Bubble Tea model behind the update view.
type progressModel struct {
	total    int
	done     int
	recent   []string
	problems []string
	summary  *m.Summary
	bar      progress.Model
	quitting bool
}

func newProgressModel() progressModel {
	return progressModel{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return nil
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.bar.Width = clampWidth(msg.Width - 4)
		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)

	case discoveredMsg:
		pm.total = msg.count
		return pm, nil

	case reportMsg:
		pm.done++
		line := styleReportLine(msg.report)

		pm.recent = append(pm.recent, line)
		if len(pm.recent) > maxRecentLines {
			pm.recent = pm.recent[len(pm.recent)-maxRecentLines:]
		}

		if msg.report.Status == m.Failed || msg.report.Status == m.Malformed {
			pm.problems = append(pm.problems, line)
		}

		return pm, nil

	case summaryMsg:
		summary := msg.summary
		pm.summary = &summary

		return pm, nil
	}

	return pm, nil
}

//nolint:exhaustive // Only quit keys are handled.
func (pm progressModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
	}

	if msg.String() == "q" {
		pm.quitting = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total == 0 {
		if pm.summary != nil {
			return 1
		}

		return 0
	}

	return float64(pm.done) / float64(pm.total)
}

func (pm progressModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("navmend - updating navigation"))
	b.WriteString("\n\n")

	if pm.total == 0 && pm.summary == nil {
		b.WriteString("  Scanning for HTML files...\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s  %d/%d files\n\n", pm.bar.ViewAs(pm.percent()), pm.done, pm.total)

	if pm.summary == nil {
		for _, line := range pm.recent {
			b.WriteString(line)
			b.WriteString("\n")
		}

		return b.String()
	}

	for _, line := range pm.problems {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(summaryText(*pm.summary))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  Press q to quit."))
	b.WriteString("\n")

	return b.String()
}

func styleReportLine(report m.Report) string {
	line := reportLine(report)

	switch report.Status {
	case m.Updated:
		return updatedStyle.Render(line)
	case m.Failed, m.Malformed:
		return errorStyle.Render(line)
	case m.Unchanged, m.NoNav:
		return skippedStyle.Render(line)
	default:
		return line
	}
}

func clampWidth(width int) int {
	if width < minBarWidth {
		return minBarWidth
	}

	if width > maxBarWidth {
		return maxBarWidth
	}

	return width
}
