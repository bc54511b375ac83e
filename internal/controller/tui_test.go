package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "navmend.dev/pkg/navmend/internal/model"
)

func report(path string, status m.FileStatus) m.Report {
	return m.Report{File: m.File{ShortPath: m.Path(path)}, Status: status}
}

func TestProgressModel_Scanning(t *testing.T) {
	model := newProgressModel()

	view := model.View()

	assert.Contains(t, view, "navmend - updating navigation")
	assert.Contains(t, view, "Scanning for HTML files...")
}

func TestProgressModel_TracksReports(t *testing.T) {
	var model tea.Model = newProgressModel()

	model, _ = model.Update(discoveredMsg{count: 4})
	model, _ = model.Update(reportMsg{report: report("index.html", m.Updated)})
	model, _ = model.Update(reportMsg{report: report("blog.html", m.NoNav)})

	pm := model.(progressModel)
	assert.Equal(t, 4, pm.total)
	assert.Equal(t, 2, pm.done)
	assert.InDelta(t, 0.5, pm.percent(), 0.0001)

	view := pm.View()
	assert.Contains(t, view, "2/4 files")
	assert.Contains(t, view, "Updated: index.html")
	assert.Contains(t, view, "No nav found: blog.html")
}

func TestProgressModel_RecentLinesAreBounded(t *testing.T) {
	var model tea.Model = newProgressModel()

	model, _ = model.Update(discoveredMsg{count: maxRecentLines + 5})
	for i := 0; i < maxRecentLines+5; i++ {
		model, _ = model.Update(reportMsg{report: report("page.html", m.Updated)})
	}

	pm := model.(progressModel)
	assert.Len(t, pm.recent, maxRecentLines)
	assert.Equal(t, maxRecentLines+5, pm.done)
}

func TestProgressModel_SummaryShowsProblems(t *testing.T) {
	var model tea.Model = newProgressModel()

	model, _ = model.Update(discoveredMsg{count: 3})
	model, _ = model.Update(reportMsg{report: report("a.html", m.Updated)})
	model, _ = model.Update(reportMsg{report: report("b.html", m.Malformed)})

	failed := report("c.html", m.Failed)
	failed.Err = errors.New("permission denied")
	model, _ = model.Update(reportMsg{report: failed})
	model, _ = model.Update(summaryMsg{summary: m.Summary{Total: 3, Updated: 1, Skipped: 2, Failed: 2}})

	pm := model.(progressModel)
	require.NotNil(t, pm.summary)
	assert.Len(t, pm.problems, 2)

	view := pm.View()
	assert.Contains(t, view, "Could not extract nav: b.html")
	assert.Contains(t, view, "Error updating c.html: permission denied")
	assert.Contains(t, view, "Updated: 1 files")
	assert.Contains(t, view, "Press q to quit.")
	assert.NotContains(t, view, "Updated: a.html")
}

func TestProgressModel_EmptyBatchCompletes(t *testing.T) {
	var model tea.Model = newProgressModel()

	model, _ = model.Update(discoveredMsg{count: 0})
	model, _ = model.Update(summaryMsg{summary: m.Summary{}})

	pm := model.(progressModel)
	assert.InDelta(t, 1.0, pm.percent(), 0.0001)
	assert.Contains(t, pm.View(), "0/0 files")
}

func TestProgressModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, key := range keys {
		model, cmd := newProgressModel().Update(key)

		require.NotNil(t, cmd, "key %s", key.String())
		assert.True(t, model.(progressModel).quitting)
		assert.Empty(t, model.View())
	}

	model, cmd := newProgressModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.False(t, model.(progressModel).quitting)
}

func TestProgressModel_WindowResize(t *testing.T) {
	model, _ := newProgressModel().Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 26, model.(progressModel).bar.Width)

	model, _ = newProgressModel().Update(tea.WindowSizeMsg{Width: 5, Height: 10})
	assert.Equal(t, minBarWidth, model.(progressModel).bar.Width)

	model, _ = newProgressModel().Update(tea.WindowSizeMsg{Width: 500, Height: 10})
	assert.Equal(t, maxBarWidth, model.(progressModel).bar.Width)
}

func TestTUI_ListModePrintsDirectly(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithListMode()))
	assert.Nil(t, ui.program)

	require.NoError(t, ui.DisplayPlan(ctx, []m.PlanEntry{{Path: "index.html", Status: m.PlanReady}}, FormatTable))
	ui.DisplaySummary(ctx, m.Summary{Total: 1, Updated: 1})
	ui.Wait(ctx)
	ui.Close(ctx)

	out := buf.String()
	assert.Contains(t, out, "navmend - files")
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "Done!")
}

func TestTUI_DisplayPlanYAMLHasNoTitle(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplayPlan(context.Background(), []m.PlanEntry{{Path: "index.html", Status: m.PlanReady}}, FormatYAML))

	assert.True(t, strings.HasPrefix(buf.String(), "files:"))
}

func TestTUI_DisplayAudit(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplayAudit(context.Background(), m.Audit{Links: []string{"index.html"}}))

	assert.Contains(t, buf.String(), "navmend - template audit")
	assert.Contains(t, buf.String(), "Template is safe to adjust.")
}
