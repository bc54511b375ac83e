package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "navmend.dev/pkg/navmend/internal/model"
)

var exampleSite = filepath.Join("..", "..", "examples", "site")

func TestExampleSite_DryRun(t *testing.T) {
	wf, ui, fs := newTestWorkflow()

	summary, err := wf.Update(context.Background(), UpdateArgs{
		DiscoverArgs: DiscoverArgs{Paths: []m.Path{m.Path(exampleSite)}, Exclude: DefaultExclude},
		Parallel:     3,
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, m.Summary{Total: 5, Updated: 3, Skipped: 2, Failed: 1, DryRun: true}, summary)
	assert.Empty(t, fs.written())

	statuses := make(map[m.Path]m.FileStatus, len(ui.reports))
	for _, report := range ui.reports {
		statuses[report.File.ShortPath] = report.Status
	}

	assert.Equal(t, map[m.Path]m.FileStatus{
		"index.html":                  m.Updated,
		"positions/housing.html":      m.Updated,
		"Manifesto/chapters/one.html": m.Updated,
		"blog/draft.html":             m.Malformed,
		"contact.html":                m.NoNav,
	}, statuses)

	for _, report := range ui.reports {
		if report.File.ShortPath != "Manifesto/chapters/one.html" {
			continue
		}

		assert.Contains(t, report.Diff, "--- a/Manifesto/chapters/one.html")
		assert.Contains(t, report.Diff, `<li><a href="../../Manifesto/manifesto.html">Manifesto</a></li>`)
	}
}

func TestExampleSite_List(t *testing.T) {
	wf, ui, _ := newTestWorkflow()

	err := wf.List(context.Background(), ListArgs{
		DiscoverArgs: DiscoverArgs{Paths: []m.Path{m.Path(exampleSite)}, Exclude: DefaultExclude},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.PlanEntry{
		{Path: "Manifesto/chapters/one.html", Depth: 2, Status: m.PlanReady},
		{Path: "blog/draft.html", Depth: 1, Status: m.PlanMalformed},
		{Path: "contact.html", Depth: 0, Status: m.PlanNoNav},
		{Path: "index.html", Depth: 0, Status: m.PlanReady},
		{Path: "positions/housing.html", Depth: 1, Status: m.PlanReady},
	}, ui.plan)
}
