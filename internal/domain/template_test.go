package domain

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "navmend.dev/pkg/navmend/internal/model"
)

func TestDefaultTemplate_BlankLinesKeepIndentation(t *testing.T) {
	lines := strings.Split(DefaultTemplate, "\n")

	var blank []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank = append(blank, line)
		}
	}

	assert.Equal(t, []string{"  ", "  ", "  ", "  ", "      ", "      ", "      "}, blank)
	assert.Contains(t, DefaultTemplate, "<input type=\"checkbox\" id=\"menu-toggle\">\n  \n  <!-- Hamburger")
	assert.Contains(t, DefaultTemplate, "</li>\n      \n      <li><a class=\"btn-cta\" href=\"volunteer.html\">")
}

func TestDefaultTemplate_PreviouslyMigratedPageIsUnchanged(t *testing.T) {
	root := t.TempDir()

	// Pages written by the earlier migration carry the indented blank lines.
	migrated := pageHead + StartMarker + "\n" + AdjustPaths(DefaultTemplate, 1, DefaultLinks) + "\n" + EndMarker + pageTail
	require.Contains(t, migrated, "\n  \n")

	writeFile(t, filepath.Join(root, "positions", "housing.html"), migrated)

	wf, ui, fs := newTestWorkflow()

	summary, err := wf.Update(context.Background(), UpdateArgs{
		DiscoverArgs: DiscoverArgs{Paths: []m.Path{m.Path(root)}},
	})
	require.NoError(t, err)

	assert.Equal(t, m.Summary{Total: 1, Skipped: 1}, summary)
	require.Len(t, ui.reports, 1)
	assert.Equal(t, m.Unchanged, ui.reports[0].Status)
	assert.Empty(t, fs.written())
}
