package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	m "navmend.dev/pkg/navmend/internal/model"
)

func renderPlanTable(entries []m.PlanEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Depth", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	withNav := 0

	for _, entry := range entries {
		table.Append([]string{string(entry.Path), fmt.Sprintf("%d", entry.Depth), entry.Status})

		if entry.Status == m.PlanReady {
			withNav++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(entries)),
		"",
		fmt.Sprintf("%d with nav", withNav),
	})

	table.Render()

	return tableBuffer.String()
}

func renderPlanYAML(entries []m.PlanEntry) (string, error) {
	if entries == nil {
		entries = []m.PlanEntry{}
	}

	out, err := yaml.Marshal(struct {
		Files []m.PlanEntry `yaml:"files"`
	}{Files: entries})
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}

	return string(out), nil
}

func renderPlan(entries []m.PlanEntry, format OutputFormat) (string, error) {
	switch format {
	case FormatYAML:
		return renderPlanYAML(entries)
	case FormatTable, "":
		return renderPlanTable(entries), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func renderAudit(audit m.Audit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Template links: %d\n", len(audit.Links))
	writeList(&b, "Links not in the link table (left unprefixed)", audit.Uncovered)
	writeList(&b, "Link table entries missing from the template", audit.Unused)

	if len(audit.Collisions) > 0 {
		b.WriteString("Colliding link table entries:\n")

		for _, c := range audit.Collisions {
			fmt.Fprintf(&b, "  %q occurs inside prefixed %q\n", c.Entry, c.Within)
		}
	}

	if audit.Safe() {
		b.WriteString("Template is safe to adjust.\n")
	} else {
		b.WriteString("Template is NOT safe to adjust.\n")
	}

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "%s:\n", title)

	for _, item := range items {
		fmt.Fprintf(b, "  %s\n", item)
	}
}

// reportLine formats the one-line console outcome for a file.
func reportLine(report m.Report) string {
	path := report.File.ShortPath
	if path == "" {
		path = report.File.FullPath
	}

	switch report.Status {
	case m.Updated:
		if report.DryRun {
			return fmt.Sprintf("  ~ Would update: %s", path)
		}

		return fmt.Sprintf("  ✓ Updated: %s", path)
	case m.Unchanged:
		return fmt.Sprintf("  = Up to date: %s", path)
	case m.NoNav:
		return fmt.Sprintf("  - No nav found: %s", path)
	case m.Malformed:
		return fmt.Sprintf("  - Could not extract nav: %s", path)
	case m.Failed:
		return fmt.Sprintf("  ✗ Error updating %s: %v", path, report.Err)
	default:
		return fmt.Sprintf("  ? %s: %s", report.Status, path)
	}
}

func summaryText(summary m.Summary) string {
	var b strings.Builder

	verb := "Updated"
	if summary.DryRun {
		verb = "Would update"
	}

	fmt.Fprintf(&b, "\n✓ %s: %d files\n", verb, summary.Updated)
	fmt.Fprintf(&b, "- Skipped: %d files\n", summary.Skipped)

	if summary.Failed > 0 {
		fmt.Fprintf(&b, "✗ Errors: %d files\n", summary.Failed)
	}

	b.WriteString("\nDone!\n")

	return b.String()
}
