package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "navmend.dev/pkg/navmend/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayDiscovered prints how many files will be processed.
func (s *SimpleUI) DisplayDiscovered(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d HTML files to process...\n\n", count)
}

// DisplayReport prints the outcome of a single file, followed by its diff on dry runs.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", reportLine(report))

	if report.Diff != "" {
		s.printf("%s\n", report.Diff)
	}
}

// DisplaySummary prints the final tally.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", summaryText(summary))
}

// DisplayPlan prints the read-only classification of discovered files.
func (s *SimpleUI) DisplayPlan(ctx context.Context, entries []m.PlanEntry, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderPlan(entries, format)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

// DisplayAudit prints the template audit.
func (s *SimpleUI) DisplayAudit(ctx context.Context, audit m.Audit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderAudit(audit))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
