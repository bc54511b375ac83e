package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"navmend.dev/pkg/navmend/internal/adapter"
	"navmend.dev/pkg/navmend/internal/controller"
	m "navmend.dev/pkg/navmend/internal/model"
)

// DiscoverArgs selects the HTML files a command operates on.
type DiscoverArgs struct {
	// Paths are the root directories to scan. Empty means the current directory.
	Paths []m.Path
	// Exclude lists directory names whose contents are never touched.
	Exclude []string
	// SkipDirs are directories skipped by location rather than by name.
	SkipDirs []m.Path
}

// NavArgs selects the navigation template and link table.
type NavArgs struct {
	// TemplateFile replaces DefaultTemplate when set.
	TemplateFile m.Path
	// Links replaces DefaultLinks when non-empty.
	Links LinkTable
}

// UpdateArgs contains the arguments for rewriting navigation blocks.
type UpdateArgs struct {
	DiscoverArgs
	Nav       NavArgs
	Parallel  int
	DryRun    bool
	BackupDir m.Path
}

// ListArgs contains the arguments for listing files without rewriting them.
type ListArgs struct {
	DiscoverArgs
	Format controller.OutputFormat
}

// CheckArgs contains the arguments for auditing a template.
type CheckArgs struct {
	Nav NavArgs
}

// Workflow drives a batch over a site tree.
type Workflow interface {
	Update(ctx context.Context, args UpdateArgs) (m.Summary, error)
	List(ctx context.Context, args ListArgs) error
	Check(ctx context.Context, args CheckArgs) (m.Audit, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
	}
}

// Update rewrites the navigation block of every discovered file. Per-file
// failures are reported and counted; only discovery problems, an unsafe
// template or cancellation return an error.
func (w *workflow) Update(ctx context.Context, args UpdateArgs) (m.Summary, error) {
	summary := m.Summary{DryRun: args.DryRun}

	nav, err := w.resolveNav(ctx, args.Nav)
	if err != nil {
		return summary, err
	}

	if err := ValidateLinks(nav.links); err != nil {
		slog.Error("Refusing to adjust template", "error", err)
		return summary, err
	}

	if args.BackupDir != "" {
		args.SkipDirs = append(slices.Clone(args.SkipDirs), args.BackupDir)
	}

	if err := w.Start(ctx, controller.WithUpdateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return summary, err
	}
	defer w.Close(ctx)

	files, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		slog.Error("Failed to discover files", "error", err)
		return summary, fmt.Errorf("discover files: %w", err)
	}

	w.DisplayDiscovered(ctx, len(files))
	slog.Info("Processing files", "count", len(files), "parallel", args.Parallel, "dryRun", args.DryRun)

	err = w.processAll(ctx, files, nav, args, func(report m.Report) {
		summary.Add(report)
		w.DisplayReport(ctx, report)
	})
	if err != nil {
		return summary, err
	}

	w.DisplaySummary(ctx, summary)
	slog.Info("Batch finished", "updated", summary.Updated, "skipped", summary.Skipped, "failed", summary.Failed)

	w.Wait(ctx)

	return summary, nil
}

// List classifies discovered files without writing anything.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	files, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		slog.Error("Failed to discover files", "error", err)
		return fmt.Errorf("discover files: %w", err)
	}

	entries := make([]m.PlanEntry, 0, len(files))
	for _, file := range files {
		entries = append(entries, m.PlanEntry{
			Path:   file.ShortPath,
			Depth:  file.Depth,
			Status: w.classify(ctx, file),
		})
	}

	if err := w.DisplayPlan(ctx, entries, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Check audits the configured template against its link table.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.Audit, error) {
	nav, err := w.resolveNav(ctx, args.Nav)
	if err != nil {
		return m.Audit{}, err
	}

	audit, err := AuditTemplate(nav.template, nav.links)
	if err != nil {
		slog.Error("Failed to audit template", "error", err)
		return m.Audit{}, err
	}

	if err := w.DisplayAudit(ctx, audit); err != nil {
		return audit, fmt.Errorf("display: %w", err)
	}

	if !audit.Safe() {
		return audit, ValidateLinks(nav.links)
	}

	return audit, nil
}

func (w *workflow) classify(ctx context.Context, file m.File) string {
	content, err := w.readText(ctx, file.FullPath)
	if err != nil {
		slog.Debug("Unreadable file", "path", file.FullPath, "error", err)
		return m.PlanUnreadable
	}

	if !HasNav(content) {
		return m.PlanNoNav
	}

	if _, err := ReplaceNav(content, ""); errors.Is(err, ErrMalformedDocument) {
		return m.PlanMalformed
	}

	return m.PlanReady
}

// navigation is a resolved template and link table.
type navigation struct {
	template string
	links    LinkTable
}

func (w *workflow) resolveNav(ctx context.Context, args NavArgs) (navigation, error) {
	nav := navigation{template: DefaultTemplate, links: DefaultLinks}

	if len(args.Links) > 0 {
		nav.links = args.Links
	}

	if args.TemplateFile == "" {
		return nav, nil
	}

	content, err := w.readText(ctx, args.TemplateFile)
	if err != nil {
		slog.Error("Failed to read template", "path", args.TemplateFile, "error", err)
		return nav, fmt.Errorf("read template %s: %w", args.TemplateFile, err)
	}

	// The replacement already adds the newline before the closing tag.
	nav.template = strings.TrimSuffix(content, "\n")

	return nav, nil
}
