package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	m "navmend.dev/pkg/navmend/internal/model"
)

// ErrIOFailure marks a file that could not be read, decoded or written.
var ErrIOFailure = errors.New("io failure")

const diffContextLines = 3

// processAll rewrites files with up to args.Parallel workers and hands every
// report to emit from the calling goroutine, in completion order.
func (w *workflow) processAll(ctx context.Context, files []m.File, nav navigation, args UpdateArgs, emit func(m.Report)) error {
	threads := args.Parallel
	if threads < 1 {
		threads = 1
	}

	reports := make(chan m.Report, threads)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	var groupErr error

	go func() {
		defer close(reports)

		for _, file := range files {
			if groupCtx.Err() != nil {
				break
			}

			currentFile := file

			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				report := w.processFile(groupCtx, currentFile, nav, args)

				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case reports <- report:
				}

				return nil
			})
		}

		groupErr = group.Wait()
	}()

	for report := range reports {
		emit(report)
	}

	if groupErr != nil {
		slog.Error("Batch interrupted", "error", groupErr)
		return fmt.Errorf("process files: %w", groupErr)
	}

	return ctx.Err()
}

// processFile runs read, adjust, replace and write for one file. It never
// fails; problems are carried in the report.
func (w *workflow) processFile(ctx context.Context, file m.File, nav navigation, args UpdateArgs) m.Report {
	report := m.Report{File: file, DryRun: args.DryRun}

	content, err := w.readText(ctx, file.FullPath)
	if err != nil {
		slog.Error("Failed to read file", "path", file.FullPath, "error", err)
		report.Status = m.Failed
		report.Err = err

		return report
	}

	if !HasNav(content) {
		slog.Debug("No nav found", "path", file.FullPath)
		report.Status = m.NoNav

		return report
	}

	adjusted := AdjustPaths(nav.template, file.Depth, nav.links)

	updated, err := ReplaceNav(content, adjusted)
	if err != nil {
		slog.Warn("Could not extract nav", "path", file.FullPath, "error", err)
		report.Status = m.Malformed
		report.Err = err

		return report
	}

	if updated == content {
		report.Status = m.Unchanged
		return report
	}

	if args.DryRun {
		report.Status = m.Updated
		report.Diff = unifiedDiff(file.ShortPath, content, updated)

		return report
	}

	if err := w.writeBack(ctx, file, updated, args.BackupDir); err != nil {
		slog.Error("Failed to write file", "path", file.FullPath, "error", err)
		report.Status = m.Failed
		report.Err = err

		return report
	}

	slog.Info("Updated file", "path", file.FullPath, "depth", file.Depth)
	report.Status = m.Updated

	return report
}

func (w *workflow) writeBack(ctx context.Context, file m.File, content string, backupDir m.Path) error {
	info, err := w.FileInfo(ctx, file.FullPath)
	if err != nil {
		return fmt.Errorf("%w: stat: %w", ErrIOFailure, err)
	}

	if backupDir != "" {
		dst := w.JoinPath(ctx, string(backupDir), string(file.ShortPath))
		if err := w.CopyFile(ctx, file.FullPath, dst); err != nil {
			return fmt.Errorf("%w: backup to %s: %w", ErrIOFailure, dst, err)
		}
	}

	if err := w.WriteFile(ctx, file.FullPath, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: write: %w", ErrIOFailure, err)
	}

	return nil
}

// readText loads a file and checks it is valid UTF-8, the only encoding
// handled.
func (w *workflow) readText(ctx context.Context, path m.Path) (string, error) {
	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: read: %w", ErrIOFailure, err)
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrIOFailure, path)
	}

	return string(content), nil
}

func unifiedDiff(name m.Path, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + string(name),
		ToFile:   "b/" + string(name),
		Context:  diffContextLines,
	})
	if err != nil {
		slog.Debug("Failed to render diff", "path", name, "error", err)
		return ""
	}

	return diff
}
