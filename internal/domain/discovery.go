package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "navmend.dev/pkg/navmend/internal/model"
)

const htmlExt = ".html"

// DefaultExclude lists directories that are never scanned.
var DefaultExclude = []string{"backups", "backupsbeforemobile", "__pycache__", ".git"}

// Discover returns the HTML files under args.Paths sorted by path. Directories
// named in args.Exclude, and the directories listed in args.SkipDirs, are
// skipped whole, so nothing below them is opened.
func (w *workflow) Discover(ctx context.Context, args DiscoverArgs) ([]m.File, error) {
	roots := args.Paths
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	skip, err := w.absPaths(ctx, args.SkipDirs)
	if err != nil {
		return nil, fmt.Errorf("skip path error: %w", err)
	}

	seen := make(map[m.Path]bool)

	var files []m.File

	for _, root := range roots {
		info, err := w.FileInfo(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("root path %s is not a directory", root)
		}

		found, err := w.discoverRoot(ctx, root, args.Exclude, skip)
		if err != nil {
			return nil, err
		}

		for _, file := range found {
			if seen[file.FullPath] {
				continue
			}

			seen[file.FullPath] = true
			files = append(files, file)
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].FullPath < files[j].FullPath
	})

	slog.Debug("Discovered files", "count", len(files), "roots", roots)

	return files, nil
}

func (w *workflow) discoverRoot(ctx context.Context, root m.Path, exclude []string, skip map[m.Path]bool) ([]m.File, error) {
	var files []m.File

	err := w.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != string(root) && isExcludedName(info.Name(), exclude) {
				slog.Debug("Skipping excluded directory", "path", path)
				return filepath.SkipDir
			}

			if path != string(root) && len(skip) > 0 {
				abs, err := w.AbsPath(ctx, m.Path(path))
				if err != nil {
					return err
				}

				if skip[abs] {
					slog.Debug("Skipping directory", "path", path)
					return filepath.SkipDir
				}
			}

			return nil
		}

		if !info.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(path), htmlExt) {
			return nil
		}

		rel, err := w.RelPath(ctx, root, m.Path(path))
		if err != nil {
			return err
		}

		if IsExcluded(rel, exclude) {
			return nil
		}

		short := m.Path(filepath.ToSlash(string(rel)))
		files = append(files, m.File{
			FullPath:  m.Path(path),
			ShortPath: short,
			Depth:     Depth(short),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// IsExcluded reports whether any directory component of rel is listed in exclude.
func IsExcluded(rel m.Path, exclude []string) bool {
	parts := strings.Split(filepath.ToSlash(string(rel)), "/")

	for _, part := range parts[:len(parts)-1] {
		if isExcludedName(part, exclude) {
			return true
		}
	}

	return false
}

func isExcludedName(name string, exclude []string) bool {
	for _, ex := range exclude {
		if ex != "" && name == ex {
			return true
		}
	}

	return false
}

func (w *workflow) absPaths(ctx context.Context, paths []m.Path) (map[m.Path]bool, error) {
	abs := make(map[m.Path]bool, len(paths))

	for _, path := range paths {
		resolved, err := w.AbsPath(ctx, path)
		if err != nil {
			return nil, err
		}

		abs[resolved] = true
	}

	return abs, nil
}
