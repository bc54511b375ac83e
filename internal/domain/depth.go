package domain

import (
	"path/filepath"
	"strings"

	m "navmend.dev/pkg/navmend/internal/model"
)

// Depth returns the number of directory components in a root-relative path.
//
//	"index.html"                          -> 0
//	"positions/ted2025_MABA_Res.html"     -> 1
//	"articles/regionaltransit/index.html" -> 2
func Depth(rel m.Path) int {
	parts := 0

	for _, part := range strings.Split(filepath.ToSlash(string(rel)), "/") {
		if part == "" || part == "." {
			continue
		}

		parts++
	}

	if parts == 0 {
		return 0
	}

	return parts - 1
}
