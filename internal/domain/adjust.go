package domain

import "strings"

const parentDir = "../"

// Prefix returns the parent-directory prefix for a file depth levels below the root.
func Prefix(depth int) string {
	if depth <= 0 {
		return ""
	}

	return strings.Repeat(parentDir, depth)
}

// AdjustPaths returns a copy of template whose href attributes pointing at
// entries of links are rewritten relative to a file depth directories deep.
//
// Only the full quoted attribute is matched, so "index.html" never matches
// inside "region/index.html". All entries are replaced in a single scan; an
// occurrence produced by one entry is never re-matched by another within the
// same call. Calling AdjustPaths again on its own output prefixes again.
func AdjustPaths(template string, depth int, links LinkTable) string {
	if depth <= 0 || len(links) == 0 {
		return template
	}

	prefix := Prefix(depth)

	pairs := make([]string, 0, 2*len(links))
	for _, link := range links {
		pairs = append(pairs, quoteHref(link), quoteHref(prefix+link))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
