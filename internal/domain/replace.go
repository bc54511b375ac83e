package domain

import (
	"errors"
	"strings"
)

const (
	// StartMarker opens the navigation region.
	StartMarker = `<nav id="topnav">`
	// EndMarker closes the navigation region.
	EndMarker = `</nav>`
)

var (
	// ErrNotPresent is returned when a document has no navigation region.
	// Callers treat it as a skip, not a failure.
	ErrNotPresent = errors.New("navigation not present")
	// ErrMalformedDocument is returned when the start marker has no closing tag.
	ErrMalformedDocument = errors.New("navigation start tag without closing tag")
)

// HasNav reports whether document contains the navigation start marker.
func HasNav(document string) bool {
	return strings.Contains(document, StartMarker)
}

// ReplaceNav replaces the contents of the first navigation region in document
// with inner. The region is the shortest span from the first start marker to
// the first end marker after it; any later nav element is left untouched.
//
// The rewritten region is the start marker, a newline, inner, a newline and
// the end marker. Text outside the region is returned byte for byte.
func ReplaceNav(document, inner string) (string, error) {
	start := strings.Index(document, StartMarker)
	if start < 0 {
		return document, ErrNotPresent
	}

	bodyStart := start + len(StartMarker)

	endOffset := strings.Index(document[bodyStart:], EndMarker)
	if endOffset < 0 {
		return document, ErrMalformedDocument
	}

	end := bodyStart + endOffset + len(EndMarker)

	var b strings.Builder

	b.Grow(len(document) - (end - start) + len(StartMarker) + len(inner) + len(EndMarker) + 2)
	b.WriteString(document[:start])
	b.WriteString(StartMarker)
	b.WriteString("\n")
	b.WriteString(inner)
	b.WriteString("\n")
	b.WriteString(EndMarker)
	b.WriteString(document[end:])

	return b.String(), nil
}
