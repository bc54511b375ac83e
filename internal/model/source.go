// Package model defines the data structures shared by the navigation rewriter.
package model

// Path represents a file system path.
type Path string

// File represents one HTML document discovered under a root.
type File struct {
	// FullPath is the path used to open the file.
	FullPath Path
	// ShortPath is FullPath relative to the root it was discovered under,
	// always with forward slashes.
	ShortPath Path
	// Depth is the number of directories between the file and its root.
	Depth int
}
