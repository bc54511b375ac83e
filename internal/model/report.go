package model

import "fmt"

// FileStatus is the outcome of processing a single file.
type FileStatus int

const (
	// Updated indicates the navigation block was rewritten.
	Updated FileStatus = iota
	// Unchanged indicates the navigation block already matched the template.
	Unchanged
	// NoNav indicates the document has no navigation block to update.
	NoNav
	// Malformed indicates a start marker without a closing tag.
	Malformed
	// Failed indicates the file could not be read or written.
	Failed
)

func (s FileStatus) String() string {
	switch s {
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	case NoNav:
		return "no nav"
	case Malformed:
		return "malformed"
	case Failed:
		return "error"
	default:
		return fmt.Sprintf("FileStatus(%d)", int(s))
	}
}

// Skipped reports whether the status counts towards the skipped tally.
func (s FileStatus) Skipped() bool {
	return s != Updated
}

// Report represents the result of processing one file.
type Report struct {
	File   File
	Status FileStatus
	Err    error  // cause for Malformed and Failed
	Diff   string // unified diff, populated on dry runs
	DryRun bool
}

// Summary is the tally printed at the end of a batch.
type Summary struct {
	Total   int
	Updated int
	Skipped int
	Failed  int
	DryRun  bool
}

// Add records a report in the tally.
func (s *Summary) Add(r Report) {
	s.Total++

	if r.Status.Skipped() {
		s.Skipped++
	} else {
		s.Updated++
	}

	if r.Status == Failed || r.Status == Malformed {
		s.Failed++
	}
}

// PlanEntry describes what an update would do to a file without touching it.
type PlanEntry struct {
	Path   Path   `yaml:"path"`
	Depth  int    `yaml:"depth"`
	Status string `yaml:"status"`
}

// Plan statuses reported by the list command.
const (
	PlanReady      = "ready"
	PlanNoNav      = "no nav"
	PlanMalformed  = "malformed"
	PlanUnreadable = "unreadable"
)
