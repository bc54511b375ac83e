// Package controller provides output adapters for displaying navigation rewrite results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "navmend.dev/pkg/navmend/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeUpdate StartMode = iota
	ModeList
)

// OutputFormat selects how file plans are rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithUpdateMode sets the UI to rewrite mode.
func WithUpdateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeUpdate
	}
}

// WithListMode sets the UI to read-only listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// UI defines the interface for reporting batch progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayDiscovered(ctx context.Context, count int)
	DisplayReport(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayPlan(ctx context.Context, entries []m.PlanEntry, format OutputFormat) error
	DisplayAudit(ctx context.Context, audit m.Audit) error
}

// NewUI returns the interactive TUI when interactive is true, SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeUpdate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}
