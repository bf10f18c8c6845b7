// Package controller provides the output side of logtag: plain text for
// pipes and logs, and a Bubble Tea view for terminals.
package controller

import (
	m "github.com/mouse-blink/logtag/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeReport StartMode = iota
	ModeBuild
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithReportMode prints results once an operation has finished.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithBuildMode streams tagging and compile progress as it happens.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// UI defines how workflow progress and results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayPlan(files int)
	DisplayTagged(file m.Path, sites int)
	DisplayCompileStart(dir m.Path, command []string)
	DisplayBuildResult(result m.BuildResult, err error)
	DisplayTagResult(result m.TagResult, err error)
	DisplayRestoreResult(result m.RestoreResult, err error)
	DisplayCallSites(files []m.FileSites, err error) error
	DisplayStatus(staged []m.SourceFile)
	DisplayReplaceResult(result m.ReplaceResult, err error)
}
