// Package model defines the data structures shared by the log-tagging workflow.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// FileState tells whether a file sits at its original path or has been
// renamed aside as a backup.
type FileState string

const (
	// StateLive is a file at its original source path. It is either untouched
	// or holds instrumented content.
	StateLive FileState = "live"

	// StateStaged is the renamed-aside original. While a staged file exists it
	// is the source of truth for its logical file.
	StateStaged FileState = "staged"
)

// DefaultLiveExt and DefaultStagedMarker give the .go / .goo pair.
const (
	DefaultLiveExt      = ".go"
	DefaultStagedMarker = "o"
)

// Extensions is the live/staged extension pair. Staged is always Live plus a
// single trailing marker character.
type Extensions struct {
	Live   string
	Staged string
}

// NewExtensions builds the pair from a live extension and a one-character marker.
func NewExtensions(live, marker string) (Extensions, error) {
	if !strings.HasPrefix(live, ".") || len(live) < 2 {
		return Extensions{}, fmt.Errorf("live extension %q must start with a dot", live)
	}

	if len([]rune(marker)) != 1 {
		return Extensions{}, fmt.Errorf("staged marker %q must be exactly one character", marker)
	}

	if strings.ContainsAny(marker, `/\.`) {
		return Extensions{}, fmt.Errorf("staged marker %q is not allowed", marker)
	}

	return Extensions{Live: live, Staged: live + marker}, nil
}

// DefaultExtensions returns the .go / .goo pair.
func DefaultExtensions() Extensions {
	return Extensions{Live: DefaultLiveExt, Staged: DefaultLiveExt + DefaultStagedMarker}
}

// SourceTree is the ordered set of root directories to scan.
type SourceTree []Path

// SourceFile is one file found by a scan.
type SourceFile struct {
	Path  Path
	State FileState
}

// LivePath returns the original source path of the logical file.
func (f SourceFile) LivePath(ext Extensions) Path {
	if f.State == StateStaged {
		return Path(strings.TrimSuffix(string(f.Path), ext.Staged) + ext.Live)
	}

	return f.Path
}

// StagedPath returns the backup path of the logical file.
func (f SourceFile) StagedPath(ext Extensions) Path {
	if f.State == StateStaged {
		return f.Path
	}

	return Path(strings.TrimSuffix(string(f.Path), ext.Live) + ext.Staged)
}
