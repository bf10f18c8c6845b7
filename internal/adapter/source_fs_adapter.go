// Package adapter contains the filesystem and subprocess adapters used by the
// log-tagging workflow.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/logtag/internal/model"
)

// SkipDir and SkipAll may be returned from a FilepathWalkFunc to prune a
// directory or stop the walk.
var (
	SkipDir = filepath.SkipDir
	SkipAll = filepath.SkipAll
)

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when staging, rewriting and restoring source trees.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively in lexical order.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path without following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether anything is present at path.
	Exists(path m.Path) (bool, error)

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath m.Path) error

	// Remove deletes a single file. A missing file is not an error.
	Remove(path m.Path) error

	// WriteFileAtomic writes content to a temporary sibling and renames it
	// over path, so readers never observe a partially written file.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// NormalizeRoot expands ~, strips a trailing /..., makes root absolute
	// and resolves symlinks when the root exists.
	NormalizeRoot(root m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over everything under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from a scan of a user-selected tree
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// Exists reports whether a file or directory is present at path.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Lstat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// Rename moves a file. Both paths must live on the same filesystem.
func (a *LocalSourceFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// Remove deletes a file, ignoring a file that is already gone.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	err := os.Remove(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// WriteFileAtomic writes to a hidden temp file in the target directory and
// renames it into place.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	dir, base := filepath.Split(string(path))
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".logtag-*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, string(path))
}

// NormalizeRoot expands ~, strips a trailing /... and returns an absolute
// path. An existing root has its symlinks resolved.
func (a *LocalSourceFSAdapter) NormalizeRoot(root m.Path) (m.Path, error) {
	rootStr := parseRootPath(string(root))

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", root, err)
	}

	// a symlinked root is walked through its target; entries below it are
	// still Lstat'ed
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	return m.Path(abs), nil
}

// parseRootPath drops the Go-style /... suffix. Scans always recurse.
func parseRootPath(rootStr string) string {
	if rootStr == "..." {
		return "."
	}

	return strings.TrimSuffix(rootStr, "/...")
}
