package domain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/logtag/internal/adapter"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap/zaptest"
)

var errInjected = errors.New("injected failure")

func testOptions() Options {
	return Options{
		Extensions: m.DefaultExtensions(),
		SkipDirs:   []string{".git", ".svn", ".hg"},
	}
}

type components struct {
	fs       adapter.SourceFSAdapter
	scanner  Scanner
	tagger   Tagger
	restorer Restorer
}

func newComponents(t *testing.T) components {
	t.Helper()

	return newComponentsWithFS(t, adapter.NewLocalSourceFSAdapter())
}

func newComponentsWithFS(t *testing.T, fsAdapter adapter.SourceFSAdapter) components {
	t.Helper()

	logger := zaptest.NewLogger(t)
	scanner := NewScanner(fsAdapter, logger)

	return components{
		fs:       fsAdapter,
		scanner:  scanner,
		tagger:   NewTagger(fsAdapter, adapter.NewLocalGoFileAdapter(), logger),
		restorer: NewRestorer(fsAdapter, scanner, logger),
	}
}

// faultyFS fails selected operations on selected paths and defers to the
// local filesystem otherwise.
type faultyFS struct {
	*adapter.LocalSourceFSAdapter

	failRename  m.Path
	failWrite   m.Path
	failWalkDir m.Path
}

func newFaultyFS() *faultyFS {
	return &faultyFS{LocalSourceFSAdapter: adapter.NewLocalSourceFSAdapter()}
}

func (f *faultyFS) Rename(oldPath, newPath m.Path) error {
	if oldPath == f.failRename {
		return errInjected
	}

	return f.LocalSourceFSAdapter.Rename(oldPath, newPath)
}

func (f *faultyFS) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	if path == f.failWrite {
		return errInjected
	}

	return f.LocalSourceFSAdapter.WriteFileAtomic(path, content, perm)
}

// Walk reports failWalkDir as unreadable, the way filepath.Walk does when
// reading a directory fails.
func (f *faultyFS) Walk(root m.Path, fn adapter.FilepathWalkFunc) error {
	return f.LocalSourceFSAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && f.failWalkDir != "" && m.Path(path) == f.failWalkDir {
			return fn(path, info, errInjected)
		}

		return fn(path, info, err)
	})
}

// tempDir returns t.TempDir with symlinks resolved, so it matches the paths
// the scanner reports.
func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}

	return dir
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// snapshot maps every regular file under root, by slash-separated relative
// path, to its content.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(content)

		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}

	return files
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(content)
}

func sampleTree() map[string]string {
	return map[string]string{
		"main.go": "package main\n\nfunc main() {\n\tlogger.Info(\"starting\")\n}\n",
		"worker/worker.go": "package worker\n\nfunc run() {\n\tx := 1\n\tlogger.Error(\"boom\")\n\t_ = x\n}\n",
		"worker/quiet.go":  "package worker\n\nfunc quiet() {}\n",
		"README.md":        "logger.Error(\"not go\")\n",
	}
}
