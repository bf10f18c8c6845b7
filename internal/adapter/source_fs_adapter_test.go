package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				visited = append(visited, path)
			}
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(root, "main.go"), child}, visited)
	})

	t.Run("SkipDir prunes a directory", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		hidden := filepath.Join(root, ".git")
		mustMkdir(t, hidden)
		writeTestFile(t, filepath.Join(hidden, "hook.go"), "package hook\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && path == hidden {
				return SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.False(t, containsPath(visited, filepath.Join(hidden, "hook.go")))
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	content := "package main\n" + "func main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")

	ok, err := adapter.Exists(m.Path(path))
	require.NoError(t, err)
	assert.False(t, ok)

	writeTestFile(t, path, "package main\n")

	ok, err = adapter.Exists(m.Path(path))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalSourceFSAdapter_RenameAndRemove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	from := filepath.Join(root, "main.go")
	to := filepath.Join(root, "main.goo")
	writeTestFile(t, from, "package main\n")

	require.NoError(t, adapter.Rename(m.Path(from), m.Path(to)))
	assert.NoFileExists(t, from)
	assert.Equal(t, "package main\n", string(readFileBytes(t, to)))

	require.NoError(t, adapter.Remove(m.Path(to)))
	assert.NoFileExists(t, to)

	// removing twice is fine
	require.NoError(t, adapter.Remove(m.Path(to)))
}

func TestLocalSourceFSAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "old\n")

	require.NoError(t, adapter.WriteFileAtomic(m.Path(path), []byte("new\n"), 0o640))

	assert.Equal(t, "new\n", string(readFileBytes(t, path)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestLocalSourceFSAdapter_WriteFileAtomic_MissingDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "missing", "main.go")

	require.Error(t, adapter.WriteFileAtomic(m.Path(path), []byte("x"), 0o600))
}

func TestLocalSourceFSAdapter_NormalizeRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	wd, err := os.Getwd()
	require.NoError(t, err)

	wd, err = filepath.EvalSymlinks(wd)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		root string
		want string
	}{
		{"empty", "", wd},
		{"dot", ".", wd},
		{"recursive suffix", "./...", wd},
		{"bare ellipsis", "...", wd},
		{"nested recursive", "pkg/...", filepath.Join(wd, "pkg")},
		{"home", "~/logtag-missing-src", filepath.Join(home, "logtag-missing-src")},
		{"absolute", "/opt/logtag-missing-src", "/opt/logtag-missing-src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.NormalizeRoot(m.Path(tt.root))
			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}
}

func TestLocalSourceFSAdapter_NormalizeRoot_ResolvesSymlinkedRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	realDir := filepath.Join(base, "real")
	mustMkdir(t, realDir)

	link := filepath.Join(base, "link")
	require.NoError(t, os.Symlink(realDir, link))

	got, err := adapter.NormalizeRoot(m.Path(link + "/..."))
	require.NoError(t, err)
	assert.Equal(t, m.Path(realDir), got)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}

func hasLine(output, want string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}

	return false
}
