package domain

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/stretchr/testify/require"
)

func livePaths(root string, rels ...string) []m.SourceFile {
	files := make([]m.SourceFile, 0, len(rels))
	for _, rel := range rels {
		files = append(files, m.SourceFile{Path: m.Path(filepath.Join(root, filepath.FromSlash(rel))), State: m.StateLive})
	}

	return files
}

func TestScanner_Live_RecursiveAndLexical(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"b/c.go":        "package b\n",
		"a.go":          "package a\n",
		"b/d/e.go":      "package d\n",
		"b/c.goo":       "package b\n",
		"notes.txt":     "Info(\"x\")\n",
		".git/hooks.go": "package hooks\n",
		"vendor.gone":   "",
	})

	c := newComponents(t)

	got, err := collect(c.scanner.Live(testOptions(), m.Path(root)))
	require.NoError(t, err)

	want := livePaths(root, "a.go", "b/c.go", "b/d/e.go")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Live() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_Staged(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a.go":     "package a\n",
		"a.goo":    "package a\n",
		"x/y.goo":  "package x\n",
		"x/z.gooo": "package x\n",
	})

	c := newComponents(t)

	got, err := collect(c.scanner.Staged(testOptions(), m.Path(root)))
	require.NoError(t, err)

	want := []m.SourceFile{
		{Path: m.Path(filepath.Join(root, "a.goo")), State: m.StateStaged},
		{Path: m.Path(filepath.Join(root, "x", "y.goo")), State: m.StateStaged},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Staged() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_OverlappingRootsYieldOnce(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a.go":   "package a\n",
		"b/c.go": "package b\n",
	})

	c := newComponents(t)

	got, err := collect(c.scanner.Live(testOptions(), m.Path(root), m.Path(filepath.Join(root, "b")), m.Path(root+"/...")))
	require.NoError(t, err)

	if diff := cmp.Diff(livePaths(root, "a.go", "b/c.go"), got); diff != "" {
		t.Fatalf("Live() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_Exclude(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a.go":          "package a\n",
		"a_test.go":     "package a\n",
		"gen/model.go":  "package gen\n",
		"keep/model.go": "package keep\n",
	})

	opts := testOptions()
	opts.Exclude = []*regexp.Regexp{
		regexp.MustCompile(`_test\.go$`),
		regexp.MustCompile(`/gen/`),
	}

	c := newComponents(t)

	got, err := collect(c.scanner.Live(opts, m.Path(root)))
	require.NoError(t, err)

	if diff := cmp.Diff(livePaths(root, "a.go", "keep/model.go"), got); diff != "" {
		t.Fatalf("Live() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_EarlyStopAndRestart(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a.go": "package a\n",
		"b.go": "package a\n",
		"c.go": "package a\n",
	})

	c := newComponents(t)
	seq := c.scanner.Live(testOptions(), m.Path(root))

	var first []m.SourceFile

	for file, err := range seq {
		require.NoError(t, err)

		first = append(first, file)

		break
	}

	require.Len(t, first, 1)

	all, err := collect(seq)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestScanner_RootErrors(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{"a.go": "package a\n"})

	c := newComponents(t)

	_, err := collect(c.scanner.Live(testOptions(), m.Path(filepath.Join(root, "missing"))))
	require.Error(t, err)
	require.True(t, IsKind(err, KindIO))

	_, err = collect(c.scanner.Live(testOptions(), m.Path(filepath.Join(root, "a.go"))))
	require.Error(t, err)
	require.ErrorContains(t, err, "not a directory")
}

func TestScanner_CustomExtensions(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a.py":  "Info(\"x\")\n",
		"a.pyc": "",
		"b.pyo": "",
		"c.go":  "package c\n",
	})

	ext, err := m.NewExtensions(".py", "o")
	require.NoError(t, err)

	opts := testOptions()
	opts.Extensions = ext

	c := newComponents(t)

	live, err := collect(c.scanner.Live(opts, m.Path(root)))
	require.NoError(t, err)
	require.Equal(t, livePaths(root, "a.py"), live)

	staged, err := collect(c.scanner.Staged(opts, m.Path(root)))
	require.NoError(t, err)
	require.Len(t, staged, 1)
	require.Equal(t, m.Path(filepath.Join(root, "b.pyo")), staged[0].Path)
}

func TestScanner_SymlinkedRoot(t *testing.T) {
	base := tempDir(t)
	realDir := filepath.Join(base, "real")
	writeTree(t, realDir, map[string]string{"a.go": "package a\n\nfunc f() { logging.Error(\"x\") }\n"})

	link := filepath.Join(base, "link")
	require.NoError(t, os.Symlink(realDir, link))

	c := newComponents(t)

	got, err := collect(c.scanner.Live(testOptions(), m.Path(link)))
	require.NoError(t, err)

	if diff := cmp.Diff(livePaths(realDir, "a.go"), got); diff != "" {
		t.Fatalf("Live() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_UnreadableDirectoryDoesNotEndWalk(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a/x.go": "package a\n",
		"b/y.go": "package b\n",
		"c/z.go": "package c\n",
	})

	fsAdapter := newFaultyFS()
	fsAdapter.failWalkDir = m.Path(filepath.Join(root, "b"))
	c := newComponentsWithFS(t, fsAdapter)

	files, errs := collectAll(c.scanner.Live(testOptions(), m.Path(root)))
	require.Equal(t, livePaths(root, "a/x.go", "c/z.go"), files)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errInjected)
	require.True(t, IsKind(errs[0], KindIO))
}

func TestScanner_StagedIgnoresExclude(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"a.goo":     "package a\n",
		"gen/b.goo": "package gen\n",
	})

	opts := testOptions()
	opts.Exclude = []*regexp.Regexp{regexp.MustCompile(`/gen/`)}

	c := newComponents(t)

	staged, err := collect(c.scanner.Staged(opts, m.Path(root)))
	require.NoError(t, err)
	require.Len(t, staged, 2)
	require.Equal(t, m.Path(filepath.Join(root, "gen", "b.goo")), staged[1].Path)
}
