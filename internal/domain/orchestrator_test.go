package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mouse-blink/logtag/internal/adapter"
	adaptermocks "github.com/mouse-blink/logtag/internal/adapter/mocks"
	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestOrchestrator(t *testing.T, c components, compiler adapter.CompilerAdapter) Orchestrator {
	t.Helper()

	return NewOrchestrator(c.fs, compiler, c.scanner, c.tagger, c.restorer, zaptest.NewLogger(t))
}

func buildArgs(root string) BuildArgs {
	return BuildArgs{
		Options: testOptions(),
		Roots:   m.SourceTree{m.Path(root)},
		Dir:     m.Path(root),
		Command: []string{"go", "build", "-v"},
	}
}

func TestOrchestrator_Build_Success(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, sampleTree())
	before := snapshot(t, root)

	c := newComponents(t)
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	orch := newTestOrchestrator(t, c, compiler)

	compiler.EXPECT().
		Compile(mock.Anything, m.Path(root), []string{"go", "build", "-v"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Path, _ []string, _ []string) (string, error) {
			// the compiler sees the instrumented tree
			require.Contains(t, readFile(t, filepath.Join(root, "worker", "worker.go")), "[worker.go:5],boom")
			return "example.com/app\n", nil
		})

	var (
		planned  int
		tagged   []m.Path
		compiled m.Path
	)

	hooks := Hooks{
		OnPlan:    func(files int) { planned = files },
		OnTagged:  func(file m.Path, _ int) { tagged = append(tagged, file) },
		OnCompile: func(dir m.Path, _ []string) { compiled = dir },
	}

	result, err := orch.Build(context.Background(), buildArgs(root), hooks)
	require.NoError(t, err)

	require.Equal(t, 3, planned)
	require.Len(t, tagged, 3)
	require.Equal(t, m.Path(root), compiled)
	require.Equal(t, 2, result.Tag.Sites)
	require.Len(t, result.Restore.Restored, 3)
	require.Equal(t, "example.com/app\n", result.Output)

	if diff := cmp.Diff(before, snapshot(t, root)); diff != "" {
		t.Fatalf("tree not restored (-before +after):\n%s", diff)
	}
}

func TestOrchestrator_Build_CompileFailureRestores(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, sampleTree())
	before := snapshot(t, root)

	c := newComponents(t)
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	orch := newTestOrchestrator(t, c, compiler)

	compiler.EXPECT().
		Compile(mock.Anything, m.Path(root), mock.Anything, mock.Anything).
		Return("worker.go:5: undefined: logger\n", errInjected)

	result, err := orch.Build(context.Background(), buildArgs(root), Hooks{})
	require.Error(t, err)
	require.True(t, IsKind(err, KindCompile))
	require.ErrorIs(t, err, errInjected)

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, -1, ce.ExitCode)
	require.Equal(t, "worker.go:5: undefined: logger\n", ce.Output)
	require.Equal(t, "worker.go:5: undefined: logger\n", result.Output)
	require.Len(t, result.Restore.Restored, 3)

	require.Equal(t, before, snapshot(t, root))
}

func TestOrchestrator_Build_CancelledMidPrebuildRestores(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, sampleTree())
	before := snapshot(t, root)

	c := newComponents(t)
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	orch := newTestOrchestrator(t, c, compiler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hooks := Hooks{OnTagged: func(m.Path, int) { cancel() }}

	result, err := orch.Build(ctx, buildArgs(root), hooks)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, result.Tag.Files, 1)
	require.Len(t, result.Restore.Restored, 1)

	require.Equal(t, before, snapshot(t, root))
}

func TestOrchestrator_Build_CancelledBeforeStart(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, sampleTree())
	before := snapshot(t, root)

	c := newComponents(t)
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	orch := newTestOrchestrator(t, c, compiler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := orch.Build(ctx, buildArgs(root), Hooks{})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, result.Tag.Files)
	require.Empty(t, result.Restore.Restored)

	require.Equal(t, before, snapshot(t, root))
}

func TestOrchestrator_Build_RefusesStagedTree(t *testing.T) {
	root := tempDir(t)
	files := sampleTree()
	files["worker/worker.goo"] = "package worker\n// left by a crash\n"
	writeTree(t, root, files)
	before := snapshot(t, root)

	c := newComponents(t)
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	orch := newTestOrchestrator(t, c, compiler)

	_, err := orch.Build(context.Background(), buildArgs(root), Hooks{})
	require.ErrorIs(t, err, ErrTreeStaged)

	require.Equal(t, before, snapshot(t, root))
}

func TestOrchestrator_Build_PrebuildFailureRestores(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, sampleTree())
	before := snapshot(t, root)

	fsAdapter := newFaultyFS()
	fsAdapter.failWrite = m.Path(filepath.Join(root, "worker", "quiet.go"))

	c := newComponentsWithFS(t, fsAdapter)
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	orch := newTestOrchestrator(t, c, compiler)

	result, err := orch.Build(context.Background(), buildArgs(root), Hooks{})
	require.ErrorIs(t, err, errInjected)
	require.ErrorContains(t, err, "prebuild")
	require.NotEmpty(t, result.Restore.Restored)

	require.Equal(t, before, snapshot(t, root))
}

func TestOrchestrator_PrebuildThenAfterbuild(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, sampleTree())
	before := snapshot(t, root)

	c := newComponents(t)
	orch := newTestOrchestrator(t, c, nil)
	opts := testOptions()
	roots := m.SourceTree{m.Path(root)}

	tag, err := orch.Prebuild(context.Background(), opts, roots, Hooks{})
	require.NoError(t, err)
	require.Len(t, tag.Files, 3)
	require.Equal(t, 2, tag.Sites)

	_, err = orch.Prebuild(context.Background(), opts, roots, Hooks{})
	require.ErrorIs(t, err, ErrTreeStaged, "a tagged tree must not be tagged twice")

	restored, err := orch.Afterbuild(opts, roots)
	require.NoError(t, err)
	require.Len(t, restored.Restored, 3)

	require.Equal(t, before, snapshot(t, root))
}
