package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/logtag/internal/controller"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TagArgs selects the trees to instrument without building.
type TagArgs struct {
	Options
	Roots m.SourceTree
}

// RestoreArgs selects the trees to restore.
type RestoreArgs struct {
	Options
	Roots m.SourceTree
}

// ListArgs selects the trees whose call sites are listed.
type ListArgs struct {
	Options
	Roots   m.SourceTree
	Threads int
}

// StatusArgs selects the trees checked for leftover staged files.
type StatusArgs struct {
	Options
	Roots m.SourceTree
}

// Workflow is the entry point used by the CLI. Each method runs one command
// and reports through the UI.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	Tag(ctx context.Context, args TagArgs) error
	Restore(args RestoreArgs) error
	List(ctx context.Context, args ListArgs) error
	Status(args StatusArgs) error
	Replace(args ReplaceArgs) error
}

type workflow struct {
	ui       controller.UI
	scanner  Scanner
	tagger   Tagger
	orch     Orchestrator
	replacer Replacer
	logger   *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	ui controller.UI,
	scanner Scanner,
	tagger Tagger,
	orch Orchestrator,
	replacer Replacer,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		ui:       ui,
		scanner:  scanner,
		tagger:   tagger,
		orch:     orch,
		replacer: replacer,
		logger:   logger,
	}
}

func (w *workflow) hooks() Hooks {
	return Hooks{
		OnPlan:    w.ui.DisplayPlan,
		OnTagged:  w.ui.DisplayTagged,
		OnCompile: w.ui.DisplayCompileStart,
	}
}

func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	if err := w.ui.Start(controller.WithBuildMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	result, err := w.orch.Build(ctx, args, w.hooks())
	w.ui.DisplayBuildResult(result, err)

	return err
}

func (w *workflow) Tag(ctx context.Context, args TagArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	result, err := w.orch.Prebuild(ctx, args.Options, args.Roots, w.hooks())
	w.ui.DisplayTagResult(result, err)

	if err != nil && !errors.Is(err, ErrTreeStaged) {
		// a partial tag leaves the tree half instrumented; undo it
		_, restoreErr := w.orch.Afterbuild(args.Options, args.Roots)
		err = errors.Join(err, restoreErr)
	}

	return err
}

func (w *workflow) Restore(args RestoreArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	result, err := w.orch.Afterbuild(args.Options, args.Roots)
	w.ui.DisplayRestoreResult(result, err)

	return err
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	files, err := w.sites(ctx, args)

	return w.ui.DisplayCallSites(files, err)
}

// sites reads candidate files concurrently. Results keep scan order.
func (w *workflow) sites(ctx context.Context, args ListArgs) ([]m.FileSites, error) {
	files, err := collect(w.scanner.Live(args.Options, args.Roots...))
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	found := make([]m.FileSites, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sites, err := w.tagger.Sites(file.Path, filepath.Base(string(file.Path)))
			if err != nil {
				return err
			}

			found[i] = m.FileSites{File: file, Sites: sites}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]m.FileSites, 0, len(found))

	for _, fs := range found {
		if len(fs.Sites) > 0 {
			result = append(result, fs)
		}
	}

	return result, nil
}

func (w *workflow) Status(args StatusArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	staged, err := collect(w.scanner.Staged(args.Options, args.Roots...))
	if err != nil {
		return err
	}

	w.ui.DisplayStatus(staged)

	if len(staged) > 0 {
		return fmt.Errorf("%d staged file(s): %w", len(staged), ErrTreeStaged)
	}

	return nil
}

func (w *workflow) Replace(args ReplaceArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	result, err := w.replacer.Replace(args)
	w.ui.DisplayReplaceResult(result, err)

	return err
}
