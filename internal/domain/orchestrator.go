package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mouse-blink/logtag/internal/adapter"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap"
)

// Hooks receive progress while the orchestrator works. Nil hooks are skipped.
type Hooks struct {
	OnPlan    func(files int)
	OnTagged  func(file m.Path, sites int)
	OnCompile func(dir m.Path, command []string)
}

// BuildArgs describes one instrumented build.
type BuildArgs struct {
	Options
	Roots   m.SourceTree
	Dir     m.Path
	Command []string
	Env     []string
}

// Orchestrator drives the stage, rewrite, compile, restore lifecycle.
type Orchestrator interface {
	// Prebuild stages and rewrites every live file under roots. It refuses
	// to start while any staged file is present.
	Prebuild(ctx context.Context, opts Options, roots m.SourceTree, hooks Hooks) (m.TagResult, error)

	// Afterbuild restores the trees.
	Afterbuild(opts Options, roots m.SourceTree) (m.RestoreResult, error)

	// Build runs Prebuild, the compiler and Afterbuild. Once staging has
	// begun, Afterbuild runs on every exit path, cancellation included.
	Build(ctx context.Context, args BuildArgs, hooks Hooks) (m.BuildResult, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	compiler  adapter.CompilerAdapter
	scanner   Scanner
	tagger    Tagger
	restorer  Restorer
	logger    *zap.Logger
}

// NewOrchestrator constructs an Orchestrator from its collaborators.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	compiler adapter.CompilerAdapter,
	scanner Scanner,
	tagger Tagger,
	restorer Restorer,
	logger *zap.Logger,
) Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		compiler:  compiler,
		scanner:   scanner,
		tagger:    tagger,
		restorer:  restorer,
		logger:    logger,
	}
}

func (o *orchestrator) Prebuild(ctx context.Context, opts Options, roots m.SourceTree, hooks Hooks) (m.TagResult, error) {
	result, _, err := o.prebuild(ctx, opts, roots, hooks)
	return result, err
}

// prebuild also reports whether anything was staged, which decides whether
// a failed prebuild still needs a restore.
func (o *orchestrator) prebuild(ctx context.Context, opts Options, roots m.SourceTree, hooks Hooks) (m.TagResult, bool, error) {
	var result m.TagResult

	leftovers, err := collect(o.scanner.Staged(opts, roots...))
	if err != nil {
		return result, false, err
	}

	if len(leftovers) > 0 {
		return result, false, ioError("prebuild", leftovers[0].Path, ErrTreeStaged)
	}

	files, err := collect(o.scanner.Live(opts, roots...))
	if err != nil {
		return result, false, err
	}

	o.logger.Info("tagging", zap.Int("files", len(files)), zap.Int("roots", len(roots)))

	if hooks.OnPlan != nil {
		hooks.OnPlan(len(files))
	}

	began := false

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, began, fmt.Errorf("prebuild interrupted: %w", err)
		}

		began = true

		sites, err := o.tagger.Tag(file, opts)
		if err != nil {
			if isStale(err) {
				o.logger.Warn("stale staged file, an earlier run was interrupted", zap.String("path", string(file.Path)))
			}

			return result, began, err
		}

		result.Files = append(result.Files, file.Path)
		result.Sites += len(sites)

		if hooks.OnTagged != nil {
			hooks.OnTagged(file.Path, len(sites))
		}
	}

	return result, began, nil
}

func (o *orchestrator) Afterbuild(opts Options, roots m.SourceTree) (m.RestoreResult, error) {
	return o.restorer.Restore(opts, roots...)
}

func (o *orchestrator) Build(ctx context.Context, args BuildArgs, hooks Hooks) (result m.BuildResult, err error) {
	logger := o.logger.With(zap.String("run", uuid.NewString()))

	tag, began, err := o.prebuild(ctx, args.Options, args.Roots, hooks)
	result.Tag = tag

	if began {
		defer func() {
			restored, restoreErr := o.Afterbuild(args.Options, args.Roots)
			result.Restore = restored

			if restoreErr != nil {
				logger.Error("restore failed", zap.Error(restoreErr))
				err = errors.Join(err, fmt.Errorf("afterbuild: %w", restoreErr))
			}
		}()
	}

	if err != nil {
		return result, fmt.Errorf("prebuild: %w", err)
	}

	dir, err := o.fsAdapter.NormalizeRoot(args.Dir)
	if err != nil {
		return result, ioError("compile", args.Dir, err)
	}

	if hooks.OnCompile != nil {
		hooks.OnCompile(dir, args.Command)
	}

	logger.Info("compiling", zap.Strings("command", args.Command), zap.String("dir", string(dir)))

	output, err := o.compiler.Compile(ctx, dir, args.Command, args.Env)
	result.Output = output

	if err != nil {
		return result, compileError(dir, args.Command, output, err)
	}

	logger.Info("compiled", zap.String("dir", string(dir)))

	return result, nil
}
