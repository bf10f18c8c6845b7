package domain

import (
	"errors"

	"github.com/mouse-blink/logtag/internal/adapter"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap"
)

// Restorer puts staged originals back in place of instrumented live files.
type Restorer interface {
	// Restore deletes every live file that has a staged sibling, then renames
	// every staged file back to its live name. The delete pass covers all
	// roots before the rename pass starts. Unreadable directories and
	// individual failures do not stop the pass; they are joined into the
	// returned error.
	Restore(opts Options, roots ...m.Path) (m.RestoreResult, error)
}

type restorer struct {
	fsAdapter adapter.SourceFSAdapter
	scanner   Scanner
	logger    *zap.Logger
}

// NewRestorer constructs a Restorer.
func NewRestorer(fsAdapter adapter.SourceFSAdapter, scanner Scanner, logger *zap.Logger) Restorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &restorer{fsAdapter: fsAdapter, scanner: scanner, logger: logger}
}

func (r *restorer) Restore(opts Options, roots ...m.Path) (m.RestoreResult, error) {
	var result m.RestoreResult

	// exclude patterns describe what to instrument, not what to put back
	opts.Exclude = nil

	staged, errs := collectAll(r.scanner.Staged(opts, roots...))
	if len(staged) == 0 {
		r.logScanErrors(errs)
		return result, errors.Join(errs...)
	}

	live, liveErrs := collectAll(r.scanner.Live(opts, roots...))
	errs = append(errs, liveErrs...)
	r.logScanErrors(errs)

	backups := make(map[m.Path]struct{}, len(staged))
	for _, file := range staged {
		backups[file.Path] = struct{}{}
	}

	// Live files without a backup were never staged by us; they are the
	// user's and stay.
	for _, file := range live {
		if _, ok := backups[file.StagedPath(opts.Extensions)]; !ok {
			continue
		}

		if err := r.fsAdapter.Remove(file.Path); err != nil {
			errs = append(errs, ioError("remove", file.Path, err))
			continue
		}

		result.Removed = append(result.Removed, file.Path)
	}

	for _, file := range staged {
		target := file.LivePath(opts.Extensions)
		if err := r.fsAdapter.Rename(file.Path, target); err != nil {
			errs = append(errs, ioError("restore", file.Path, err))
			continue
		}

		result.Restored = append(result.Restored, target)
	}

	r.logger.Info("restored",
		zap.Int("removed", len(result.Removed)),
		zap.Int("restored", len(result.Restored)),
		zap.Int("failed", len(errs)))

	return result, errors.Join(errs...)
}

func (r *restorer) logScanErrors(errs []error) {
	for _, err := range errs {
		r.logger.Warn("scan error during restore", zap.Error(err))
	}
}
