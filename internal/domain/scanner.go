// Package domain contains the log-tagging workflow: scanning source trees,
// staging and rewriting files, restoring them, and driving a build between
// the two.
package domain

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/mouse-blink/logtag/internal/adapter"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap"
)

// Options carries the per-run settings shared by every operation.
type Options struct {
	Extensions m.Extensions
	SkipDirs   []string
	Exclude    []*regexp.Regexp
	Verify     bool
}

// Scanner finds live and staged files under a set of roots. The returned
// sequences are lazy and may be ranged over any number of times; each range
// performs a fresh walk.
//
// A root that cannot be walked ends the sequence with its error. An
// unreadable entry below a root is yielded as an error and the walk moves
// on. Staged scans ignore Options.Exclude: every staged file was written by
// a previous run and must stay reachable for restore.
type Scanner interface {
	Live(opts Options, roots ...m.Path) iter.Seq2[m.SourceFile, error]
	Staged(opts Options, roots ...m.Path) iter.Seq2[m.SourceFile, error]
}

type scanner struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *zap.Logger
}

// NewScanner constructs a Scanner backed by fsAdapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter, logger *zap.Logger) Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &scanner{fsAdapter: fsAdapter, logger: logger}
}

func (s *scanner) Live(opts Options, roots ...m.Path) iter.Seq2[m.SourceFile, error] {
	return s.scan(opts, m.StateLive, opts.Extensions.Live, roots)
}

func (s *scanner) Staged(opts Options, roots ...m.Path) iter.Seq2[m.SourceFile, error] {
	opts.Exclude = nil

	return s.scan(opts, m.StateStaged, opts.Extensions.Staged, roots)
}

func (s *scanner) scan(opts Options, state m.FileState, ext string, roots []m.Path) iter.Seq2[m.SourceFile, error] {
	return func(yield func(m.SourceFile, error) bool) {
		// overlapping roots must not yield a file twice
		seen := make(map[m.Path]struct{})

		for _, root := range roots {
			rootPath, err := s.fsAdapter.NormalizeRoot(root)
			if err != nil {
				yield(m.SourceFile{}, ioError("scan", root, err))
				return
			}

			info, err := s.fsAdapter.FileInfo(rootPath)
			if err != nil {
				yield(m.SourceFile{}, ioError("scan", rootPath, err))
				return
			}

			if !info.IsDir() {
				yield(m.SourceFile{}, ioError("scan", rootPath, errors.New("not a directory")))
				return
			}

			stopped := false

			err = s.fsAdapter.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					if path == string(rootPath) {
						return err
					}

					if !yield(m.SourceFile{}, ioError("scan", m.Path(path), err)) {
						stopped = true
						return adapter.SkipAll
					}

					if info != nil && info.IsDir() {
						return adapter.SkipDir
					}

					return nil
				}

				if info.IsDir() {
					if path != string(rootPath) && slices.Contains(opts.SkipDirs, info.Name()) {
						return adapter.SkipDir
					}

					return nil
				}

				if !info.Mode().IsRegular() || !strings.HasSuffix(info.Name(), ext) || info.Name() == ext {
					return nil
				}

				if excluded(opts.Exclude, path) {
					s.logger.Debug("excluded", zap.String("path", path))
					return nil
				}

				p := m.Path(path)
				if _, ok := seen[p]; ok {
					return nil
				}

				seen[p] = struct{}{}

				if !yield(m.SourceFile{Path: p, State: state}, nil) {
					stopped = true
					return adapter.SkipAll
				}

				return nil
			})

			if stopped {
				return
			}

			if err != nil {
				yield(m.SourceFile{}, ioError("scan", rootPath, err))
				return
			}
		}
	}
}

func excluded(patterns []*regexp.Regexp, path string) bool {
	slashed := filepath.ToSlash(path)
	for _, re := range patterns {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

// collect drains a scan into a slice, stopping at the first error.
func collect(seq iter.Seq2[m.SourceFile, error]) ([]m.SourceFile, error) {
	var files []m.SourceFile

	for file, err := range seq {
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return files, nil
}

// collectAll drains a scan completely, keeping every file and every error.
func collectAll(seq iter.Seq2[m.SourceFile, error]) ([]m.SourceFile, []error) {
	var (
		files []m.SourceFile
		errs  []error
	)

	for file, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}

		files = append(files, file)
	}

	return files, errs
}
