package domain

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/mouse-blink/logtag/internal/adapter"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap"
)

// ReplaceArgs describes a find/replace across the live files under Dir.
type ReplaceArgs struct {
	Options
	Dir    m.Path
	Old    string
	New    string
	Regexp bool // treat Old as a regular expression and New as its template
}

// Replacer rewrites text across a source tree.
type Replacer interface {
	Replace(args ReplaceArgs) (m.ReplaceResult, error)
}

type replacer struct {
	fsAdapter adapter.SourceFSAdapter
	scanner   Scanner
	logger    *zap.Logger
}

// NewReplacer constructs a Replacer.
func NewReplacer(fsAdapter adapter.SourceFSAdapter, scanner Scanner, logger *zap.Logger) Replacer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &replacer{fsAdapter: fsAdapter, scanner: scanner, logger: logger}
}

func (r *replacer) Replace(args ReplaceArgs) (m.ReplaceResult, error) {
	var result m.ReplaceResult

	if args.Old == "" {
		return result, errors.New("replace: search text is empty")
	}

	replace, err := replaceFunc(args)
	if err != nil {
		return result, err
	}

	staged, err := collect(r.scanner.Staged(args.Options, args.Dir))
	if err != nil {
		return result, err
	}

	// edits to instrumented copies would be discarded by the next restore
	if len(staged) > 0 {
		return result, ioError("replace", staged[0].Path, ErrTreeStaged)
	}

	files, err := collect(r.scanner.Live(args.Options, args.Dir))
	if err != nil {
		return result, err
	}

	for _, file := range files {
		content, err := r.fsAdapter.ReadFile(file.Path)
		if err != nil {
			return result, ioError("replace", file.Path, err)
		}

		out, n := replace(content)
		if n == 0 {
			continue
		}

		info, err := r.fsAdapter.FileInfo(file.Path)
		if err != nil {
			return result, ioError("replace", file.Path, err)
		}

		if err := r.fsAdapter.WriteFileAtomic(file.Path, out, info.Mode().Perm()); err != nil {
			return result, ioError("replace", file.Path, err)
		}

		r.logger.Debug("replaced", zap.String("path", string(file.Path)), zap.Int("count", n))

		result.Files = append(result.Files, file.Path)
		result.Replacements += n
	}

	return result, nil
}

func replaceFunc(args ReplaceArgs) (func([]byte) ([]byte, int), error) {
	if !args.Regexp {
		old, repl := []byte(args.Old), []byte(args.New)

		return func(content []byte) ([]byte, int) {
			n := bytes.Count(content, old)
			if n == 0 {
				return content, 0
			}

			return bytes.ReplaceAll(content, old, repl), n
		}, nil
	}

	re, err := regexp.Compile(args.Old)
	if err != nil {
		return nil, fmt.Errorf("replace: %w", err)
	}

	repl := []byte(args.New)

	return func(content []byte) ([]byte, int) {
		n := len(re.FindAllIndex(content, -1))
		if n == 0 {
			return content, 0
		}

		return re.ReplaceAll(content, repl), n
	}, nil
}
