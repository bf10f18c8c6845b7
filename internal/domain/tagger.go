package domain

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mouse-blink/logtag/internal/adapter"
	m "github.com/mouse-blink/logtag/internal/model"
	"go.uber.org/zap"
)

// Tagger stages source files and writes instrumented copies at their
// original paths.
type Tagger interface {
	// Stage renames a live file to its staged name. Contents are untouched.
	Stage(file m.SourceFile, opts Options) (m.Path, error)

	// Rewrite reads the staged file and writes the instrumented version to
	// the live path, embedding logicalName in every tag. The staged file is
	// kept as the backup.
	Rewrite(staged m.Path, logicalName string, opts Options) ([]m.CallSite, error)

	// Tag stages then rewrites a live file under its base name.
	Tag(file m.SourceFile, opts Options) ([]m.CallSite, error)

	// Sites reports the call sites Rewrite would tag, without writing.
	Sites(path m.Path, logicalName string) ([]m.CallSite, error)
}

type tagger struct {
	fsAdapter adapter.SourceFSAdapter
	goAdapter adapter.GoFileAdapter
	logger    *zap.Logger
}

// NewTagger constructs a Tagger. goAdapter is only consulted when
// Options.Verify is set and the live extension is .go.
func NewTagger(fsAdapter adapter.SourceFSAdapter, goAdapter adapter.GoFileAdapter, logger *zap.Logger) Tagger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &tagger{fsAdapter: fsAdapter, goAdapter: goAdapter, logger: logger}
}

func (tg *tagger) Stage(file m.SourceFile, opts Options) (m.Path, error) {
	if file.State != m.StateLive {
		return "", ioError("stage", file.Path, fmt.Errorf("file is %s, not live", file.State))
	}

	staged := file.StagedPath(opts.Extensions)

	exists, err := tg.fsAdapter.Exists(staged)
	if err != nil {
		return "", ioError("stage", staged, err)
	}

	if exists {
		return "", ioError("stage", staged, ErrStaleStage)
	}

	if err := tg.fsAdapter.Rename(file.Path, staged); err != nil {
		return "", ioError("stage", file.Path, err)
	}

	tg.logger.Debug("staged", zap.String("path", string(file.Path)))

	return staged, nil
}

func (tg *tagger) Rewrite(staged m.Path, logicalName string, opts Options) ([]m.CallSite, error) {
	stagedFile := m.SourceFile{Path: staged, State: m.StateStaged}
	live := stagedFile.LivePath(opts.Extensions)

	info, err := tg.fsAdapter.FileInfo(staged)
	if err != nil {
		return nil, ioError("rewrite", staged, err)
	}

	content, err := tg.fsAdapter.ReadFile(staged)
	if err != nil {
		return nil, ioError("rewrite", staged, err)
	}

	out, sites := InjectContext(content, logicalName)
	for i := range sites {
		sites[i].File = live
	}

	if opts.Verify && opts.Extensions.Live == ".go" {
		if err := tg.verify(live, content, out); err != nil {
			return nil, err
		}
	}

	if err := tg.fsAdapter.WriteFileAtomic(live, out, info.Mode().Perm()); err != nil {
		return nil, ioError("rewrite", live, err)
	}

	tg.logger.Debug("rewrote", zap.String("path", string(live)), zap.Int("sites", len(sites)))

	return sites, nil
}

func (tg *tagger) Tag(file m.SourceFile, opts Options) ([]m.CallSite, error) {
	staged, err := tg.Stage(file, opts)
	if err != nil {
		return nil, err
	}

	return tg.Rewrite(staged, filepath.Base(string(file.Path)), opts)
}

func (tg *tagger) Sites(path m.Path, logicalName string) ([]m.CallSite, error) {
	content, err := tg.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}

	_, sites := InjectContext(content, logicalName)
	for i := range sites {
		sites[i].File = path
	}

	return sites, nil
}

// verify rejects output that stops parsing. Sources that never parsed are
// passed through untouched, that is the compiler's problem to report.
func (tg *tagger) verify(live m.Path, original, rewritten []byte) error {
	if tg.goAdapter == nil {
		return nil
	}

	_, err := tg.goAdapter.Parse(token.NewFileSet(), string(live), rewritten)
	if err == nil {
		return nil
	}

	if _, origErr := tg.goAdapter.Parse(token.NewFileSet(), string(live), original); origErr != nil {
		tg.logger.Warn("source does not parse, skipping verification", zap.String("path", string(live)))
		return nil
	}

	return &Error{Kind: KindVerify, Op: "verify", Path: live, Err: err}
}

// InjectContext tags every recognised logging call in content with
// [logicalName:line]. Lines keep their terminators, so the output has the
// same number of lines as the input.
func InjectContext(content []byte, logicalName string) ([]byte, []m.CallSite) {
	var (
		b     strings.Builder
		sites []m.CallSite
	)

	b.Grow(len(content))

	for i, line := range splitLines(string(content)) {
		lineNum := i + 1

		prefix, offset, ok := MatchLine(line)
		if !ok {
			b.WriteString(line)
			continue
		}

		tail := line[offset+len(prefix):]
		b.WriteString(line[:offset])
		b.WriteString(prefix)
		b.WriteString("[")
		b.WriteString(logicalName)
		b.WriteString(":")
		b.WriteString(strconv.Itoa(lineNum))
		b.WriteString("],")
		b.WriteString(tail)

		sites = append(sites, m.CallSite{Line: lineNum, Offset: offset, Prefix: prefix})
	}

	return []byte(b.String()), sites
}

// MatchLine returns the highest-priority prefix present in line and the byte
// offset of its first occurrence.
func MatchLine(line string) (prefix string, offset int, ok bool) {
	for _, p := range m.Prefixes {
		if idx := strings.Index(line, p); idx >= 0 {
			return p, idx, true
		}
	}

	return "", 0, false
}

// splitLines splits s after every \n. A final line without a terminator is
// kept as is; empty input has no lines.
func splitLines(s string) []string {
	var lines []string

	for len(s) > 0 {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			lines = append(lines, s)
			break
		}

		lines = append(lines, s[:idx+1])
		s = s[idx+1:]
	}

	return lines
}

// isStale reports whether err is a staged/live collision.
func isStale(err error) bool {
	return errors.Is(err, ErrStaleStage)
}
