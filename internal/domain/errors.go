package domain

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/logtag/internal/model"
)

// ErrorKind classifies a failure by the step that produced it.
type ErrorKind string

const (
	// KindIO covers missing files, permission problems and staged/live
	// name collisions.
	KindIO ErrorKind = "io"
	// KindCompile is a non-zero exit (or failed start) of the build command.
	KindCompile ErrorKind = "compile"
	// KindVerify is rewritten output that no longer parses.
	KindVerify ErrorKind = "verify"
)

// ErrStaleStage means a staged file already exists where Stage wanted to
// put one, which is what an interrupted earlier run leaves behind.
var ErrStaleStage = errors.New("staged file already exists")

// ErrTreeStaged is returned by operations that refuse to touch a tree that
// still holds staged files.
var ErrTreeStaged = errors.New("tree holds staged files, run restore first")

// Error is a failed step on one path.
type Error struct {
	Kind ErrorKind
	Op   string
	Path m.Path
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ioError(op string, path m.Path, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}

// CompileError describes a failed build command.
type CompileError struct {
	Command  []string
	ExitCode int // -1 when the process did not exit normally
	Output   string
	Err      error
}

func (e *CompileError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s did not complete: %v", strings.Join(e.Command, " "), e.Err)
	}

	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Command, " "), e.ExitCode)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileError(dir m.Path, command []string, output string, err error) error {
	ce := &CompileError{Command: command, ExitCode: -1, Output: output, Err: err}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ce.ExitCode = exitErr.ExitCode()
	}

	return &Error{Kind: KindCompile, Op: "compile", Path: dir, Err: ce}
}
