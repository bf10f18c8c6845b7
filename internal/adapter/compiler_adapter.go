package adapter

import (
	"context"
	"errors"
	"os"
	"os/exec"

	m "github.com/mouse-blink/logtag/internal/model"
)

// CompilerAdapter runs the external build command against an instrumented
// tree. It is a black box to the domain: success or failure plus output.
type CompilerAdapter interface {
	// Compile runs command in dir with env appended to the process
	// environment and returns the combined output. The process is killed
	// when ctx is cancelled.
	Compile(ctx context.Context, dir m.Path, command []string, env []string) (string, error)
}

// LocalCompilerAdapter executes the build command with os/exec.
type LocalCompilerAdapter struct{}

// NewLocalCompilerAdapter constructs a LocalCompilerAdapter.
func NewLocalCompilerAdapter() *LocalCompilerAdapter {
	return &LocalCompilerAdapter{}
}

// Compile runs the build command and waits for it to finish.
func (a *LocalCompilerAdapter) Compile(ctx context.Context, dir m.Path, command []string, env []string) (string, error) {
	if len(command) == 0 {
		return "", errors.New("empty build command")
	}

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = string(dir)
	cmd.Env = append(os.Environ(), env...)

	out, err := cmd.CombinedOutput()

	return string(out), err
}
