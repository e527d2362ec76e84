// Package git provides adapters for inspecting and mutating local Git
// repositories. The adapters shell out to the git binary; all raw output
// parsing stays inside this package so callers only ever see typed values.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// ExecRunner implements domain.Runner by invoking the git binary through
// os/exec, optionally bound to a working directory. An empty Dir runs git
// in the current process directory.
type ExecRunner struct {
	// Dir is the working directory for every invocation. Empty means the
	// process's current directory.
	Dir string
}

// NewExecRunner creates an ExecRunner bound to the given directory.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes `git args...` and returns the captured output. A non-zero
// exit code (or a failure to start the process at all) is returned as an
// error alongside the result so callers can treat it as a distinguishable
// failure outcome.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (domain.RunResult, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, fmt.Errorf("git %v: %w: %s", args, err, stderr.String())
	}
	return result, nil
}
