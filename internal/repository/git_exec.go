package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// gitRunner shells out to the real git client. The mutating operations
// go through it because lock-file conflicts and exit codes are
// properties of the git binary, not of the object store.
type gitRunner struct {
	bin string
	dir string
}

// runResult holds the combined stdout/stderr stream and the exit code of
// one git invocation.
type runResult struct {
	combined []byte
	exitCode int
}

func (r runResult) lines() []string {
	trimmed := strings.TrimRight(string(r.combined), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func (r runResult) trimmed() string {
	return strings.TrimSpace(string(r.combined))
}

// run executes a git command. A non-zero exit is reported through the
// result; the error is reserved for failing to start the process.
func (r gitRunner) run(ctx context.Context, args ...string) (runResult, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	result := runResult{combined: buf.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.exitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s %s: %w", r.bin, strings.Join(args, " "), err)
	}
	return result, nil
}
