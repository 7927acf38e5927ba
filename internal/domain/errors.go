package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Process exit codes. Usage errors get their own code so callers can
// distinguish "you used it wrong" from "it ran and failed".
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError reports a malformed invocation (missing or misplaced
// arguments). Never retried.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// ValidationError reports arguments that parsed but are not acceptable:
// an empty message, a message that names an existing path, or a
// wildcard-everything file entry. No repository mutation has happened
// when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports a requested path unknown to the working tree,
// the index and the last commit. Resolution stops at the first offender.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found in working tree, index or last commit: %s", e.Path)
}

// NoChangesError reports that staging the requested files produced an
// empty diff, so committing would create an empty commit.
type NoChangesError struct {
	Files []string
}

func (e *NoChangesError) Error() string {
	return fmt.Sprintf("no staged changes detected for: %s", strings.Join(e.Files, ", "))
}

// CommitError reports a failed commit after recovery was either disabled
// or exhausted. Output carries the combined stream of the failing
// attempt.
type CommitError struct {
	ExitCode int
	Output   string
}

func (e *CommitError) Error() string {
	output := strings.TrimSpace(e.Output)
	if output == "" {
		return fmt.Sprintf("git commit failed with exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("git commit failed with exit code %d: %s", e.ExitCode, output)
}

// ExitCodeFor maps an error to the process exit status.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitFailure
}
