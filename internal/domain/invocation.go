package domain

import (
	"fmt"
	"strings"
)

// Invocation is the validated form of a single command-line run.
type Invocation struct {
	Message         string
	Files           []string
	ForceDeleteLock bool
	DryRun          bool
	SkipContentScan bool
}

// NewInvocation builds an Invocation from the positional arguments left
// after flag parsing. The first argument is the commit message, the rest
// are the files to commit.
func NewInvocation(args []string, forceDeleteLock, dryRun, skipContentScan bool) (*Invocation, error) {
	if len(args) < 2 {
		return nil, &UsageError{
			Reason: "expected a commit message followed by at least one file",
		}
	}
	message := args[0]
	files := args[1:]
	if strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Reason: "commit message cannot be empty"}
	}
	for _, file := range files {
		if file == "." {
			return nil, &ValidationError{
				Reason: `refusing to commit "."; name each file explicitly`,
			}
		}
	}
	return &Invocation{
		Message:         message,
		Files:           files,
		ForceDeleteLock: forceDeleteLock,
		DryRun:          dryRun,
		SkipContentScan: skipContentScan,
	}, nil
}

// Summary describes a completed (or dry) run for reporting.
type Summary struct {
	Message   string
	FileCount int
	DryRun    bool
}

func (s *Summary) String() string {
	noun := "files"
	if s.FileCount == 1 {
		noun = "file"
	}
	return fmt.Sprintf("committed %d %s with message %q", s.FileCount, noun, s.Message)
}
