package repository

import (
	"context"

	"github.com/commitscope/commitscope/internal/domain"
)

// GitEngine defines the version-control operations the commit
// orchestration needs. It is the injection point for tests: the state
// machine never talks to git directly.

type GitEngine interface {
	// PathTracked reports whether the path has an entry in the index,
	// independent of on-disk presence.
	PathTracked(ctx context.Context, path string) (bool, error)
	// BlobInHead reports whether the path existed as a blob in the last
	// commit.
	BlobInHead(ctx context.Context, path string) (bool, error)
	// ResetIndex resets the entire index to the last commit, discarding
	// any pre-existing staging.
	ResetIndex(ctx context.Context) error
	// StagePaths stages exactly the given paths, including deletions.
	StagePaths(ctx context.Context, paths []string) error
	// StagedDiffEmpty reports whether the staged diff restricted to the
	// given paths is empty.
	StagedDiffEmpty(ctx context.Context, paths []string) (bool, error)
	// Commit runs the underlying commit restricted to the given paths.
	// A non-zero exit is reported through the attempt, not the error;
	// the error is reserved for failing to invoke git at all.
	Commit(ctx context.Context, message string, paths []string) (domain.CommitAttempt, error)
}
