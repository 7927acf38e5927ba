package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// gitEngine is the implementation of the GitEngine interface. Read-side
// queries go through go-git against the opened repository; mutating
// operations shell out to the git binary.

type gitEngine struct {
	repo    *git.Repository
	runner  gitRunner
	headRef string
}

// NewGitEngine opens the repository at repoDir and returns an engine
// that invokes gitBin for mutating operations.
func NewGitEngine(repoDir, gitBin, headRef string) (GitEngine, error) {
	repo, err := git.PlainOpen(repoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &gitEngine{
		repo:    repo,
		runner:  gitRunner{bin: gitBin, dir: repoDir},
		headRef: headRef,
	}, nil
}

// PathTracked reports whether the path has an index entry.
func (e *gitEngine) PathTracked(_ context.Context, path string) (bool, error) {
	idx, err := e.repo.Storer.Index()
	if err != nil {
		return false, fmt.Errorf("failed to read index: %w", err)
	}
	if _, err := idx.Entry(path); err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up %s in index: %w", path, err)
	}
	return true, nil
}

// BlobInHead reports whether the path existed as a blob in the commit
// the configured head reference resolves to.
func (e *gitEngine) BlobInHead(_ context.Context, path string) (bool, error) {
	hash, err := e.repo.ResolveRevision(plumbing.Revision(e.headRef))
	if err != nil {
		// A repository with no commits yet has nothing in head.
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve %s: %w", e.headRef, err)
	}
	commit, err := e.repo.CommitObject(*hash)
	if err != nil {
		return false, fmt.Errorf("failed to get commit for %s: %w", e.headRef, err)
	}
	if _, err := commit.File(path); err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up %s in %s: %w", path, e.headRef, err)
	}
	return true, nil
}

// ResetIndex resets the whole index to the head commit so prior partial
// staging cannot leak into this commit.
func (e *gitEngine) ResetIndex(ctx context.Context) error {
	result, err := e.runner.run(ctx, "reset", "--quiet", e.headRef, "--")
	if err != nil {
		return err
	}
	if result.exitCode != 0 {
		return fmt.Errorf("git reset failed with exit code %d: %s", result.exitCode, result.trimmed())
	}
	return nil
}

// StagePaths stages exactly the given paths. The -A pathspec form also
// stages deletions of paths gone from the working tree.
func (e *gitEngine) StagePaths(ctx context.Context, paths []string) error {
	args := append([]string{"add", "-A", "--"}, paths...)
	result, err := e.runner.run(ctx, args...)
	if err != nil {
		return err
	}
	if result.exitCode != 0 {
		return fmt.Errorf("git add failed with exit code %d: %s", result.exitCode, result.trimmed())
	}
	return nil
}

// StagedDiffEmpty reports whether the staged diff restricted to the
// given paths is empty.
func (e *gitEngine) StagedDiffEmpty(ctx context.Context, paths []string) (bool, error) {
	args := append([]string{"diff", "--cached", "--quiet", e.headRef, "--"}, paths...)
	result, err := e.runner.run(ctx, args...)
	if err != nil {
		return false, err
	}
	switch result.exitCode {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, fmt.Errorf("git diff failed with exit code %d: %s", result.exitCode, result.trimmed())
	}
}

// Commit runs the underlying commit restricted to the given paths.
func (e *gitEngine) Commit(ctx context.Context, message string, paths []string) (domain.CommitAttempt, error) {
	args := append([]string{"commit", "-m", message, "--"}, paths...)
	result, err := e.runner.run(ctx, args...)
	if err != nil {
		return domain.CommitAttempt{}, err
	}
	return domain.CommitAttempt{
		ExitCode: result.exitCode,
		Output:   result.lines(),
	}, nil
}
