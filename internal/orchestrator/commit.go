package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/commitscope/commitscope/internal/repository"
	"github.com/commitscope/commitscope/internal/usecase"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Notifier receives mid-run informational lines, such as the removal of
// a stale lock file.
type Notifier interface {
	Noticef(format string, args ...any)
}

// CommitOrchestrator drives one run end to end: validation, path
// resolution, staging, and the bounded commit/retry state machine. Data
// flows strictly downstream; only the commit step loops, exactly once.
type CommitOrchestrator struct {
	gitRepo  repository.GitEngine
	fsRepo   repository.FileSystemRepository
	guard    repository.InstanceLock
	notifier Notifier
	repoDir  string
	log      *zap.Logger
}

// NewCommitOrchestrator creates a new commit orchestrator. The
// filesystem is rooted at repoDir, so repository paths reaching the
// filesystem must be relative to it.
func NewCommitOrchestrator(
	gitRepo repository.GitEngine,
	fsRepo repository.FileSystemRepository,
	guard repository.InstanceLock,
	notifier Notifier,
	repoDir string,
	log *zap.Logger,
) *CommitOrchestrator {
	return &CommitOrchestrator{
		gitRepo:  gitRepo,
		fsRepo:   fsRepo,
		guard:    guard,
		notifier: notifier,
		repoDir:  repoDir,
		log:      log,
	}
}

// Execute runs the full workflow for a validated invocation.
func (o *CommitOrchestrator) Execute(ctx context.Context, inv *domain.Invocation) (*domain.Summary, error) {
	if err := o.validate(inv); err != nil {
		return nil, err
	}
	resolutions, err := o.resolvePaths(ctx, inv.Files)
	if err != nil {
		return nil, err
	}
	for _, res := range resolutions {
		o.log.Debug("resolved path",
			zap.String("path", res.Path),
			zap.Stringer("exists_in", res.ExistsIn))
	}
	if err := o.scanContent(inv, resolutions); err != nil {
		return nil, err
	}
	if inv.DryRun {
		o.notifier.Noticef("dry run: would commit %d file(s) with message %q: %s",
			len(inv.Files), inv.Message, strings.Join(inv.Files, ", "))
		return &domain.Summary{Message: inv.Message, FileCount: len(inv.Files), DryRun: true}, nil
	}
	release, err := o.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()
	if err := o.stage(ctx, inv.Files); err != nil {
		return nil, err
	}
	if err := o.commitWithRecovery(ctx, inv); err != nil {
		return nil, err
	}
	return &domain.Summary{Message: inv.Message, FileCount: len(inv.Files)}, nil
}

func (o *CommitOrchestrator) validate(inv *domain.Invocation) error {
	uc := &usecase.ValidateInvocationUseCase{Fs: o.fsRepo}
	return uc.Execute(inv)
}

func (o *CommitOrchestrator) resolvePaths(ctx context.Context, files []string) ([]domain.PathResolution, error) {
	uc := &usecase.ResolvePathsUseCase{Fs: o.fsRepo, GitRepo: o.gitRepo}
	return uc.Execute(ctx, files)
}

func (o *CommitOrchestrator) scanContent(inv *domain.Invocation, resolutions []domain.PathResolution) error {
	if inv.SkipContentScan {
		o.log.Debug("content scan skipped")
		return nil
	}
	uc := &usecase.ScanContentUseCase{Fs: o.fsRepo}
	return uc.Execute(resolutions)
}

func (o *CommitOrchestrator) stage(ctx context.Context, files []string) error {
	uc := &usecase.StageFilesUseCase{GitRepo: o.gitRepo}
	result, err := uc.Execute(ctx, files)
	if err != nil {
		return err
	}
	o.log.Debug("staged files", zap.Bool("has_changes", result.HasChanges))
	return nil
}

// acquireGuard takes the instance lock without waiting. A held lock
// means another run of this tool owns the index right now.
func (o *CommitOrchestrator) acquireGuard() (func(), error) {
	locked, err := o.guard.TryAcquire()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, &domain.CommitError{
			ExitCode: 1,
			Output:   "another commitscope run holds the repository; retry when it finishes",
		}
	}
	return func() {
		if err := o.guard.Release(); err != nil {
			o.log.Warn("failed to release instance lock", zap.Error(err))
		}
	}, nil
}

// commitWithRecovery is the attempt state machine: one commit, and on
// failure with recovery enabled, remove a stale lock file named in the
// output and re-attempt exactly once.
func (o *CommitOrchestrator) commitWithRecovery(ctx context.Context, inv *domain.Invocation) error {
	attempt, err := o.gitRepo.Commit(ctx, inv.Message, inv.Files)
	if err != nil {
		return fmt.Errorf("failed to invoke commit: %w", err)
	}
	if attempt.ExitCode == 0 {
		return nil
	}
	o.log.Debug("commit attempt failed",
		zap.Int("exit_code", attempt.ExitCode),
		zap.Bool("force_delete_lock", inv.ForceDeleteLock))
	if !inv.ForceDeleteLock {
		return commitError(attempt)
	}
	recovered, err := o.recoverStaleLock(attempt)
	if err != nil {
		return err
	}
	if !recovered {
		return commitError(attempt)
	}
	retry, err := o.gitRepo.Commit(ctx, inv.Message, inv.Files)
	if err != nil {
		return fmt.Errorf("failed to invoke commit retry: %w", err)
	}
	if retry.ExitCode != 0 {
		// The retry's failure is the one reported, not the original.
		return commitError(retry)
	}
	return nil
}

// recoverStaleLock deletes the lock file a failed attempt complained
// about, when the output names one and it still exists on disk.
// Removing a lock is safe only here: recovery was explicitly requested,
// so the lock is presumed leftover from a crashed process rather than
// held by a live one.
func (o *CommitOrchestrator) recoverStaleLock(attempt domain.CommitAttempt) (bool, error) {
	lockPath := extractLockPath(attempt.Output)
	if lockPath == "" {
		return false, nil
	}
	attempt.LockPath = lockPath
	// git names locks by absolute path; the rooted filesystem wants them
	// relative to the repository.
	fsPath := lockPath
	if filepath.IsAbs(fsPath) && o.repoDir != "" {
		rel, err := filepath.Rel(o.repoDir, fsPath)
		if err != nil || strings.HasPrefix(rel, "..") {
			return false, nil
		}
		fsPath = rel
	}
	exists, err := afero.Exists(o.fsRepo, fsPath)
	if err != nil {
		return false, fmt.Errorf("failed to stat lock file %s: %w", lockPath, err)
	}
	if !exists {
		return false, nil
	}
	if err := o.fsRepo.Remove(fsPath); err != nil {
		return false, fmt.Errorf("failed to remove lock file %s: %w", lockPath, err)
	}
	o.notifier.Noticef("removed stale lock file %s, retrying commit", lockPath)
	o.log.Info("removed stale lock file", zap.String("lock_path", lockPath))
	return true, nil
}

func commitError(attempt domain.CommitAttempt) error {
	return &domain.CommitError{
		ExitCode: attempt.ExitCode,
		Output:   strings.Join(attempt.Output, "\n"),
	}
}
