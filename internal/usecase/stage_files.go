package usecase

import (
	"context"
	"fmt"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/commitscope/commitscope/internal/repository"
)

// StageFilesUseCase resets the index and re-stages exactly the requested
// files. This is the only mutating step before the commit itself.

type StageFilesUseCase struct {
	GitRepo repository.GitEngine
}

// Execute unstages everything, stages the given files, and fails with
// NoChangesError when the resulting staged diff is empty. The reset is
// unconditional so partial staging from an unrelated prior operation
// cannot leak into this commit.
func (uc *StageFilesUseCase) Execute(ctx context.Context, files []string) (domain.StagingResult, error) {
	if err := uc.GitRepo.ResetIndex(ctx); err != nil {
		return domain.StagingResult{}, fmt.Errorf("failed to reset index: %w", err)
	}
	if err := uc.GitRepo.StagePaths(ctx, files); err != nil {
		return domain.StagingResult{}, fmt.Errorf("failed to stage files: %w", err)
	}
	empty, err := uc.GitRepo.StagedDiffEmpty(ctx, files)
	if err != nil {
		return domain.StagingResult{}, fmt.Errorf("failed to inspect staged diff: %w", err)
	}
	if empty {
		return domain.StagingResult{HasChanges: false}, &domain.NoChangesError{Files: files}
	}
	return domain.StagingResult{HasChanges: true}, nil
}
