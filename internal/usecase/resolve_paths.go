package usecase

import (
	"context"
	"fmt"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/commitscope/commitscope/internal/repository"
	"github.com/spf13/afero"
)

// ResolvePathsUseCase decides, per requested path, which source of truth
// knows it: the working tree, the index, or the last commit.

type ResolvePathsUseCase struct {
	Fs      repository.FileSystemRepository
	GitRepo repository.GitEngine
}

// Execute resolves every path, failing fast on the first one unknown to
// all three sources. No staging happens before every path has resolved.
func (uc *ResolvePathsUseCase) Execute(ctx context.Context, files []string) ([]domain.PathResolution, error) {
	resolutions := make([]domain.PathResolution, 0, len(files))
	for _, path := range files {
		existsIn, err := uc.resolve(ctx, path)
		if err != nil {
			return nil, err
		}
		if existsIn == domain.ExistsNowhere {
			return nil, &domain.NotFoundError{Path: path}
		}
		resolutions = append(resolutions, domain.PathResolution{Path: path, ExistsIn: existsIn})
	}
	return resolutions, nil
}

// resolve checks the three sources cheapest-first: a filesystem stat
// before anything that touches the engine.
func (uc *ResolvePathsUseCase) resolve(ctx context.Context, path string) (domain.Existence, error) {
	onDisk, err := afero.Exists(uc.Fs, path)
	if err != nil {
		return domain.ExistsNowhere, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if onDisk {
		return domain.ExistsWorkingTree, nil
	}
	tracked, err := uc.GitRepo.PathTracked(ctx, path)
	if err != nil {
		return domain.ExistsNowhere, fmt.Errorf("failed to check index for %s: %w", path, err)
	}
	if tracked {
		return domain.ExistsIndex, nil
	}
	inHead, err := uc.GitRepo.BlobInHead(ctx, path)
	if err != nil {
		return domain.ExistsNowhere, fmt.Errorf("failed to check last commit for %s: %w", path, err)
	}
	if inHead {
		return domain.ExistsLastCommit, nil
	}
	return domain.ExistsNowhere, nil
}
