package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/commitscope/commitscope/internal/config"
	"github.com/commitscope/commitscope/internal/logging"
	"github.com/commitscope/commitscope/internal/orchestrator"
	"github.com/commitscope/commitscope/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for a commit run.

type container struct {
	cfg     *config.Config
	log     *zap.Logger
	repoDir string

	fsRepo  repository.FileSystemRepository
	gitRepo repository.GitEngine
	guard   repository.InstanceLock
}

// newContainer creates a new container with all the dependencies. It is
// built lazily inside the commit command so subcommands that need no
// repository (version) still work outside one.
func newContainer(verbose bool) (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := logging.NewLogger(level)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("run_id", uuid.NewString()))

	repoDir, err := filepath.Abs(cfg.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repo_dir %q: %w", cfg.RepoDir, err)
	}
	// Root the filesystem at the repository so path checks and lock
	// removal resolve against the same base the git engine runs in.
	fsRepo := repository.FileSystemRepository(afero.NewBasePathFs(afero.NewOsFs(), repoDir))
	gitRepo, err := repository.NewGitEngine(repoDir, cfg.GitBin, cfg.HeadRef)
	if err != nil {
		return nil, err
	}
	guard := repository.NewInstanceLock(
		filepath.Join(repoDir, ".git", orchestrator.InstanceLockName))

	return &container{
		cfg:     cfg,
		log:     log,
		repoDir: repoDir,
		fsRepo:  fsRepo,
		gitRepo: gitRepo,
		guard:   guard,
	}, nil
}

func (c *container) newOrchestrator(notifier orchestrator.Notifier) *orchestrator.CommitOrchestrator {
	return orchestrator.NewCommitOrchestrator(c.gitRepo, c.fsRepo, c.guard, notifier, c.repoDir, c.log)
}
