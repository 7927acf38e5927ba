package usecase

import (
	"context"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitEngine
type mockGitEngine struct {
	mock.Mock
}

func (m *mockGitEngine) PathTracked(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitEngine) BlobInHead(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitEngine) ResetIndex(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockGitEngine) StagePaths(ctx context.Context, paths []string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}

func (m *mockGitEngine) StagedDiffEmpty(ctx context.Context, paths []string) (bool, error) {
	args := m.Called(ctx, paths)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitEngine) Commit(ctx context.Context, message string, paths []string) (domain.CommitAttempt, error) {
	args := m.Called(ctx, message, paths)
	return args.Get(0).(domain.CommitAttempt), args.Error(1)
}
