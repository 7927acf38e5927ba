package orchestrator

import (
	"context"
	"fmt"

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

// Mock for InstanceLock
type mockInstanceLock struct {
	mock.Mock
}

func (m *mockInstanceLock) TryAcquire() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *mockInstanceLock) Release() error {
	args := m.Called()
	return args.Error(0)
}

// recordingNotifier captures notice lines for assertions.
type recordingNotifier struct {
	lines []string
}

func (n *recordingNotifier) Noticef(format string, args ...any) {
	n.lines = append(n.lines, fmt.Sprintf(format, args...))
}

// openGuard is a lock that always succeeds, for tests not about guarding.
func openGuard() *mockInstanceLock {
	guard := new(mockInstanceLock)
	guard.On("TryAcquire").Return(true, nil)
	guard.On("Release").Return(nil)
	return guard
}
