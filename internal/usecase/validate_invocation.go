package usecase

import (
	"fmt"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/commitscope/commitscope/internal/repository"
	"github.com/spf13/afero"
)

// ValidateInvocationUseCase runs the filesystem-dependent checks on a
// parsed invocation.

type ValidateInvocationUseCase struct {
	Fs repository.FileSystemRepository
}

// Execute rejects a message that names an existing path. A message that
// is also a file almost always means the caller forgot the message
// argument and the file list shifted left by one.
func (uc *ValidateInvocationUseCase) Execute(inv *domain.Invocation) error {
	exists, err := afero.Exists(uc.Fs, inv.Message)
	if err != nil {
		return fmt.Errorf("failed to check message against filesystem: %w", err)
	}
	if exists {
		return &domain.ValidationError{
			Reason: fmt.Sprintf("message %q names an existing path; did you forget the commit message?", inv.Message),
		}
	}
	return nil
}
