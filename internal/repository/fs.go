package repository

import "github.com/spf13/afero"

// FileSystemRepository is the filesystem surface the validation and
// lock-recovery paths read and mutate. Tests inject an in-memory
// implementation; production wires the OS filesystem.
type FileSystemRepository interface {
	afero.Fs
}
