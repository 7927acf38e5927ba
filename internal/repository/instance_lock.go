package repository

import (
	"fmt"

	"github.com/gofrs/flock"
)

// InstanceLock serializes concurrent runs of this tool against the same
// repository. Acquisition never waits: the run proceeds immediately or
// fails.
type InstanceLock interface {
	TryAcquire() (bool, error)
	Release() error
}

type flockInstanceLock struct {
	fl *flock.Flock
}

// NewInstanceLock creates an advisory lock backed by the given file.
func NewInstanceLock(path string) InstanceLock {
	return &flockInstanceLock{fl: flock.New(path)}
}

func (l *flockInstanceLock) TryAcquire() (bool, error) {
	locked, err := l.fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire instance lock: %w", err)
	}
	return locked, nil
}

func (l *flockInstanceLock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("failed to release instance lock: %w", err)
	}
	return nil
}
