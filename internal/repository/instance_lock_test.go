package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceLock(t *testing.T) {
	t.Run("Should acquire a free lock", func(t *testing.T) {
		lock := NewInstanceLock(filepath.Join(t.TempDir(), "guard.lock"))
		ok, err := lock.TryAcquire()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, lock.Release())
	})
	t.Run("Should refuse a lock held elsewhere", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "guard.lock")
		first := NewInstanceLock(path)
		ok, err := first.TryAcquire()
		require.NoError(t, err)
		require.True(t, ok)
		defer first.Release() //nolint:errcheck

		second := NewInstanceLock(path)
		ok, err = second.TryAcquire()
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("Should allow reacquisition after release", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "guard.lock")
		first := NewInstanceLock(path)
		ok, err := first.TryAcquire()
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, first.Release())

		second := NewInstanceLock(path)
		ok, err = second.TryAcquire()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, second.Release())
	})
}
