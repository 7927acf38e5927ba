package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "git", cfg.GitBin)
	assert.Equal(t, ".", cfg.RepoDir)
	assert.Equal(t, "HEAD", cfg.HeadRef)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigValidate(t *testing.T) {
	t.Run("Should accept the defaults", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})
	t.Run("Should reject an empty git binary", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GitBin = ""
		assert.ErrorContains(t, cfg.Validate(), "git_bin")
	})
	t.Run("Should accept a relative repo_dir outside the working directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RepoDir = "../sibling"
		assert.NoError(t, cfg.Validate())
	})
	t.Run("Should reject an empty repo_dir", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RepoDir = ""
		assert.ErrorContains(t, cfg.Validate(), "repo_dir")
	})
	t.Run("Should reject an empty head reference", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.HeadRef = ""
		assert.ErrorContains(t, cfg.Validate(), "head_ref")
	})
	t.Run("Should reject an unparseable log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "chatty"
		assert.ErrorContains(t, cfg.Validate(), "log_level")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("Should fall back to defaults without a config file", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("COMMITSCOPE_GIT_BIN", "")
		t.Setenv("COMMITSCOPE_LOG_LEVEL", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "git", cfg.GitBin)
		assert.Equal(t, "warn", cfg.LogLevel)
	})
	t.Run("Should honor environment overrides", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("COMMITSCOPE_GIT_BIN", "/opt/git/bin/git")
		t.Setenv("COMMITSCOPE_LOG_LEVEL", "debug")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "/opt/git/bin/git", cfg.GitBin)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
	t.Run("Should fail validation for a bad environment value", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("COMMITSCOPE_LOG_LEVEL", "chatty")
		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "config validation failed")
	})
	t.Run("Should read settings from a yaml config file", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("COMMITSCOPE_HEAD_REF", "")
		require.NoError(t, os.WriteFile(".commitscope.yaml", []byte("head_ref: main\n"), 0644))
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "main", cfg.HeadRef)
	})
}
