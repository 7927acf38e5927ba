package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	GitBin   string `mapstructure:"git_bin"`
	RepoDir  string `mapstructure:"repo_dir"`
	HeadRef  string `mapstructure:"head_ref"`
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GitBin:   "git",
		RepoDir:  ".",
		HeadRef:  "HEAD",
		LogLevel: "warn",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitBin == "" {
		return fmt.Errorf("git_bin cannot be empty")
	}
	if c.RepoDir == "" {
		return fmt.Errorf("repo_dir cannot be empty")
	}
	if c.HeadRef == "" {
		return fmt.Errorf("head_ref cannot be empty")
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".commitscope")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("COMMITSCOPE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	if err := viper.BindEnv("git_bin", "COMMITSCOPE_GIT_BIN"); err != nil {
		return nil, fmt.Errorf("failed to bind git_bin env: %w", err)
	}
	if err := viper.BindEnv("repo_dir", "COMMITSCOPE_REPO_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind repo_dir env: %w", err)
	}
	if err := viper.BindEnv("head_ref", "COMMITSCOPE_HEAD_REF"); err != nil {
		return nil, fmt.Errorf("failed to bind head_ref env: %w", err)
	}
	if err := viper.BindEnv("log_level", "COMMITSCOPE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log_level env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("git_bin", defaults.GitBin)
	viper.SetDefault("repo_dir", defaults.RepoDir)
	viper.SetDefault("head_ref", defaults.HeadRef)
	viper.SetDefault("log_level", defaults.LogLevel)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
