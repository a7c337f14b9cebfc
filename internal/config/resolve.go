package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// ServerURLEnvKey overrides the configured server URL
	ServerURLEnvKey = "TASKLIGHT_URL"

	// TokenEnvKey overrides the configured API token
	TokenEnvKey = "TASKLIGHT_TOKEN"

	// LogLevelEnvKey overrides the configured log level
	LogLevelEnvKey = "TASKLIGHT_LOG_LEVEL"

	// DefaultLogLevel is used when no level is configured anywhere
	DefaultLogLevel = "warn"
)

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Command-line flags
// 2. Environment (TASKLIGHT_URL, TASKLIGHT_TOKEN, TASKLIGHT_LOG_LEVEL)
// 3. Global config (~/.tasklight/config.toml)
type ResolvedConfig struct {
	ServerURL string
	Token     string
	LogLevel  string
}

// Overrides carries flag-level values into the resolve step. Empty fields
// fall through to the next layer.
type Overrides struct {
	ServerURL string
	Token     string
	LogLevel  string
}

// ResolveConfig loads the global config and merges it with the environment
// and the given flag overrides. The server URL is required; everything
// else is optional.
func ResolveConfig(overrides Overrides) (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return ResolveConfigWithHome(homeDir, overrides)
}

// ResolveConfigWithHome resolves config using a specified home directory.
// This is useful for testing.
func ResolveConfigWithHome(homeDir string, overrides Overrides) (*ResolvedConfig, error) {
	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		ServerURL: globalCfg.ServerURL,
		Token:     globalCfg.Token,
		LogLevel:  globalCfg.LogLevel,
	}

	if v := strings.TrimSpace(os.Getenv(ServerURLEnvKey)); v != "" {
		resolved.ServerURL = v
	}
	if v := strings.TrimSpace(os.Getenv(TokenEnvKey)); v != "" {
		resolved.Token = v
	}
	if v := strings.TrimSpace(os.Getenv(LogLevelEnvKey)); v != "" {
		resolved.LogLevel = v
	}

	if overrides.ServerURL != "" {
		resolved.ServerURL = overrides.ServerURL
	}
	if overrides.Token != "" {
		resolved.Token = overrides.Token
	}
	if overrides.LogLevel != "" {
		resolved.LogLevel = overrides.LogLevel
	}

	if resolved.LogLevel == "" {
		resolved.LogLevel = DefaultLogLevel
	}

	if resolved.ServerURL == "" {
		return nil, fmt.Errorf("no server URL configured: set %s, pass --url, or add it to ~/%s/%s",
			ServerURLEnvKey, GlobalConfigDir, GlobalConfigFileName)
	}

	return resolved, nil
}
