package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".tasklight"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// GlobalConfig represents the user-level configuration from
// ~/.tasklight/config.toml
type GlobalConfig struct {
	ServerURL string
	Token     string
	LogLevel  string
}

// globalConfigFile represents the raw TOML structure for global config
type globalConfigFile struct {
	Server   serverConfig `toml:"server"`
	LogLevel string       `toml:"log_level"`
}

// serverConfig represents the [server] section in TOML
type serverConfig struct {
	URL   string `toml:"url"`
	Token string `toml:"token"`
}

// LoadGlobalConfig loads the global configuration from
// ~/.tasklight/config.toml. Returns an empty config (not an error) if the
// file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory
// as home. This is useful for testing.
func LoadGlobalConfigFromDir(homeDir string) (*GlobalConfig, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var rawConfig globalConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse global config TOML: %w", err)
	}

	return &GlobalConfig{
		ServerURL: rawConfig.Server.URL,
		Token:     rawConfig.Server.Token,
		LogLevel:  rawConfig.LogLevel,
	}, nil
}
