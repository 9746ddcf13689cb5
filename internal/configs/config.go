package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the user configuration, stored as TOML under the user config
// directory. Every field is optional; zero values fall back to the
// built-in defaults at the point of use.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	History  History  `toml:"history"`
}

type Defaults struct {
	// Iterations overrides the built-in PBKDF2 iteration count for new
	// envelopes. Decryption always honors the envelope's own count.
	Iterations int `toml:"iterations"`

	// Words overrides the default word count for generated passphrases.
	Words int `toml:"words"`
}

type History struct {
	// Path overrides the location of the history database file.
	Path string `toml:"path"`
}

// Load reads the user configuration. A missing file yields the zero
// Config, not an error.
func Load() (*Config, error) {
	config := &Config{}

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return config, nil
}

// Save writes the user configuration, creating the config directory if
// needed.
func Save(config *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(config)
}

// ConfigPath returns the location of the config file.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(configDir, "sealbox", "config.toml"), nil
}

// HistoryPath returns the history database location: the configured
// override if set, otherwise the XDG data directory.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "sealbox", "history.db"), nil
}
