package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	// DrawCount is how many cards a stock draw turns over, 1 or 3
	DrawCount int `toml:"draw_count"`

	// Color controls colored output for non-interactive commands:
	// "auto", "always" or "never"
	Color string `toml:"color"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		DrawCount: 1,
		Color:     "auto",
	}
}

// Validate checks the configuration values for sanity
func (c *Config) Validate() error {
	if c.DrawCount != 1 && c.DrawCount != 3 {
		return fmt.Errorf("draw_count must be 1 or 3, got %d", c.DrawCount)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "patience", "config.toml")
}

// LoadConfig loads the config file, creating a default one if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	_, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %v", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}
