// Package config provides application configuration management for later.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the later configuration.
type Config struct {
	RegistryPath string  `json:"registry_path,omitempty"` // Override for the registry file location
	ProcessName  string  `json:"process_name"`            // Command name to look for during discovery
	CPUThreshold float64 `json:"cpu_threshold"`           // Minimum CPU% for a discovered process
	TailLines    int     `json:"tail_lines"`              // Transcript tail window for context extraction
}

// Dir returns the path to the .later directory.
// Uses the LATER_HOME environment variable if set, otherwise ~/.later.
func Dir() (string, error) {
	if dir := os.Getenv("LATER_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".later"), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load loads the configuration from ~/.later/config.json.
func Load() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		cfg := Default()
		// Persist the initial config to disk
		if saveErr := Save(cfg); saveErr != nil {
			return cfg, nil // return defaults even if save fails
		}
		return cfg, nil
	} else if err != nil {
		return Config{}, err
	}

	// Start from defaults so missing keys get correct values
	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}

	if config.ProcessName == "" {
		config.ProcessName = "claude"
	}
	if config.CPUThreshold <= 0 {
		config.CPUThreshold = 1.0
	}
	if config.TailLines <= 0 {
		config.TailLines = 80
	}

	return config, nil
}

// Default returns a default configuration with all defaults set.
func Default() Config {
	return Config{
		ProcessName:  "claude",
		CPUThreshold: 1.0,
		TailLines:    80,
	}
}

// Save saves the configuration to ~/.later/config.json.
func Save(config Config) error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// RegistryFilePath resolves the registry file location: the configured
// override when set, otherwise registry.json in the later directory.
func (c Config) RegistryFilePath() (string, error) {
	if c.RegistryPath != "" {
		return c.RegistryPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "registry.json"), nil
}
