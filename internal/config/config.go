// ABOUTME: Configuration for the hrm tool: data location and baseline overrides.
// ABOUTME: JSON config at $XDG_CONFIG_HOME/hrmconnect/config.json.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/vinprj/hrmconnect/internal/models"
	"github.com/vinprj/hrmconnect/internal/storage"
)

// Config stores hrm tool configuration.
type Config struct {
	// DataDir is the root directory for data storage. The SQLite
	// database lives here as hrmconnect.db. Supports ~ expansion.
	// Defaults to ~/.local/share/hrmconnect.
	DataDir string `json:"data_dir,omitempty"`

	// Baseline overrides. Zero values mean "use the population default
	// or the computed personal baseline".
	BaselineRMSSD     float64 `json:"baseline_rmssd,omitempty"`
	BaselineRestingHR float64 `json:"baseline_resting_hr,omitempty"`
	BaselineSDNN      float64 `json:"baseline_sdnn,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// Baseline builds the baseline to score against: start from the given
// computed baseline and apply any explicit overrides on top.
func (c *Config) Baseline(computed models.Baseline) models.Baseline {
	b := computed
	if c.BaselineRMSSD > 0 {
		b.RMSSD = c.BaselineRMSSD
	}
	if c.BaselineRestingHR > 0 {
		b.RestingHR = c.BaselineRestingHR
	}
	if c.BaselineSDNN > 0 {
		b.SDNN = c.BaselineSDNN
	}
	return b
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite repository in the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "hrmconnect.db")
	return storage.Open(dbPath)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hrmconnect", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
