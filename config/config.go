// Package config loads and saves the classifier's TOML configuration,
// following the same DefaultConfig/Load/LoadFrom/Save/SaveTo shape and
// per-OS path resolution the rest of this corpus uses for its config
// layer, repointed at the ISA classifier's own settings groups.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/19h/isa-classifier-sub000/isa"
)

// Config is the on-disk configuration for isaclass: the CLI, the API
// service, and the batch-scan tool.
type Config struct {
	// Classifier settings mirror isa.ClassifierOptions.
	Classifier struct {
		MinConfidence    float64 `toml:"min_confidence"`
		MaxScanBytes     int     `toml:"max_scan_bytes"`
		DeepScan         bool    `toml:"deep_scan"`
		DetectExtensions bool    `toml:"detect_extensions"`
		FastMode         bool    `toml:"fast_mode"`
	} `toml:"classifier"`

	// Service settings for the HTTP/WebSocket API.
	Service struct {
		Port           int    `toml:"port"`
		CORSLocalOnly  bool   `toml:"cors_local_only"`
		DefaultWindow  int    `toml:"default_window"`
	} `toml:"service"`

	// CLI settings.
	CLI struct {
		OutputFormat string `toml:"output_format"` // json, table
		DefaultTop   int    `toml:"default_top"`
	} `toml:"cli"`

	// Scan settings for the batch directory scanner.
	Scan struct {
		ReportFormat  string `toml:"report_format"` // text, json
		WindowSize    int    `toml:"window_size"`
		FollowSymlink bool   `toml:"follow_symlinks"`
	} `toml:"scan"`
}

// DefaultConfig returns a configuration with default values, matching
// isa.DefaultOptions() for the classifier group.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Classifier.MinConfidence = 0.15
	cfg.Classifier.MaxScanBytes = 64 * 1024
	cfg.Classifier.DeepScan = false
	cfg.Classifier.DetectExtensions = false
	cfg.Classifier.FastMode = false

	cfg.Service.Port = 8080
	cfg.Service.CORSLocalOnly = true
	cfg.Service.DefaultWindow = 4096

	cfg.CLI.OutputFormat = "table"
	cfg.CLI.DefaultTop = 5

	cfg.Scan.ReportFormat = "text"
	cfg.Scan.WindowSize = 4096
	cfg.Scan.FollowSymlink = false

	return cfg
}

// ToClassifierOptions converts the [classifier] group into the
// isa.ClassifierOptions value every entry point (CLI, API, batch scan)
// threads into Analyze/DetectMultiISA/ScoreAll.
func (c *Config) ToClassifierOptions() isa.ClassifierOptions {
	return isa.ClassifierOptions{
		MinConfidence:    c.Classifier.MinConfidence,
		MaxScanBytes:     c.Classifier.MaxScanBytes,
		DeepScan:         c.Classifier.DeepScan,
		DetectExtensions: c.Classifier.DetectExtensions,
		FastMode:         c.Classifier.FastMode,
	}
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "isaclass")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "isaclass")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "isaclass", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "isaclass", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error — it yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
