package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Classifier.MinConfidence != 0.15 {
		t.Errorf("Expected MinConfidence=0.15, got %v", cfg.Classifier.MinConfidence)
	}
	if cfg.Classifier.MaxScanBytes != 64*1024 {
		t.Errorf("Expected MaxScanBytes=65536, got %d", cfg.Classifier.MaxScanBytes)
	}
	if cfg.Classifier.DeepScan {
		t.Error("Expected DeepScan=false")
	}

	if cfg.Service.Port != 8080 {
		t.Errorf("Expected Port=8080, got %d", cfg.Service.Port)
	}
	if !cfg.Service.CORSLocalOnly {
		t.Error("Expected CORSLocalOnly=true")
	}

	if cfg.CLI.OutputFormat != "table" {
		t.Errorf("Expected OutputFormat=table, got %s", cfg.CLI.OutputFormat)
	}

	if cfg.Scan.WindowSize != 4096 {
		t.Errorf("Expected WindowSize=4096, got %d", cfg.Scan.WindowSize)
	}
}

func TestToClassifierOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Classifier.MinConfidence = 0.3
	opts := cfg.ToClassifierOptions()
	if opts.MinConfidence != 0.3 {
		t.Errorf("Expected MinConfidence=0.3, got %v", opts.MinConfidence)
	}
	if opts.MaxScanBytes != cfg.Classifier.MaxScanBytes {
		t.Errorf("MaxScanBytes mismatch")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "isaclass" && path != "config.toml" {
			t.Errorf("Expected path in isaclass directory or fallback, got %s", path)
		}
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()
	if path == "" {
		t.Error("GetLogPath returned empty string")
	}
	if runtime.GOOS == "darwin" || runtime.GOOS == "linux" {
		if filepath.Base(path) != "logs" {
			t.Errorf("Expected path to end with logs, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Classifier.MinConfidence = 0.4
	cfg.Classifier.DetectExtensions = true
	cfg.Service.Port = 9090
	cfg.CLI.OutputFormat = "json"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Classifier.MinConfidence != 0.4 {
		t.Errorf("Expected MinConfidence=0.4, got %v", loaded.Classifier.MinConfidence)
	}
	if !loaded.Classifier.DetectExtensions {
		t.Error("Expected DetectExtensions=true")
	}
	if loaded.Service.Port != 9090 {
		t.Errorf("Expected Port=9090, got %d", loaded.Service.Port)
	}
	if loaded.CLI.OutputFormat != "json" {
		t.Errorf("Expected OutputFormat=json, got %s", loaded.CLI.OutputFormat)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}
	if cfg.Classifier.MinConfidence != 0.15 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[classifier]
max_scan_bytes = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
