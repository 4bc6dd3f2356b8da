package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeParse {
		t.Errorf("Expected default mode to be 'parse', got '%s'", cfg.Mode)
	}

	if cfg.DocType != DocTypeReceipt {
		t.Errorf("Expected default document type to be 'receipt', got '%s'", cfg.DocType)
	}

	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Expected default max file size to be 20MB, got %d", cfg.MaxFileSize)
	}

	if cfg.MinTextLength != DefaultMinTextLength {
		t.Errorf("Expected default min text length to be %d, got %d", DefaultMinTextLength, cfg.MinTextLength)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "docingest" {
		t.Errorf("Expected default server name to be 'docingest', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tests := []struct {
		name        string
		modify      func(cfg *Config)
		expectError bool
		errContains string
	}{
		{
			name:        "valid defaults",
			modify:      func(cfg *Config) {},
			expectError: false,
		},
		{
			name:        "valid serve mode",
			modify:      func(cfg *Config) { cfg.Mode = ModeServe },
			expectError: false,
		},
		{
			name:        "valid delivery type",
			modify:      func(cfg *Config) { cfg.DocType = DocTypeDelivery },
			expectError: false,
		},
		{
			name:        "valid explicit temp dir",
			modify:      func(cfg *Config) { cfg.TempDir = tempDir },
			expectError: false,
		},
		{
			name:        "invalid mode",
			modify:      func(cfg *Config) { cfg.Mode = "daemon" },
			expectError: true,
			errContains: "mode",
		},
		{
			name:        "invalid document type",
			modify:      func(cfg *Config) { cfg.DocType = "invoice" },
			expectError: true,
			errContains: "type",
		},
		{
			name:        "zero max file size",
			modify:      func(cfg *Config) { cfg.MaxFileSize = 0 },
			expectError: true,
			errContains: "file size",
		},
		{
			name:        "negative min text length",
			modify:      func(cfg *Config) { cfg.MinTextLength = -1 },
			expectError: true,
			errContains: "text length",
		},
		{
			name:        "nonexistent temp dir",
			modify:      func(cfg *Config) { cfg.TempDir = filepath.Join(tempDir, "missing") },
			expectError: true,
			errContains: "temp directory",
		},
		{
			name:        "invalid log level",
			modify:      func(cfg *Config) { cfg.LogLevel = "verbose" },
			expectError: true,
			errContains: "log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not mention %q", err.Error(), tt.errContains)
				}
			} else if err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfigTempDirIsFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	filePath := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cfg := DefaultConfig()
	cfg.TempDir = filePath
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for temp dir pointing at a file")
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.IsServeMode() {
		t.Error("default config should not be in serve mode")
	}
	if cfg.IsDebug() {
		t.Error("default config should not be in debug mode")
	}

	cfg.Mode = ModeServe
	cfg.LogLevel = "debug"
	if !cfg.IsServeMode() {
		t.Error("expected serve mode")
	}
	if !cfg.IsDebug() {
		t.Error("expected debug mode")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()

	for _, want := range []string{ModeParse, DocTypeReceipt, "info"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
