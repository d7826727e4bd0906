package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeServer {
		t.Errorf("Expected default mode to be 'server', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.ServerName != "exam-ingest" {
		t.Errorf("Expected default server name to be 'exam-ingest', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	currentDir, _ := os.Getwd()
	if cfg.ExamDirectory != currentDir {
		t.Errorf("Expected default exam directory to be '%s', got '%s'", currentDir, cfg.ExamDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "stdio mode",
			mutate:  func(c *Config) { c.Mode = ModeStdio },
			wantErr: false,
		},
		{
			name:    "invalid mode",
			mutate:  func(c *Config) { c.Mode = "daemon" },
			wantErr: true,
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "port ignored in stdio mode",
			mutate:  func(c *Config) { c.Mode = ModeStdio; c.Port = 0 },
			wantErr: false,
		},
		{
			name:    "empty exam directory",
			mutate:  func(c *Config) { c.ExamDirectory = "" },
			wantErr: true,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExamDirectory = filepath.Join(t.TempDir(), "exams")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	info, err := os.Stat(cfg.ExamDirectory)
	if err != nil {
		t.Fatalf("Expected exam directory to be created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected exam directory to be a directory")
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 9090}
	if got := cfg.Address(); got != "0.0.0.0:9090" {
		t.Errorf("Expected address '0.0.0.0:9090', got '%s'", got)
	}
}

func TestConfigModeHelpers(t *testing.T) {
	cfg := &Config{Mode: ModeServer}
	if !cfg.IsServerMode() || cfg.IsStdioMode() {
		t.Error("Expected server mode helpers to report server mode")
	}

	cfg.Mode = ModeStdio
	if cfg.IsServerMode() || !cfg.IsStdioMode() {
		t.Error("Expected stdio mode helpers to report stdio mode")
	}
}

func TestConfigIsDebug(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	if !cfg.IsDebug() {
		t.Error("Expected debug level to report debug")
	}

	cfg.LogLevel = "info"
	if cfg.IsDebug() {
		t.Error("Expected info level to not report debug")
	}
}
