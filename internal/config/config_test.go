package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	envVars := []string{
		"TRANSCRIPTS_PATH", "QDRANT_VECTOR_SIZE",
		"LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL",
		"EMBEDDING_BASE_URL", "EMBEDDING_MODEL_NAME",
		"DB_PATH", "QDRANT_URL", "QDRANT_COLLECTION", "API_PORT",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name: "valid config with all required fields",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "1024")
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.QdrantVectorSize == 1024 &&
					cfg.QdrantCollection == "transcripts" &&
					cfg.APIPort == "9000" &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text"
			},
		},
		{
			name: "missing TRANSCRIPTS_PATH",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "1024")
			},
			wantErr: true,
		},
		{
			name: "missing QDRANT_VECTOR_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
			},
			wantErr: true,
		},
		{
			name: "non-numeric QDRANT_VECTOR_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "big")
			},
			wantErr: true,
		},
		{
			name: "zero QDRANT_VECTOR_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "0")
			},
			wantErr: true,
		},
		{
			name: "debug log level",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "1024")
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
				setEnv("LOG_LEVEL", "debug")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.LogLevel == slog.LevelDebug
			},
		},
		{
			name: "invalid log level",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "1024")
				setEnv("LOG_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "json log format",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "1024")
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
				setEnv("LOG_FORMAT", "json")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.LogFormat == "json"
			},
		},
		{
			name: "invalid log format",
			setupEnv: func(t *testing.T) {
				setEnv("TRANSCRIPTS_PATH", t.TempDir())
				setEnv("QDRANT_VECTOR_SIZE", "1024")
				setEnv("LOG_FORMAT", "yaml")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envVars {
				unsetEnv(key)
			}
			tt.setupEnv(t)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config check failed: %+v", cfg)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"INFO", slog.LevelInfo, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLogLevel(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLogLevel(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
