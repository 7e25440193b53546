package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ccdata/internal/endpoint"
)

var allVars = []string{
	"CCDATA_API_KEY",
	"CCDATA_MIN_API_BASE_URL",
	"CCDATA_DATA_API_BASE_URL",
	"CCDATA_TIMEOUT",
}

func clearEnv() {
	for _, key := range allVars {
		os.Unsetenv(key)
	}
}

// missingEnvFile points Load at a .env file that does not exist so a stray
// .env in the working directory cannot leak into a test.
func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Success(t *testing.T) {
	clearEnv()
	envVars := map[string]string{
		"CCDATA_API_KEY":           "test_key",
		"CCDATA_MIN_API_BASE_URL":  "https://test.min-api.local",
		"CCDATA_DATA_API_BASE_URL": "https://test.data-api.local",
		"CCDATA_TIMEOUT":           "5s",
	}

	for key, value := range envVars {
		os.Setenv(key, value)
		defer os.Unsetenv(key)
	}

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"APIKey", cfg.APIKey, "test_key"},
		{"MinAPIBaseURL", cfg.MinAPIBaseURL, "https://test.min-api.local"},
		{"DataAPIBaseURL", cfg.DataAPIBaseURL, "https://test.data-api.local"},
		{"Timeout", cfg.Timeout.String(), "5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv()
	os.Setenv("CCDATA_API_KEY", "test_key")
	defer os.Unsetenv("CCDATA_API_KEY")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.MinAPIBaseURL != endpoint.DefaultMinAPIBaseURL {
		t.Errorf("MinAPIBaseURL = %q, want %q", cfg.MinAPIBaseURL, endpoint.DefaultMinAPIBaseURL)
	}
	if cfg.DataAPIBaseURL != endpoint.DefaultDataAPIBaseURL {
		t.Errorf("DataAPIBaseURL = %q, want %q", cfg.DataAPIBaseURL, endpoint.DefaultDataAPIBaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if got := cfg.BaseURLs(); got != endpoint.DefaultBaseURLs() {
		t.Errorf("BaseURLs() = %+v, want defaults", got)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv()

	_, err := Load(missingEnvFile(t))
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "CCDATA_API_KEY") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "CCDATA_API_KEY")
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv()
	defer clearEnv()

	path := filepath.Join(t.TempDir(), ".env")
	content := "CCDATA_API_KEY=from_dotenv\nCCDATA_TIMEOUT=12s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.APIKey != "from_dotenv" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "from_dotenv")
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Timeout = %s, want 12s", cfg.Timeout)
	}
}

func TestLoad_EnvOverridesEnvFile(t *testing.T) {
	clearEnv()
	defer clearEnv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CCDATA_API_KEY=from_dotenv\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	os.Setenv("CCDATA_API_KEY", "from_env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.APIKey != "from_env" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "from_env")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv()
	defer clearEnv()
	os.Setenv("CCDATA_API_KEY", "test_key")
	os.Setenv("CCDATA_TIMEOUT", "-1s")

	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Error("Load() expected error for negative timeout, got nil")
	}
}
