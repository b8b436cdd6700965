package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "8080" {
		t.Errorf("APIPort = %q, want 8080", cfg.APIPort)
	}
	if cfg.NATSSubject != "cv.uploaded" {
		t.Errorf("NATSSubject = %q", cfg.NATSSubject)
	}
	if cfg.APIMaxUploadMB != 16 {
		t.Errorf("APIMaxUploadMB = %d, want 16", cfg.APIMaxUploadMB)
	}
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api_port: \"9999\"\nlog_level: debug\nanalysis_reference_year: 2024\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "9999" {
		t.Errorf("APIPort = %q, want yaml value 9999", cfg.APIPort)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, env should win over yaml", cfg.LogLevel)
	}
	if cfg.AnalysisReferenceYear != 2024 {
		t.Errorf("AnalysisReferenceYear = %d, want 2024", cfg.AnalysisReferenceYear)
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api_port: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIRateLimitRPS != 20 {
		t.Errorf("APIRateLimitRPS = %d, want default 20", cfg.APIRateLimitRPS)
	}
}
