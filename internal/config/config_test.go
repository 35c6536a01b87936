package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.BaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.DefaultPageSize != 10 {
		t.Errorf("DefaultPageSize = %d", cfg.DefaultPageSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://admin.example.com/api/v1")
	t.Setenv("API_HTTP_TIMEOUT", "5s")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")

	cfg := Load()

	if cfg.BaseURL != "https://admin.example.com/api/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.DefaultPageSize != 25 {
		t.Errorf("DefaultPageSize = %d", cfg.DefaultPageSize)
	}
}
