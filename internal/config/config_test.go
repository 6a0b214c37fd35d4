package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if !cfg.SanitizeEnabled() {
		t.Error("Default() sanitize disabled, want enabled")
	}
	if cfg.ClassPrefix == "" {
		t.Error("Default() class prefix empty")
	}
	if cfg.Style == "" {
		t.Error("Default() style empty")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `prefer:
  - text/markdown
  - text/plain
baseUrl: https://example.com/nb/
sanitize: false
standalone: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Prefer) != 2 || cfg.Prefer[0] != "text/markdown" {
		t.Errorf("Load() prefer = %v", cfg.Prefer)
	}
	if cfg.BaseURL != "https://example.com/nb/" {
		t.Errorf("Load() baseUrl = %q", cfg.BaseURL)
	}
	if cfg.SanitizeEnabled() {
		t.Error("Load() sanitize enabled, want disabled")
	}
	if !cfg.Standalone {
		t.Error("Load() standalone = false, want true")
	}
	// Unset fields keep defaults.
	if cfg.ClassPrefix != Default().ClassPrefix {
		t.Errorf("Load() classPrefix = %q, want default", cfg.ClassPrefix)
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("clasPrefix: typo-\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("Load() error = %v, want ErrConfigParse", err)
	}
}
