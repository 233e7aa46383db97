package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mp.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
locales = 4
trust_casts = true
log_level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locales != 4 || !cfg.TrustCasts || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := writeFile(t, `locales = 2`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
	if cfg.TrustCasts {
		t.Fatal("trust_casts defaulted on")
	}
}

func TestLoad_Invalid(t *testing.T) {
	if _, err := Load(writeFile(t, `locales = 0`)); err == nil {
		t.Fatal("expected range error")
	}
	if _, err := Load(writeFile(t, `log_level = "loud"`)); err == nil {
		t.Fatal("expected level error")
	}
	if _, err := Load(writeFile(t, `locales = [1]`)); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestBuildLogger(t *testing.T) {
	cfg := Default()
	logger, err := cfg.BuildLogger()
	if err != nil {
		t.Fatal(err)
	}
	logger.Sync()
}
