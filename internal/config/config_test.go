package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/projexi/projexi/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("PROJEXI_ADDR")
	os.Unsetenv("PROJEXI_JWT_SECRET")
	os.Unsetenv("PROJEXI_DATABASE_PATH")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080 got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "projexi.db" {
		t.Fatalf("expected default database path got %q", cfg.DatabasePath)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Fatalf("expected 24h token duration got %v", cfg.TokenDuration)
	}
}

func TestLoadConfig_YAMLOverridesEnv(t *testing.T) {
	os.Setenv("PROJEXI_ADDR", ":9999")
	defer os.Unsetenv("PROJEXI_ADDR")

	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	yaml := "addr: \":7070\"\njwt_secret: filesecret\n"
	if err := os.WriteFile(p, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(p)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("expected file addr :7070 got %q", cfg.Addr)
	}
	if cfg.JWTSecret != "filesecret" {
		t.Fatalf("expected file jwt secret got %q", cfg.JWTSecret)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := config.LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	os.Setenv("PROJEXI_ENV", "production")
	defer os.Unsetenv("PROJEXI_ENV")

	cfg := &config.Config{
		Addr:          ":8080",
		JWTSecret:     "supersecretkey",
		APITimeout:    5 * time.Second,
		DatabasePath:  "projexi.db",
		TokenDuration: 1 * time.Hour,
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for insecure JWT in non-development env")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	os.Setenv("PROJEXI_ENV", "development")
	defer os.Unsetenv("PROJEXI_ENV")

	cfg := &config.Config{
		Addr:          ":8080",
		JWTSecret:     "supersecretkey",
		APITimeout:    5 * time.Second,
		DatabasePath:  "projexi.db",
		TokenDuration: 1 * time.Hour,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to pass in development env: %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := &config.Config{JWTSecret: "strong", TokenDuration: time.Hour}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for missing addr")
	}
}
