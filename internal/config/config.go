package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureDefaultSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

// LoadConfig builds a Config from environment variables and, when path is
// non-empty, overlays values from a YAML file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("PROJEXI_ADDR", ":8080"),
		JWTSecret:     getEnv("PROJEXI_JWT_SECRET", insecureDefaultSecret),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("PROJEXI_DATABASE_PATH", "projexi.db"),
		TokenDuration: 24 * time.Hour,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production: the
// default JWT secret is only allowed when PROJEXI_ENV is "development".
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.JWTSecret == insecureDefaultSecret && os.Getenv("PROJEXI_ENV") != "development" {
		return fmt.Errorf("jwt_secret is the insecure default; set PROJEXI_JWT_SECRET")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
