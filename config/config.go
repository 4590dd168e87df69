// Package config reads process configuration from an optional YAML file
// overlaid by the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`
	Env         string `yaml:"env"`
}

// Load reads configuration with defaults fit for local development. When
// CONFIG_PATH names a YAML file its values form the base; environment
// variables override it either way.
func Load() (Config, error) {
	cfg := Config{Port: "8080", Env: "dev"}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	overlayEnv(&cfg.Port, "PORT")
	overlayEnv(&cfg.DatabaseURL, "DATABASE_URL")
	overlayEnv(&cfg.JWTSecret, "JWT_SECRET")
	overlayEnv(&cfg.Env, "ENV")

	if cfg.Env == "production" {
		if cfg.DatabaseURL == "" {
			log.Printf("DATABASE_URL is required in production")
		}
		if cfg.JWTSecret == "" {
			log.Printf("JWT_SECRET is required in production")
		}
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret"
	}
	return cfg, nil
}

func overlayEnv(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}
