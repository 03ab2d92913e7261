package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; it never overrides
// variables already set in the process environment.
//
// Variables:
//
//	GALLERY_DATABASE_DSN   state database path/DSN
//	GALLERY_AUTH_LATENCY   duration string, e.g. "600ms"
//	GALLERY_LOG_LEVEL      debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GALLERY_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("GALLERY_AUTH_LATENCY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AuthLatency = d
		}
	}
	if v := os.Getenv("GALLERY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
