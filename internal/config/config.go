// Package config loads runtime settings for the gallery application.
// Sources are applied in order — defaults, environment (including an
// optional .env file), JSON file, command-line flags — with later sources
// taking precedence.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local state database.
//   - AuthLatency: simulated delay before login/registration completes.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	DatabaseDSN string
	AuthLatency time.Duration
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "gallery.db"
	c.AuthLatency = 600 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
