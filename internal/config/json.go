package config

import (
	"encoding/json"
	"os"

	"github.com/MajhiMohit/fsd-16-project/internal/flagx"
	"github.com/MajhiMohit/fsd-16-project/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the
// file write the latency either as "600ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN string         `json:"database_dsn"`
	AuthLatency timex.Duration `json:"auth_latency"`
	LogLevel    string         `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag means no JSON is loaded. Only fields present in
// the file override the current values. Read or parse errors panic; the
// config is load-bearing and a broken file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AuthLatency.Duration != 0 {
		cfg.AuthLatency = jc.AuthLatency.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
