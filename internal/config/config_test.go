package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "gallery.db", cfg.DatabaseDSN)
	assert.Equal(t, 600*time.Millisecond, cfg.AuthLatency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("GALLERY_DATABASE_DSN", "/tmp/alt.db")
	t.Setenv("GALLERY_AUTH_LATENCY", "250ms")
	t.Setenv("GALLERY_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/alt.db", cfg.DatabaseDSN)
	assert.Equal(t, 250*time.Millisecond, cfg.AuthLatency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_BadDurationIgnored(t *testing.T) {
	t.Setenv("GALLERY_AUTH_LATENCY", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 600*time.Millisecond, cfg.AuthLatency)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "no flags keeps defaults",
			args: []string{"testbin"},
			want: Config{DatabaseDSN: "gallery.db", AuthLatency: 600 * time.Millisecond, LogLevel: "info"},
		},
		{
			name: "all flags set",
			args: []string{"testbin", "-d", "/tmp/g.db", "-l", "warn", "-t", "50"},
			want: Config{DatabaseDSN: "/tmp/g.db", AuthLatency: 50 * time.Millisecond, LogLevel: "warn"},
		},
		{
			name: "config flag for the json loader is ignored here",
			args: []string{"testbin", "-c", "conf.json", "-l", "error"},
			want: Config{DatabaseDSN: "gallery.db", AuthLatency: 600 * time.Millisecond, LogLevel: "error"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()
			parseFlags(cfg)

			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	data := `{"database_dsn": "/tmp/json.db", "auth_latency": "1s"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/tmp/json.db", cfg.DatabaseDSN)
	assert.Equal(t, time.Second, cfg.AuthLatency)
	assert.Equal(t, "info", cfg.LogLevel, "fields absent from the file keep their values")
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "gallery.db", cfg.DatabaseDSN)
}
