package config

import (
	"flag"
	"os"
	"time"

	"github.com/MajhiMohit/fsd-16-project/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   state database path/DSN
//	-l string   log level (debug|info|warn|error)
//	-t int      simulated auth latency in milliseconds
//
// os.Args is filtered through flagx.FilterArgs so the -c/-config flag
// handled by the JSON loader does not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "state database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	latencyMs := fs.Int("t", int(cfg.AuthLatency.Milliseconds()), "simulated auth latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthLatency = time.Duration(*latencyMs) * time.Millisecond
}
