package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/recipeadmin/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-d", "-l", "-f"}

// parseFlags populates cfg from the flags it knows; everything else on the
// command line is left for the console.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("recipeadmin", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the recipe API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.StateDB, "d", cfg.StateDB, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
