package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/denidash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the dashboard API
//	-s string   path of the local session database
//	-t int      request timeout in seconds, 0 disables it
//	-l string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the dashboard API")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only counts when given; the whole-second default would truncate a
	// sub-second timeout from JSON or the environment.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
