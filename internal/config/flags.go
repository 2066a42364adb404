package config

import (
	"flag"

	"github.com/dmitrijs2005/aqikeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   database DSN (SQLite path or postgres:// URL)
//	-l string   log level
//	-f string   log format (text|json)
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
