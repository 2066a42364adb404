// Package config handles configuration for aqikeeper, including defaults,
// JSON overlay, and command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: SQLite file path, or a postgres:// URL for a shared server.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: "text" or "json".
type Config struct {
	DatabaseDSN string
	LogLevel    string
	LogFormat   string
}

// LoadDefaults populates Config with local defaults. users.db matches the
// file name used by earlier releases of the dashboard.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "users.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
// args are the program arguments without the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
