// Package config holds all opsig configuration, loaded through viper from
// OPSIG_* environment variables and an optional config file
// ($HOME/.opsig/config.yaml or ./config.yaml). Command-line flags bound by
// the CLI take precedence over both.
package config

import "github.com/spf13/viper"

// Config holds all opsig configuration.
type Config struct {
	Reference ReferenceConfig
	Engine    EngineConfig
	Output    OutputConfig
	Log       LogConfig
}

// ReferenceConfig points at the external reference sources. Empty paths
// select the built-in default catalog and rules.
type ReferenceConfig struct {
	CatalogPath string
	RulesPath   string
}

// EngineConfig holds resolution engine settings.
type EngineConfig struct {
	Threshold float64 // minimum fuzzy-match similarity
}

// OutputConfig holds output form settings.
type OutputConfig struct {
	Format string // "plain", "table", "json"
	Path   string // destination file; empty = stdout
	Pretty bool   // pretty-print JSON
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// Init wires viper: env prefix, config file locations, and defaults.
// Call once at startup, before Load.
func Init() {
	viper.SetEnvPrefix("OPSIG")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.opsig")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // absent config file is fine

	viper.SetDefault("catalog_path", "")
	viper.SetDefault("rules_path", "")
	viper.SetDefault("threshold", 0.6)
	viper.SetDefault("format", "plain")
	viper.SetDefault("out", "")
	viper.SetDefault("pretty", false)
	viper.SetDefault("log_level", "info")
}

// Load reads the current configuration out of viper.
func Load() Config {
	return Config{
		Reference: ReferenceConfig{
			CatalogPath: viper.GetString("catalog_path"),
			RulesPath:   viper.GetString("rules_path"),
		},
		Engine: EngineConfig{
			Threshold: viper.GetFloat64("threshold"),
		},
		Output: OutputConfig{
			Format: viper.GetString("format"),
			Path:   viper.GetString("out"),
			Pretty: viper.GetBool("pretty"),
		},
		Log: LogConfig{
			Level: viper.GetString("log_level"),
		},
	}
}
