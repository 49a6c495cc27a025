// File: settings.go
// Title: Typed charseq Settings
// Description: Binds the generic configuration tree to the Settings the
//              charseq command reads: log output and the default comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

// Configuration keys understood by charseq
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyCompareMode    = "compare.mode"
	KeyCompareCulture = "compare.culture"
)

// Settings is the typed view of a charseq configuration.
type Settings struct {
	Log     LogSettings     `toml:"log" yaml:"log"`
	Compare CompareSettings `toml:"compare" yaml:"compare"`
}

// LogSettings selects the level and output format of diagnostics.
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// CompareSettings selects the default comparison of the equal command.
// Culture is a BCP 47 tag; empty means the root collation.
type CompareSettings struct {
	Mode    string `toml:"mode" yaml:"mode"`
	Culture string `toml:"culture" yaml:"culture"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Log:     LogSettings{Level: "warn", Format: "text"},
		Compare: CompareSettings{Mode: "ordinal"},
	}
}

// Defaults returns DefaultSettings as a nested map for LoadOptions
func Defaults() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  d.Log.Level,
			"format": d.Log.Format,
		},
		"compare": map[string]interface{}{
			"mode":    d.Compare.Mode,
			"culture": d.Compare.Culture,
		},
	}
}

// Settings reads the typed settings, applying environment overrides
func (c *Config) Settings() Settings {
	d := DefaultSettings()
	return Settings{
		Log: LogSettings{
			Level:  c.GetString(KeyLogLevel, d.Log.Level),
			Format: c.GetString(KeyLogFormat, d.Log.Format),
		},
		Compare: CompareSettings{
			Mode:    c.GetString(KeyCompareMode, d.Compare.Mode),
			Culture: c.GetString(KeyCompareCulture, d.Compare.Culture),
		},
	}
}
