// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML/YAML loading, defaults, environment
//              overrides, discovery and the typed charseq settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/charseq/core/error"
)

const tomlContent = `
[log]
level = "info"

[compare]
mode = "ordinal-ignore-case"
culture = "de-DE"
retries = 3
strict = true
`

const yamlContent = `
log:
  level: debug
  format: json
compare:
  mode: invariant
  retries: 2
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "charseq.toml", tomlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if got := cfg.GetString("compare.mode"); got != "ordinal-ignore-case" {
			t.Errorf("compare.mode = %q", got)
		}
		if got := cfg.GetInt("compare.retries"); got != 3 {
			t.Errorf("compare.retries = %d, want 3", got)
		}
		if !cfg.GetBool("compare.strict") {
			t.Error("compare.strict should be true")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "charseq.yml", yamlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetString("log.format"); got != "json" {
			t.Errorf("log.format = %q", got)
		}
		if got := cfg.GetInt("compare.retries"); got != 2 {
			t.Errorf("compare.retries = %d, want 2", got)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load("")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("empty path error = %v", err)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error = %v", err)
	}

	_, err = Load(writeFile(t, dir, "broken.toml", "[log\nlevel ="))
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("broken file error = %v", err)
	}
}

func TestGettersWithDefaults(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("log.format", "text"); got != "text" {
		t.Errorf("missing string default = %q", got)
	}
	if got := cfg.GetInt("log.missing", 7); got != 7 {
		t.Errorf("missing int default = %d", got)
	}
	if got := cfg.GetBool("log.missing", true); !got {
		t.Error("missing bool default should be true")
	}
	if cfg.Has("log.format") || !cfg.Has("log.level") {
		t.Error("Has() reports wrong presence")
	}
	// a scalar in the middle of a path is not a table
	if cfg.Has("log.level.deeper") {
		t.Error("Has() walked through a scalar")
	}
}

func TestDefaultsMergeNestedTables(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatAuto, LoadOptions{Defaults: Defaults()})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString(KeyLogLevel); got != "info" {
		t.Errorf("file value lost: log.level = %q", got)
	}
	if got := cfg.GetString(KeyLogFormat); got != "text" {
		t.Errorf("default lost: log.format = %q", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("CHARSEQ_COMPARE_MODE", "current")
	t.Setenv("CHARSEQ_COMPARE_RETRIES", "9")

	cfg, err := LoadFromString(tomlContent, FormatTOML, LoadOptions{EnvPrefix: "charseq"})
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetString(KeyCompareMode); got != "current" {
		t.Errorf("compare.mode = %q, want env override", got)
	}
	if got := cfg.GetInt("compare.retries"); got != 9 {
		t.Errorf("compare.retries = %d, want 9", got)
	}

	unprefixed, _ := LoadFromString(tomlContent, FormatTOML, LoadOptions{})
	if got := unprefixed.GetString(KeyCompareMode); got != "ordinal-ignore-case" {
		t.Errorf("without prefix the environment must be ignored, got %q", got)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"compare.mode":    "CHARSEQ_COMPARE_MODE",
		"log.level":       "CHARSEQ_LOG_LEVEL",
		"compare.culture": "CHARSEQ_COMPARE_CULTURE",
	}
	for key, want := range tests {
		if got := EnvKey("charseq", key); got != want {
			t.Errorf("EnvKey(%q) = %q, want %q", key, got, want)
		}
	}
	if got := EnvKey("", "a.b-c"); got != "A_B_C" {
		t.Errorf("EnvKey without prefix = %q", got)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := New("", nil)
	cfg.Set("compare.mode", "invariant")

	if got := cfg.GetString("compare.mode"); got != "invariant" {
		t.Errorf("compare.mode = %q", got)
	}

	all := cfg.GetAll()
	all["compare"].(map[string]interface{})["mode"] = "changed"
	if got := cfg.GetString("compare.mode"); got != "invariant" {
		t.Error("GetAll() must return a copy")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	options := DiscoveryOptions{
		Paths:     []string{other, dir},
		Filenames: []string{"charseq"},
		Defaults:  Defaults(),
	}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() without files error = %v", err)
	}
	if cfg.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
	}
	if got := cfg.Settings(); got != DefaultSettings() {
		t.Errorf("Settings() = %+v, want defaults", got)
	}

	path := writeFile(t, dir, "charseq.yaml", yamlContent)
	cfg, err = Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}

	options.Required = true
	options.Paths = []string{other}
	_, err = Discover(options)
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("required discovery error = %v", err)
	}
}

func TestDiscoverBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charseq.toml", "= nope")

	_, err := Discover(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"charseq"}})
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("Discover() error = %v, want CONFIG_ERROR", err)
	}
}

func TestSettings(t *testing.T) {
	cfg, err := LoadFromString(yamlContent, FormatYAML, LoadOptions{Defaults: Defaults()})
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{
		Log:     LogSettings{Level: "debug", Format: "json"},
		Compare: CompareSettings{Mode: "invariant"},
	}
	if got := cfg.Settings(); got != want {
		t.Errorf("Settings() = %+v, want %+v", got, want)
	}
}

func TestEncode(t *testing.T) {
	s := Settings{
		Log:     LogSettings{Level: "info", Format: "text"},
		Compare: CompareSettings{Mode: "current", Culture: "de-DE"},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, s, FormatTOML); err != nil {
		t.Fatal(err)
	}
	back, err := LoadFromString(buf.String(), FormatTOML, LoadOptions{})
	if err != nil {
		t.Fatalf("encoded TOML does not load: %v\n%s", err, buf.String())
	}
	if back.Settings() != s {
		t.Errorf("TOML settings = %+v, want %+v", back.Settings(), s)
	}

	buf.Reset()
	if err := Encode(&buf, s, FormatYAML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "culture: de-DE") {
		t.Errorf("YAML output = %q", buf.String())
	}

	if err := Encode(&buf, s, Format(9)); !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"toml": FormatTOML, "YML": FormatYAML, "yaml": FormatYAML, "": FormatAuto} {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseFormat("ini"); err == nil {
		t.Error("ParseFormat(ini) should fail")
	}
}
