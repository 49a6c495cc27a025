// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads charseq configuration from TOML or
//              YAML files and the environment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package config loads configuration from TOML or YAML files.
//
// Values are addressed with dot notation ("compare.mode"). When an
// environment prefix is set, an environment variable named after the key
// overrides the file: with prefix "charseq" the key compare.mode is read
// from CHARSEQ_COMPARE_MODE first.
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions("charseq"))
//	if err != nil {
//		return err
//	}
//	s := cfg.Settings()
//
// A charseq.toml looks like this:
//
//	[log]
//	level = "info"
//	format = "console"
//
//	[compare]
//	mode = "current-ignore-case"
//	culture = "de-DE"
package config
