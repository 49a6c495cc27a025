// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the first existing configuration file across a list
//              of directories, base names and extensions and loads it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/charseq/core/error"
	mdwerrors "github.com/msto63/charseq/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search, in order
	Filenames  []string               // Base filenames without extension
	Extensions []string               // Extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Fail when no file is found
}

// DefaultDiscoveryOptions searches the working directory and
// $HOME/.config/<app> for <app>.toml, <app>.yaml and <app>.yml. The
// environment prefix is the upper-cased app name.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", app))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  strings.ToUpper(app),
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an empty Config carrying the defaults and the
// environment prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if loadErr != nil {
			return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
				Operation("Discover").
				Messagef("found config file %s but failed to load it", configPath).
				Cause(loadErr).
				Code(mdwerror.CodeConfigError).
				Detail("configPath", configPath).
				Build()
		}
		return cfg, nil
	}

	if options.Required {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("Discover").
			Messagef("no configuration file found in paths: %s", strings.Join(ListPossibleConfigFiles(options), ", ")).
			Code(mdwerror.CodeNotFound).
			Detail("searchPaths", ListPossibleConfigFiles(options)).
			Build()
	}

	return New(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}
	return "", mdwerrors.NotFound(mdwerrors.ModuleConfig, "FindConfigFile", "configuration file")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
