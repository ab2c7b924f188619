// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates a configuration file by searching a list of
//              directories for known base names and extensions.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
)

// DiscoveryOptions defines where to look for configuration files
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Fail when nothing is found
}

// DefaultDiscoveryOptions returns the search locations for tiny.toml / tiny.yaml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "tiny"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"tiny"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "TINY",
	}
}

// FindConfigFile returns the first existing candidate file, or "" when none
// exists and the search is not required.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := candidatePaths(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	if options.Required {
		return "", tinyerror.Newf("no configuration file found in paths: %s", strings.Join(candidates, ", ")).
			WithCode(tinyerror.CodeNotFound).
			WithOperation("config.FindConfigFile").
			WithDetail("searchPaths", candidates)
	}
	return "", nil
}

// Discover finds and loads a configuration file. When nothing is found and
// the search is optional an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Empty().WithEnvPrefix(options.EnvPrefix), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
	if err != nil {
		return nil, tinyerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

func candidatePaths(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	names := options.Filenames
	if len(names) == 0 {
		names = []string{"tiny"}
	}
	exts := options.Extensions
	if len(exts) == 0 {
		exts = []string{".toml", ".yaml", ".yml"}
	}

	result := make([]string, 0, len(paths)*len(names)*len(exts))
	for _, dir := range paths {
		for _, name := range names {
			for _, ext := range exts {
				result = append(result, filepath.Join(dir, name+ext))
			}
		}
	}
	return result
}
