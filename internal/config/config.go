// Package config provides hierarchical configuration management for
// clkpr using koanf. Configuration is loaded with priority: environment
// variables > project config (.clkpr.yml) > user config
// (~/.config/clkpr/config.yml) > defaults. A legacy JSON project config
// (.clkpr.json) is still read, with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	yamlcheck "github.com/ariel-frischer/clkpr/internal/yaml"
)

// Configuration represents the clkpr CLI tool configuration.
type Configuration struct {
	// File is the changelog file operated on. Overridable per
	// invocation with -f/--file or CLKPR_FILE.
	File string `koanf:"file"`

	// Plain disables colored output.
	Plain bool `koanf:"plain"`

	// AutoRef makes 'clkpr release' derive the release link from the
	// git origin remote when no --ref is given.
	AutoRef bool `koanf:"auto_ref"`

	// WatchDebounce is the quiet period 'clkpr watch' waits after a
	// filesystem event before re-checking, as a duration string
	// (e.g. "300ms").
	WatchDebounce string `koanf:"watch_debounce"`
}

// WatchDebounceDuration parses WatchDebounce, falling back to the
// default when unset or unparseable.
func (c *Configuration) WatchDebounceDuration() time.Duration {
	if d, err := time.ParseDuration(c.WatchDebounce); err == nil && d > 0 {
		return d
	}
	return defaultWatchDebounce
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .clkpr.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	return loadYAMLConfig(k, path, "user")
}

// loadYAMLConfig validates and loads a YAML config file. Validating
// first yields a line-numbered error instead of an unmarshal failure.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := yamlcheck.ValidateFile(path); err != nil {
		return fmt.Errorf("validating %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config. YAML is preferred;
// the legacy JSON file is read only when no YAML exists, with a
// deprecation warning pointing at the replacement.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	if fileExists(yamlPath) {
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return err
		}
		if fileExists(legacyPath) && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyPath, yamlPath)
		}
		return nil
	}

	if fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Move the settings to %s to silence this warning.\n\n", yamlPath)
		}
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: CLKPR_AUTO_REF -> auto_ref
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
