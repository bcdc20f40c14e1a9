// Package config provides hierarchical configuration for releasekit using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.releasekit/config.yml) > user config (~/.config/releasekit/config.yml) > defaults.
//
// Configuration only supplies defaults to the commands; each release step still
// receives an explicit parameter struct.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables mapped onto config keys.
const EnvPrefix = "RELEASEKIT_"

// Configuration represents the releasekit CLI configuration
type Configuration struct {
	// ChangelogPath is the changelog edited when --file-path is not given.
	// Can be set via RELEASEKIT_CHANGELOG_PATH.
	ChangelogPath string `koanf:"changelog_path" yaml:"changelog_path" validate:"required"`

	// ManifestPath is the pubspec-style manifest bumped by set-flutter-version.
	ManifestPath string `koanf:"manifest_path" yaml:"manifest_path" validate:"required"`

	// UnversionedTitle is the heading promoted by update-changelog.
	UnversionedTitle string `koanf:"unversioned_title" yaml:"unversioned_title" validate:"required,excludes=##"`

	// PlaceholderEntry is written under the recreated Unversioned heading.
	PlaceholderEntry string `koanf:"placeholder_entry" yaml:"placeholder_entry" validate:"required"`

	// Lenient makes read commands print nothing instead of failing when the
	// requested section is missing or ambiguous.
	Lenient bool `koanf:"lenient" yaml:"lenient"`

	// VcsBackend selects how branches are created: go-git | git-cli
	VcsBackend string `koanf:"vcs_backend" yaml:"vcs_backend" validate:"oneof=go-git git-cli"`

	// GitTimeout bounds branch creation. 0 disables the timeout.
	GitTimeout time.Duration `koanf:"git_timeout" yaml:"git_timeout"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .releasekit/config.yml)
	ProjectConfigPath string
	// SkipUserConfig ignores the user-level config file
	SkipUserConfig bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		userPath, err := UserConfigPath()
		if err == nil {
			if err := loadConfigFile(k, userPath, "user"); err != nil {
				return nil, err
			}
		}
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if err := loadConfigFile(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadConfigFile loads a config file, choosing the parser by extension.
// A missing file is not an error.
func loadConfigFile(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadJSONConfig(k, path, configType)
	}
	return loadYAMLConfig(k, path, configType)
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadJSONConfig loads a JSON config file, e.g. one generated by other tooling
func loadJSONConfig(k *koanf.Koanf, path, configType string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: RELEASEKIT_CHANGELOG_PATH -> changelog_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
