// Package config loads and validates novelpub configuration files.
// Configs are YAML, decoded strictly so a typoed key fails loudly
// instead of silently doing nothing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrInvalidPreset   = errors.New("invalid preset")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidStyle    = errors.New("invalid style name")
)

// MaxConfigSize caps config files at 1 MiB.
const MaxConfigSize = 1 << 20

// Preset names accepted by clean.preset.
const (
	PresetBasic   = "basic"
	PresetClean   = "clean"
	PresetPublish = "publish"
	PresetSmart   = "smart"
	PresetCustom  = "custom"
)

// Output format names accepted by output.format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Config holds all configuration for parsing, cleaning, and output.
type Config struct {
	Clean  CleanConfig  `yaml:"clean"`
	Parse  ParseConfig  `yaml:"parse"`
	Output OutputConfig `yaml:"output"`
	Backup BackupConfig `yaml:"backup"`
}

// CleanConfig selects the cleaning preset, or individual rules when the
// preset is "custom".
type CleanConfig struct {
	Preset  string      `yaml:"preset"`
	Options RuleOptions `yaml:"options"`
}

// RuleOptions mirrors the cleaning flags. Consulted only when
// clean.preset is "custom".
type RuleOptions struct {
	StripWhitespace     bool `yaml:"stripWhitespace"`
	StripHTML           bool `yaml:"stripHtml"`
	StripMarkdown       bool `yaml:"stripMarkdown"`
	StripPunctuation    bool `yaml:"stripPunctuation"`
	StripURLs           bool `yaml:"stripUrls"`
	StripEmoji          bool `yaml:"stripEmoji"`
	Normalize           bool `yaml:"normalize"`
	StripEmail          bool `yaml:"stripEmail"`
	StripChapterNumbers bool `yaml:"stripChapterNumbers"`
}

// ParseConfig tunes document segmentation.
type ParseConfig struct {
	FallbackTitle string `yaml:"fallbackTitle"` // empty = built-in placeholder
}

// OutputConfig selects the output rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml, text
	Style  string `yaml:"style"`  // HTML export stylesheet name
}

// BackupConfig controls pre-write backups for in-place edits.
type BackupConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty = alongside the input file
}

// DefaultConfig returns the configuration used when no file is given:
// smart cleaning, JSON output, backups on.
func DefaultConfig() *Config {
	return &Config{
		Clean: CleanConfig{
			Preset: PresetSmart,
			Options: RuleOptions{
				StripWhitespace: true,
				StripHTML:       true,
				StripURLs:       true,
				StripEmoji:      true,
				Normalize:       true,
			},
		},
		Parse:  ParseConfig{FallbackTitle: ""},
		Output: OutputConfig{Format: FormatJSON, Style: "novel"},
		Backup: BackupConfig{Enabled: true, Dir: ""},
	}
}

// Validate checks enum fields. Style names are validated for shape only;
// existence is the asset loader's call, since custom style directories
// can add names.
func (c *Config) Validate() error {
	switch c.Clean.Preset {
	case "", PresetBasic, PresetClean, PresetPublish, PresetSmart, PresetCustom:
	default:
		return fmt.Errorf("%w: %q (must be basic, clean, publish, smart, or custom)", ErrInvalidPreset, c.Clean.Preset)
	}

	switch c.Output.Format {
	case "", FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("%w: %q (must be json, yaml, or text)", ErrInvalidFormat, c.Output.Format)
	}

	if strings.ContainsAny(c.Output.Style, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, c.Output.Style)
	}

	return nil
}

// LoadConfig loads configuration from a file path or a bare config name.
// A string containing a path separator is treated as a path; otherwise
// the name is searched in standard locations. Missing files are an
// error, never a silent fallback to defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, `/\`) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Extensions tried in order: .yaml, .yml.
// Locations tried in order: current directory, ~/.config/novelpub/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "novelpub", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
