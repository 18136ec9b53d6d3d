// Package config loads and validates mdpage YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdpage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits to reject obviously broken configs early.
const (
	MaxThemeLength    = 50   // chroma style name
	MaxDirLength      = 1024 // input/output directory path
	MaxLanguageLength = 50   // fence tag or lexer name
	MaxFilenameLength = 255  // display filename
)

// Config holds all configuration for page rendering.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Render    RenderConfig    `yaml:"render"`
	Languages LanguagesConfig `yaml:"languages"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Outline    bool   `yaml:"outline"`    // Write a .json heading outline next to each page
}

// RenderConfig defines renderer options.
type RenderConfig struct {
	Theme       string `yaml:"theme"`       // chroma style name (default: "github")
	HardWraps   bool   `yaml:"hardWraps"`   // Treat newlines as <br>
	FrontMatter *bool  `yaml:"frontMatter"` // Parse leading YAML block (default: true)
}

// LanguagesConfig extends the built-in code block language tables.
type LanguagesConfig struct {
	Aliases   map[string]string `yaml:"aliases"`   // fence tag -> lexer name
	Filenames map[string]string `yaml:"filenames"` // lexer name -> display filename
}

// FrontMatterEnabled resolves the tri-state frontMatter field.
func (r *RenderConfig) FrontMatterEnabled() bool {
	return r.FrontMatter == nil || *r.FrontMatter
}

// Validate checks field lengths and language table entries.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.theme", c.Render.Theme, MaxThemeLength); err != nil {
		return err
	}

	for tag, lexer := range c.Languages.Aliases {
		if err := validateFieldLength(fmt.Sprintf("languages.aliases[%q]", tag), tag, MaxLanguageLength); err != nil {
			return err
		}
		if lexer == "" {
			return fmt.Errorf("languages.aliases[%q]: lexer name cannot be empty", tag)
		}
		if err := validateFieldLength(fmt.Sprintf("languages.aliases[%q]", tag), lexer, MaxLanguageLength); err != nil {
			return err
		}
	}

	for lang, name := range c.Languages.Filenames {
		if err := validateFieldLength(fmt.Sprintf("languages.filenames[%q]", lang), lang, MaxLanguageLength); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("languages.filenames[%q]: filename cannot be empty", lang)
		}
		if err := validateFieldLength(fmt.Sprintf("languages.filenames[%q]", lang), name, MaxFilenameLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdpage/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdpage", name+ext)
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
