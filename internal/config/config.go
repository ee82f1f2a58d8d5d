// Package config reads the optional user dotfile that seeds renderer
// defaults before command-line flags are applied.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexhallam/tv"
)

// AppName is the application name used for the config directory.
const AppName = "tv"

// Config mirrors the dotfile keys. Every field is a pointer so a key the
// user never set stays nil and does not clobber a default or a flag.
type Config struct {
	Sigfig             *int    `yaml:"sigfig,omitempty"`
	LowerColumnWidth   *int    `yaml:"lower_column_width,omitempty"`
	UpperColumnWidth   *int    `yaml:"upper_column_width,omitempty"`
	MaxRows            *int    `yaml:"number,omitempty"`
	MaxDecimalWidth    *int    `yaml:"max_decimal_width,omitempty"`
	Extend             *bool   `yaml:"extend_width_length,omitempty"`
	PreserveScientific *bool   `yaml:"preserve_scientific,omitempty"`
	NoDimensions       *bool   `yaml:"no_dimensions,omitempty"`
	NoRowNumbering     *bool   `yaml:"no_row_numbering,omitempty"`
	ShowTypes          *bool   `yaml:"show_types,omitempty"`
	Theme              *string `yaml:"theme,omitempty"`
	Delimiter          *string `yaml:"delimiter,omitempty"`
	Title              *string `yaml:"title,omitempty"`
	Footer             *string `yaml:"footer,omitempty"`
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ReadConfig reads the config file from the default location.
func ReadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load loads config from the given path. A missing file is not an error;
// it yields an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Apply copies every set dotfile key onto a renderer config.
func (c *Config) Apply(rc *tv.Config) {
	if c.Sigfig != nil {
		rc.Sigfig = *c.Sigfig
	}
	if c.LowerColumnWidth != nil {
		rc.LowerWidth = *c.LowerColumnWidth
	}
	if c.UpperColumnWidth != nil {
		rc.UpperWidth = *c.UpperColumnWidth
	}
	if c.MaxRows != nil {
		rc.MaxRows = *c.MaxRows
	}
	if c.MaxDecimalWidth != nil {
		rc.MaxDecimalWidth = *c.MaxDecimalWidth
	}
	if c.Extend != nil {
		rc.Extend = *c.Extend
	}
	if c.PreserveScientific != nil {
		rc.PreserveScientific = *c.PreserveScientific
	}
	if c.NoDimensions != nil {
		rc.NoDimensions = *c.NoDimensions
	}
	if c.NoRowNumbering != nil {
		rc.NoRowNumbering = *c.NoRowNumbering
	}
	if c.ShowTypes != nil {
		rc.ShowTypes = *c.ShowTypes
	}
	if c.Title != nil {
		rc.Title = *c.Title
	}
	if c.Footer != nil {
		rc.Footer = *c.Footer
	}
}

// Save saves config to the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
