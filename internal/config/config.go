// Package config provides configuration management for PodGrid.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Browse  BrowseConfig  `toml:"browse"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig controls the remote catalog client.
type APIConfig struct {
	BaseURL           string `toml:"base_url"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
}

// BrowseConfig controls the derived-view defaults.
type BrowseConfig struct {
	ItemsPerPage int    `toml:"items_per_page"`
	DebounceMS   int    `toml:"debounce_ms"`
	DefaultSort  string `toml:"default_sort"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeGreenPhosphor ColorScheme = "green_phosphor"
	ColorSchemeAmber         ColorScheme = "amber"
	ColorSchemeWhite         ColorScheme = "white"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// validSorts mirrors the sort orders the browse pipeline understands.
var validSorts = map[string]bool{
	"newest":     true,
	"title-asc":  true,
	"title-desc": true,
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("api: %w", err))
	}

	if err := c.Browse.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("browse: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the API configuration is valid.
func (a *APIConfig) Validate() error {
	var errs []error

	if a.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}

	if a.TimeoutSeconds < 1 {
		errs = append(errs, errors.New("timeout_seconds must be positive"))
	}

	if a.RequestsPerMinute < 1 {
		errs = append(errs, errors.New("requests_per_minute must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the browse configuration is valid.
func (b *BrowseConfig) Validate() error {
	var errs []error

	if b.ItemsPerPage < 1 {
		errs = append(errs, errors.New("items_per_page must be positive"))
	}

	if b.DebounceMS < 0 {
		errs = append(errs, errors.New("debounce_ms must be non-negative"))
	}

	if !validSorts[b.DefaultSort] && b.DefaultSort != "" {
		errs = append(errs, fmt.Errorf("invalid default_sort: %s", b.DefaultSort))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	validSchemes := map[ColorScheme]bool{
		ColorSchemeGreenPhosphor: true,
		ColorSchemeAmber:         true,
		ColorSchemeWhite:         true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		return fmt.Errorf("invalid color_scheme: %s", d.ColorScheme)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "https://podcast-api.netlify.app",
			TimeoutSeconds:    10,
			RequestsPerMinute: 60,
		},
		Browse: BrowseConfig{
			ItemsPerPage: 12,
			DebounceMS:   300,
			DefaultSort:  "newest",
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeGreenPhosphor,
			DateFormat:  "2006-01-02",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/podgrid.log",
		},
	}
}
