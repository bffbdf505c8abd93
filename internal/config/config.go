// Package config provides configuration types and defaults for brigada.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"brigada/internal/log"
)

// ThemeConfig holds appearance options. Mode is the persisted dark/light
// preference; empty means terminal detection.
type ThemeConfig struct {
	// Mode forces light or dark mode. Valid values: "light", "dark", "".
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens, e.g. "status.error": "#D32F2F".
	Colors map[string]string `mapstructure:"colors"`
}

// APIConfig holds the submission endpoint settings.
type APIConfig struct {
	// Endpoint receives the assembled payload as a JSON POST.
	Endpoint string `mapstructure:"endpoint"`

	// TimeoutSeconds bounds one submission attempt. Default: 15.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ReportConfig holds report export settings.
type ReportConfig struct {
	// OutputDir is where generated PDFs land. Default: current directory.
	OutputDir string `mapstructure:"output_dir"`
}

// ArchiveConfig holds the local submission archive settings.
type ArchiveConfig struct {
	// Path is the SQLite database file.
	// Default: ~/.local/share/brigada/archive.db
	Path string `mapstructure:"path"`
}

// Config holds all configuration options for brigada.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	API     APIConfig     `mapstructure:"api"`
	Report  ReportConfig  `mapstructure:"report"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

// DefaultArchivePath returns the default submission archive location, or
// a relative fallback if the home directory is unavailable.
func DefaultArchivePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".brigada/archive.db"
	}
	return filepath.Join(home, ".local", "share", "brigada", "archive.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{Mode: ""},
		API: APIConfig{
			Endpoint:       "http://localhost:8080/brigadas",
			TimeoutSeconds: 15,
		},
		Report:  ReportConfig{OutputDir: "."},
		Archive: ArchiveConfig{Path: DefaultArchivePath()},
	}
}

// Validate checks the configuration for errors. Empty values fall back to
// defaults and are valid.
func Validate(cfg Config) error {
	switch cfg.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\" or empty, got %q", cfg.Theme.Mode)
	}

	if cfg.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative, got %d", cfg.API.TimeoutSeconds)
	}

	if cfg.API.Endpoint != "" {
		u, err := url.Parse(cfg.API.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api.endpoint must be an absolute URL, got %q", cfg.API.Endpoint)
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Brigada Configuration

# Appearance
theme:
  # Force light or dark mode. Leave empty to detect from the terminal.
  # The in-app theme toggle writes this value back.
  mode: ""
  # Override individual color tokens:
  # colors:
  #   status.error: "#D32F2F"

# Submission endpoint for the assembled needs form
api:
  endpoint: http://localhost:8080/brigadas
  timeout_seconds: 15

# Report export
report:
  output_dir: .   # Generated PDFs land here

# Local history of completed submissions
# archive:
#   path: ~/.local/share/brigada/archive.db
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
