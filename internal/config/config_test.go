package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Empty(t, cfg.Theme.Mode)
	assert.Equal(t, "http://localhost:8080/brigadas", cfg.API.Endpoint)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Equal(t, ".", cfg.Report.OutputDir)
	assert.NotEmpty(t, cfg.Archive.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "light mode", mutate: func(c *Config) { c.Theme.Mode = "light" }},
		{name: "dark mode", mutate: func(c *Config) { c.Theme.Mode = "dark" }},
		{name: "bad mode", mutate: func(c *Config) { c.Theme.Mode = "solarized" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.API.TimeoutSeconds = -1 }, wantErr: true},
		{name: "empty endpoint allowed", mutate: func(c *Config) { c.API.Endpoint = "" }},
		{name: "relative endpoint", mutate: func(c *Config) { c.API.Endpoint = "/brigadas" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfigTemplate_IsValidYAML(t *testing.T) {
	var parsed map[string]any

	err := yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed)

	require.NoError(t, err)
	assert.Contains(t, parsed, "theme")
	assert.Contains(t, parsed, "api")
	assert.Contains(t, parsed, "report")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestSaveThemeMode_UpdatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveThemeMode(path, "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", themeMode(t, data))
	assert.Contains(t, string(data), "# Brigada Configuration", "comments survive the edit")
	assert.Contains(t, string(data), "timeout_seconds: 15", "unrelated sections survive")
}

func TestSaveThemeMode_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveThemeMode(path, "light"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "light", themeMode(t, data))
}

func themeMode(t *testing.T, data []byte) string {
	t.Helper()
	var parsed struct {
		Theme struct {
			Mode string `yaml:"mode"`
		} `yaml:"theme"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	return parsed.Theme.Mode
}

func TestSaveThemeMode_PreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("custom: kept\n"), 0o600))

	require.NoError(t, SaveThemeMode(path, "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "custom: kept")
	assert.Equal(t, "dark", themeMode(t, data))
}
