package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"port": 8080,
		"database_url": "postgres://localhost/wellspring",
		"chat_model": "gemini-2.0-flash",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/wellspring", cfg.DatabaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.ChatModel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ExtraBooks: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000}
	defaults := Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/wellspring",
		APIKey:      "default-key",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port, "explicit value wins")
	assert.Equal(t, "postgres://localhost/wellspring", merged.DatabaseURL)
	assert.Equal(t, "default-key", merged.APIKey)
}
