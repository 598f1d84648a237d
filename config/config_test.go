package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
database:
  host: localhost
  user: fuder
  password: secret
  dbname: fuder_chat
  port: "5432"
  sslmode: disable
gemini:
  api_key: test-key
redis:
  host: localhost
  port: "6379"
server:
  port: 8080
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "test-key", GlobalConfig.Gemini.APIKey)
	assert.Equal(t, 8080, GlobalConfig.Server.Port)

	// Model falls back to the default when omitted.
	assert.Equal(t, "gemini-2.5-flash-lite", GlobalConfig.Gemini.Model)

	assert.Equal(t,
		"host=localhost user=fuder password=secret dbname=fuder_chat port=5432 sslmode=disable",
		GlobalConfig.DSN(),
	)
	assert.Equal(t, "localhost:6379", GlobalConfig.RedisAddr())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [not a map"), 0o644))

	err := LoadConfig(path)
	assert.Error(t, err)
}
