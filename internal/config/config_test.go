package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimit.Capacity)
	assert.Equal(t, 1200, cfg.Analysis.MaxThesisChars)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	content := `
server:
  port: 9090
analysis:
  maxThesisChars: 500
cors:
  allowedOrigins:
    - "https://snap.example.com"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 500, cfg.Analysis.MaxThesisChars)
	assert.Equal(t, []string{"https://snap.example.com"}, cfg.CORS.AllowedOrigins)
	// Untouched sections keep defaults
	assert.Equal(t, 15, cfg.Server.ReadTimeoutSec)
	assert.Equal(t, 30, cfg.RateLimit.Capacity)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
