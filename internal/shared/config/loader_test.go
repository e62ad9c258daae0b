package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxytester/internal/shared/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "proxytester.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadIni(t *testing.T) {
	path := writeConfigFile(t, `
[campaign]
url = http://example.com/probe
workers = 10
timeout_ms = 2500

[log]
level = debug
`)

	cfg := new(types.Config)
	require.NoError(t, LoadIni(cfg, path))

	assert.Equal(t, "http://example.com/probe", cfg.CampaignConf.URL)
	assert.Equal(t, 10, cfg.CampaignConf.Workers)
	assert.Equal(t, 2500, cfg.CampaignConf.TimeoutMs)
	assert.Equal(t, "debug", cfg.LogConf.Level)
}

func TestLoadIniEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
[campaign]
url = http://example.com/probe
workers = 10
timeout_ms = 2500
`)

	t.Setenv("PROXYTESTER_WORKERS", "32")
	t.Setenv("PROXYTESTER_TIMEOUT_MS", "100")

	cfg := new(types.Config)
	require.NoError(t, LoadIni(cfg, path))

	assert.Equal(t, 32, cfg.CampaignConf.Workers)
	assert.Equal(t, 100, cfg.CampaignConf.TimeoutMs)
}

func TestLoadIniMissingFile(t *testing.T) {
	cfg := new(types.Config)
	err := LoadIni(cfg, filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}
