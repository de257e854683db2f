package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
	assert.Equal(t, "votes.db", c.LedgerPath)
	assert.Equal(t, "download", c.DownloadDir)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, 10*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("CONFIG", "")

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url": "http://json.example",
		"ledger_path":  "/tmp/json.db",
		"log_level":    "warn",
	})
	os.Args = []string{"cli", "-c", path, "-a", "http://flag.example", "-t", "5"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://flag.example", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/json.db", cfg.LedgerPath)
	assert.Equal(t, "download", cfg.DownloadDir)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}
