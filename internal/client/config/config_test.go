package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.APIBaseURL, "https://hsreplay.net/api/v1/")
	assert.Equal(t, c.UploadRequestURL, "https://upload.hsreplay.net/api/v1/replay/upload/request")
	assert.Equal(t, c.APIKey, "8b27e53b-0256-4ff1-b134-f531009c05a3")
	assert.Equal(t, c.AppID, "net.mbonnin.arcanetracker")
	assert.Equal(t, c.AppVersion, "1.0")
	assert.Equal(t, c.ClientBuild, 20022)
	assert.Equal(t, c.DatabasePath, "tracker.db")
	assert.Equal(t, c.RequestTimeout, 30*time.Second)
	assert.Equal(t, c.TestData, false)
}

func TestParseJson_OverlaysNonZeroFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	data := `{
		"api_base_url": "https://example.org/api/v1/",
		"client_build": 30000,
		"request_timeout": "5s",
		"test_data": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	oldArgs := os.Args
	os.Args = []string{"tracker", "-c", path}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://example.org/api/v1/", c.APIBaseURL)
	assert.Equal(t, 30000, c.ClientBuild)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.True(t, c.TestData)
	// untouched fields keep their defaults
	assert.Equal(t, "tracker.db", c.DatabasePath)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("HSREPLAY_API_KEY", "env-key")
	t.Setenv("TRACKER_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("TRACKER_TEST_DATA", "true")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "env-key", c.APIKey)
	assert.Equal(t, "/tmp/env.db", c.DatabasePath)
	assert.True(t, c.TestData)
}
