package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "6h"
		},
		"storage": {"db": {"dsn": "postgres://json"}},
		"server": {"http_address": "localhost:7070", "request_timeout": "20s"},
		"adapter": {"http_address": "http://localhost:7070", "request_timeout": "10s"},
		"workers": {"refresh_interval": "2m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 6*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:7070", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var parsed Duration
	require.NoError(t, parsed.UnmarshalJSON(b))
	assert.Equal(t, d, parsed)
}
