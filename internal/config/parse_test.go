package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/reader-launcher/internal/config"
)

var configExamplePath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	configExamplePath = filepath.Join(filepath.Dir(currentFile), "..", "..", "configs", "config.example.toml")
}

func TestParseAndValidate(t *testing.T) {
	cfg, err := config.ParseAndValidate(configExamplePath)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.Browser.Delay)
	assert.Equal(t, 8000, cfg.Server.StartPort)
}

func TestParseAndValidate_NoFile(t *testing.T) {
	cfg, err := config.ParseAndValidate("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseAndValidate_MissingFile(t *testing.T) {
	_, err := config.ParseAndValidate(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestParseAndValidate_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
start_port = 9100
root = "/srv/reader"
`)

	cfg, err := config.ParseAndValidate(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.StartPort)
	assert.Equal(t, "/srv/reader", cfg.Server.Root)
	assert.Equal(t, config.DefaultPortAttempts, cfg.Server.PortAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseAndValidate_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[server]
start_port = 9100
access_log = "silent"
`)
	t.Setenv("READER_SERVER_START_PORT", "9200")
	t.Setenv("READER_SERVER_ACCESS_LOG", "verbose")
	t.Setenv("READER_BROWSER_ENABLED", "false")
	t.Setenv("READER_BROWSER_DELAY", "250ms")

	cfg, err := config.ParseAndValidate(path)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.StartPort)
	assert.Equal(t, "verbose", cfg.Server.AccessLog)
	assert.False(t, cfg.Browser.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Browser.Delay)
}

func TestParseAndValidate_Invalid(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{
			name: "public host",
			toml: "[server]\nhost = \"0.0.0.0\"",
		},
		{
			name: "zero attempts",
			toml: "[server]\nport_attempts = 0",
		},
		{
			name: "range overflow",
			toml: "[server]\nstart_port = 65530\nport_attempts = 30",
		},
		{
			name: "unknown access log mode",
			toml: "[server]\naccess_log = \"loud\"",
		},
		{
			name: "unknown level",
			toml: "[log]\nlevel = \"trace\"",
		},
		{
			name: "too long browser delay",
			toml: "[browser]\ndelay = \"5m\"",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseAndValidate(writeConfig(t, tt.toml))
			assert.Error(t, err)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
