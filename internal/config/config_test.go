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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
user = "gym"
password = "pwd"
dbname = "gym_booking"

[auth]
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 7, cfg.Calendar.StartHour)
	assert.Equal(t, 24, cfg.Calendar.EndHour)
	assert.Equal(t, 60, cfg.Auth.TokenTTL)
	assert.Equal(t, "host=db port=5432 user=gym password=pwd dbname=gym_booking sslmode=disable", cfg.Database.DSN())
}

func TestLoad_OverridesSections(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[metrics]
enabled = true
path = "/internal/metrics"

[redis]
enabled = true
addr = "cache:6379"
calendar_ttl = 60

[auth]
jwt_secret = "secret"
token_ttl = 30

[calendar]
timezone = "America/Sao_Paulo"
start_hour = 6
end_hour = 23
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 6, cfg.Calendar.StartHour)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing secret", content: `[server]
http_port = 8080`},
		{name: "inverted calendar hours", content: `[auth]
jwt_secret = "s"
[calendar]
start_hour = 22
end_hour = 7`},
		{name: "unknown timezone", content: `[auth]
jwt_secret = "s"
[calendar]
timezone = "Mars/Olympus"`},
		{name: "rabbit without url", content: `[auth]
jwt_secret = "s"
[rabbitmq]
enabled = true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
