// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8420, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Remote.SaveTimeout)
	assert.Empty(t, cfg.Remote.BaseURL, "remote sync is off unless configured")
	assert.False(t, cfg.Tracing.Enabled)
	assert.NotContains(t, cfg.Database.Database, "~", "sqlite path should be expanded")
}

func TestNewConfig_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  host: db.internal
  database: blogdeck
remote:
  base_url: https://api.example.com
  save_timeout: 5s
server:
  port: 9000
  allowed_origins: "https://a.example,https://b.example"
log:
  level: debug
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Remote.SaveTimeout)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t,
		"host=db.internal port=5432 user= password= dbname=blogdeck sslmode=disable",
		cfg.Database.GetDSN())
}

func TestNewConfig_EnvOverride(t *testing.T) {
	t.Setenv("BLOGDECK_SERVER_PORT", "9100")

	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		errorMsg string
	}{
		{
			name:     "unknown driver",
			body:     "database:\n  driver: oracle\n",
			errorMsg: "unsupported database driver: oracle",
		},
		{
			name:     "bad log level",
			body:     "log:\n  level: chatty\n",
			errorMsg: "invalid log level: chatty",
		},
		{
			name:     "bad port",
			body:     "server:\n  port: 70000\n",
			errorMsg: "invalid server port: 70000",
		},
		{
			name:     "relative remote url",
			body:     "remote:\n  base_url: api.example.com\n",
			errorMsg: "remote.base_url must be an absolute URL",
		},
		{
			name:     "sample ratio out of range",
			body:     "tracing:\n  sample_ratio: 2\n",
			errorMsg: "tracing.sample_ratio must be within [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestGetDSN_SQLiteMemory(t *testing.T) {
	dc := DatabaseConfig{Driver: "sqlite", Database: ":memory:"}
	assert.Equal(t, "file::memory:?cache=shared", dc.GetDSN())
}
