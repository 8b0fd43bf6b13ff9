// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "tables.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_AUTH_HEADER":     "Bearer token",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_FILES_DIR":       "/srv/files",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DSN":    "file:tables.db",
		"STORAGE_FILES_DIR": "/var/tables",

		"WORKERS_SYNC_INTERVAL": "2m",
		"LOG_FILE":              "/tmp/sync.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "tables.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "Bearer token", cfg.Adapter.AuthHeader)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/files", cfg.Server.FilesDir)

	assert.Equal(t, "file:tables.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/tables", cfg.Storage.Files.Dir)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "/tmp/sync.log", cfg.Logging.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "file:tables.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "file:tables.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Files.Dir)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_SYNC_INTERVAL": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnvFrom_IgnoresProcessEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DSN": "file:process.db"})

	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, map[string]string{
		"ADAPTER_ADDRESS":    "tables.example.com",
		"SERVER_AUTH_HEADER": "Bearer s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "tables.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "Bearer s3cret", cfg.Server.AuthHeader)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",
	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
	"ADAPTER_AUTH_HEADER",
	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_FILES_DIR",
	"STORAGE_DB_DSN",
	"STORAGE_FILES_DIR",
	"WORKERS_SYNC_INTERVAL",
	"LOG_FILE",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every known key; t.Setenv restores the original values
// once the test finishes.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
