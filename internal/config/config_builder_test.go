package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies that earlier sources take precedence and
// later ones only fill fields left empty.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "env-host"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "flag-host", AuthHeader: "flag-auth"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flag-auth", cfg.Adapter.AuthHeader)
}

func TestBuild_NegativeTimeoutRejected(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidTimeout)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: time.Minute}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "env-host"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-host", b.configs[0].Adapter.HTTPAddress)
	assert.NoError(t, b.err)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-nope"}))
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "file:json.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file:json.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_AllSources(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "json-host"
	payload.Storage.DB.DSN = "file:json.db"
	payload.Workers.SyncInterval = Duration(3 * time.Minute)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{"STORAGE_DB_DSN": "file:env.db"})

	cfg, err := loadStructuredConfig([]string{"-c", path, "-s", "flag-host"})
	require.NoError(t, err)

	assert.Equal(t, "file:env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-host", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "file:tables.db"}},
			Workers: ClientWorkers{SyncInterval: time.Minute},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = "file::memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Workers.SyncInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "h", RequestTimeout: time.Second, AuthHeader: "a"},
		Storage: Storage{DB: DB{DSN: "d"}, Files: Files{Dir: "/f"}},
		Workers: Workers{SyncInterval: time.Hour},
		Logging: Logging{File: "l"},
	})

	assert.Equal(t, "h", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "a", cfg.Adapter.AuthHeader)
	assert.Equal(t, "d", cfg.Storage.DB.DSN)
	assert.Equal(t, "/f", cfg.Storage.FilesDir)
	assert.Equal(t, time.Hour, cfg.Workers.SyncInterval)
	assert.Equal(t, "l", cfg.LogFile)
}

func TestServerConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ServerConfig{}).validate(), ErrInvalidServerConfigs)
	assert.NoError(t, (&ServerConfig{Server: Server{HTTPAddress: ":8080", RequestTimeout: time.Second}}).validate())
}
