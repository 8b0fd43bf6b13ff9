// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied after every other source has been merged.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the reference table server. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote table service endpoint used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local row store and local file directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeout settings for the reference
	// table server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the periodic sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Logging holds log output settings.
	Logging Logging `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite row store settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the directory table attachments are reconciled into.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path or URI
	// (e.g. "file:tables.db?_foreign_keys=on").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings.
type Files struct {
	// Dir is the root directory; each table gets a subdirectory named after
	// its id. Empty disables file reconciliation on the client.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the remote table service connection settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote table service
	// (e.g. "localhost:8080" or "https://tables.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (connect and read).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthHeader is sent verbatim as the Authorization header.
	// Env: ADAPTER_AUTH_HEADER
	AuthHeader string `env:"AUTH_HEADER"`
}

// Server holds listen settings for the reference table server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FilesDir is the directory served under /api/files/.
	// Env: SERVER_FILES_DIR
	FilesDir string `env:"FILES_DIR"`

	// AuthHeader, when set, is the only Authorization header value the
	// server accepts.
	// Env: SERVER_AUTH_HEADER
	AuthHeader string `env:"AUTH_HEADER"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period between two sync runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Logging holds log output settings.
type Logging struct {
	// File is the client log file path. Empty places the log next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first non-zero value wins in this
// order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Server:  Server{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
	}
}
