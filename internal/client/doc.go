// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It wires the local SQLite store, the HTTP adapters, the sync services and
// the background workers into a single process lifecycle, and exposes the
// local editor and on-demand sync to an embedding application.
package client
