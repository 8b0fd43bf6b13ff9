package models

import "time"

// Table is the local metadata of a synchronizable table.
type Table struct {
	TableID        string
	DisplayName    string
	State          TableState
	Transactioning bool
	SyncTag        SyncTag
	Schema         Schema
	SyncEnabled    bool
	LastSyncTime   *time.Time
}
