package models

// Request and response bodies of the remote table service HTTP API.

// CreateTableRequest is the body of PUT /api/tables/{tableId}.
type CreateTableRequest struct {
	Schema Schema `json:"schema"`
}

// SyncTagResponse carries the table sync tag after a table-level call.
type SyncTagResponse struct {
	SyncTag SyncTag `json:"sync_tag"`
}

// ChangesResponse is the body of GET /api/tables/{tableId}/changes.
type ChangesResponse struct {
	Rows          []Row   `json:"rows"`
	SyncTag       SyncTag `json:"sync_tag"`
	SchemaChanged bool    `json:"schema_changed"`
	Schema        *Schema `json:"schema,omitempty"`
}

// PutRowRequest is the body of PUT /api/tables/{tableId}/rows/{rowId}. An
// empty VersionTag inserts the row.
type PutRowRequest struct {
	VersionTag string            `json:"version_tag"`
	Values     map[string]string `json:"values"`
}

// RowWriteResponse is returned by row PUT and DELETE calls. SyncTag is the
// table tag the client may persist: the new one when the client's base tag
// was current, the client's base tag otherwise.
type RowWriteResponse struct {
	RowID      string  `json:"row_id"`
	VersionTag string  `json:"version_tag,omitempty"`
	SyncTag    SyncTag `json:"sync_tag"`
}

// SetSchemaRequest is the body of PUT /api/tables/{tableId}/schema.
type SetSchemaRequest struct {
	SchemaETag string `json:"schema_etag"`
	Schema     Schema `json:"schema"`
}

// SchemaResponse is the body of GET /api/tables/{tableId}/schema.
type SchemaResponse struct {
	Schema  Schema  `json:"schema"`
	SyncTag SyncTag `json:"sync_tag"`
}

// RemoteTable is one entry of GET /api/tables.
type RemoteTable struct {
	TableID string  `json:"table_id"`
	SyncTag SyncTag `json:"sync_tag"`
}
