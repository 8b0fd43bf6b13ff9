package models

// Modification is the result of a push batch: the new version tag of every
// row the remote service confirmed, plus the table tag after the batch.
//
// For a failed batch RowTags holds only the rows confirmed before the
// failure, and TableSyncTag must not be persisted.
type Modification struct {
	RowTags      map[string]string `json:"row_tags"`
	TableSyncTag SyncTag           `json:"sync_tag"`
}

// NewModification returns an empty Modification ready to accumulate row tags.
func NewModification() Modification {
	return Modification{RowTags: make(map[string]string)}
}

// IncomingModification is the result of a pull.
type IncomingModification struct {
	Rows          []Row   `json:"rows"`
	TableSyncTag  SyncTag `json:"sync_tag"`
	SchemaChanged bool    `json:"schema_changed"`
	Schema        *Schema `json:"schema,omitempty"`
}

// IncomingChanges is a pulled delta partitioned against the local row
// states. It is applied to the local store in a single transaction.
type IncomingChanges struct {
	Inserts   []Row
	Updates   []Row
	Deletes   []Row
	Conflicts []Row
	Schema    *Schema
}

// IsEmpty reports whether nothing needs to be written locally.
func (c IncomingChanges) IsEmpty() bool {
	return len(c.Inserts) == 0 && len(c.Updates) == 0 && len(c.Deletes) == 0 &&
		len(c.Conflicts) == 0 && c.Schema == nil
}
