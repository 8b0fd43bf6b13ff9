package models

import "time"

// Row is a single table row as exchanged with the remote table service.
//
// VersionTag is the per-row optimistic-concurrency token. It changes on every
// successful remote insert or update and is sent back on the next update or
// delete so the service can detect lost updates. It is independent of the
// table [SyncTag].
type Row struct {
	RowID      string            `json:"row_id"`
	VersionTag string            `json:"version_tag,omitempty"`
	Deleted    bool              `json:"deleted,omitempty"`
	Values     map[string]string `json:"values,omitempty"`
}

// LocalRow is a [Row] as stored on the device, together with its sync
// metadata.
type LocalRow struct {
	Row
	TableID        string
	State          SyncState
	Transactioning bool
	UpdatedAt      time.Time
}

// RowStates maps row id to the local sync state of that row.
type RowStates map[string]SyncState

// Clone returns a deep copy of the row values.
func (r Row) Clone() Row {
	out := r
	if r.Values != nil {
		out.Values = make(map[string]string, len(r.Values))
		for k, v := range r.Values {
			out.Values[k] = v
		}
	}
	return out
}

// RowIDs returns the ids of rows in input order.
func RowIDs[T interface{ ID() string }](rows []T) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID())
	}
	return ids
}

// ID returns the row id.
func (r Row) ID() string { return r.RowID }
