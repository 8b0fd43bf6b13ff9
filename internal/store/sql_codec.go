package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-sync/models"
)

type scanner interface {
	Scan(dest ...any) error
}

func encodeValues(values map[string]string) (string, error) {
	if values == nil {
		values = map[string]string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return string(b), nil
}

func decodeValues(raw string) (map[string]string, error) {
	values := make(map[string]string)
	if raw == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return values, nil
}

func encodeSchema(schema models.Schema) (string, error) {
	b, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return string(b), nil
}

func decodeSchema(raw string) (models.Schema, error) {
	var schema models.Schema
	if raw == "" {
		return schema, nil
	}
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		return models.Schema{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return schema, nil
}

// encodeSyncTag stores the never-synced tag as an empty column.
func encodeSyncTag(tag models.SyncTag) string {
	if tag.IsZero() {
		return ""
	}
	return tag.String()
}

func decodeSyncTag(raw string) (models.SyncTag, error) {
	if raw == "" {
		return models.SyncTag{}, nil
	}
	return models.ParseSyncTag(raw)
}

// scanTable reads one sync_tables row in tableColumns order. A corrupted sync
// tag is reported as models.ErrMalformedSyncTag, not as a store failure.
func scanTable(s scanner) (models.Table, error) {
	var (
		table      models.Table
		state      int
		tag        string
		schemaJSON string
		lastSync   sql.NullTime
	)

	if err := s.Scan(
		&table.TableID,
		&table.DisplayName,
		&state,
		&table.Transactioning,
		&tag,
		&schemaJSON,
		&table.SyncEnabled,
		&lastSync,
	); err != nil {
		return models.Table{}, err
	}

	var err error
	if table.State, err = models.ParseTableState(state); err != nil {
		return models.Table{}, storeErr(ErrScanningRow, err)
	}
	if table.Schema, err = decodeSchema(schemaJSON); err != nil {
		return models.Table{}, storeErr(ErrScanningRow, err)
	}
	if lastSync.Valid {
		t := lastSync.Time
		table.LastSyncTime = &t
	}
	if table.SyncTag, err = decodeSyncTag(tag); err != nil {
		return table, fmt.Errorf("table %s: %w", table.TableID, err)
	}

	return table, nil
}

// scanLocalRow reads one table_rows row in rowColumns order.
func scanLocalRow(s scanner) (models.LocalRow, error) {
	var (
		row        models.LocalRow
		state      int
		valuesJSON string
		updatedAt  time.Time
	)

	if err := s.Scan(
		&row.TableID,
		&row.RowID,
		&row.VersionTag,
		&state,
		&row.Transactioning,
		&valuesJSON,
		&updatedAt,
	); err != nil {
		return models.LocalRow{}, err
	}

	var err error
	if row.State, err = models.ParseSyncState(state); err != nil {
		return models.LocalRow{}, storeErr(ErrScanningRow, err)
	}
	if row.Values, err = decodeValues(valuesJSON); err != nil {
		return models.LocalRow{}, storeErr(ErrScanningRow, err)
	}
	row.UpdatedAt = updatedAt
	row.Deleted = row.State == models.StateDeleting

	return row, nil
}
