package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-table-sync/models"
)

const (
	insertSyncTable = `INSERT INTO sync_tables (
			table_id,
			display_name,
			sync_state,
			transactioning,
			sync_tag,
			schema_json,
			sync_enabled
		) VALUES (?, ?, ?, 0, ?, ?, ?);`

	getSyncTable = `SELECT
			table_id,
			display_name,
			sync_state,
			transactioning,
			sync_tag,
			schema_json,
			sync_enabled,
			last_sync_time
		FROM sync_tables
		WHERE table_id = ?;`

	getTableState   = `SELECT sync_state FROM sync_tables WHERE table_id = ?;`
	getTableSyncTag = `SELECT sync_tag FROM sync_tables WHERE table_id = ?;`
	getTableSchema  = `SELECT schema_json FROM sync_tables WHERE table_id = ?;`

	setTableState          = `UPDATE sync_tables SET sync_state = ? WHERE table_id = ?;`
	setTableTransactioning = `UPDATE sync_tables SET transactioning = ? WHERE table_id = ?;`
	setTableSyncTag        = `UPDATE sync_tables SET sync_tag = ? WHERE table_id = ?;`
	setTableSchema         = `UPDATE sync_tables SET schema_json = ? WHERE table_id = ?;`
	setTableSchemaAndState = `UPDATE sync_tables SET schema_json = ?, sync_state = ? WHERE table_id = ?;`
	setTableSyncEnabled    = `UPDATE sync_tables SET sync_enabled = ? WHERE table_id = ?;`
	setTableLastSyncTime   = `UPDATE sync_tables SET last_sync_time = ? WHERE table_id = ?;`

	deleteSyncTable     = `DELETE FROM sync_tables WHERE table_id = ?;`
	deleteTableRows     = `DELETE FROM table_rows WHERE table_id = ?;`
	deleteTableConflict = `DELETE FROM row_conflicts WHERE table_id = ?;`

	getRowStates = `SELECT row_id, sync_state FROM table_rows WHERE table_id = ?;`

	getRowState = `SELECT sync_state, transactioning FROM table_rows WHERE table_id = ? AND row_id = ?;`

	// pulled rows always land in REST
	insertPulledRow = `INSERT INTO table_rows (
			table_id,
			row_id,
			version_tag,
			sync_state,
			transactioning,
			values_json,
			updated_at
		) VALUES (?, ?, ?, 0, 0, ?, ?)
		ON CONFLICT (table_id, row_id) DO NOTHING;`

	updatePulledRow = `UPDATE table_rows SET
			version_tag = ?,
			values_json = ?,
			updated_at  = ?
		WHERE table_id = ? AND row_id = ? AND sync_state = 0;`

	deletePulledRow = `DELETE FROM table_rows
		WHERE table_id = ? AND row_id = ? AND sync_state = 0;`

	// local_state keeps the intent of the first conflict
	upsertRowConflict = `INSERT INTO row_conflicts (
			table_id,
			row_id,
			version_tag,
			deleted,
			local_state,
			values_json,
			received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (table_id, row_id) DO UPDATE SET
			version_tag = excluded.version_tag,
			deleted     = excluded.deleted,
			values_json = excluded.values_json,
			received_at = excluded.received_at;`

	markRowConflicting = `UPDATE table_rows SET sync_state = 4
		WHERE table_id = ? AND row_id = ?;`

	confirmPushedRow = `UPDATE table_rows SET
			version_tag    = ?,
			sync_state     = 0,
			transactioning = 0
		WHERE table_id = ? AND row_id = ? AND sync_state = ?;`

	insertLocalRow = `INSERT INTO table_rows (
			table_id,
			row_id,
			version_tag,
			sync_state,
			transactioning,
			values_json,
			updated_at
		) VALUES (?, ?, '', 1, 0, ?, ?);`

	updateLocalRow = `UPDATE table_rows SET
			values_json = ?,
			sync_state  = ?,
			updated_at  = ?
		WHERE table_id = ? AND row_id = ?;`

	setLocalRowState = `UPDATE table_rows SET
			sync_state = ?,
			updated_at = ?
		WHERE table_id = ? AND row_id = ?;`

	writeResolvedRow = `UPDATE table_rows SET
			version_tag    = ?,
			values_json    = ?,
			sync_state     = ?,
			transactioning = 0,
			updated_at     = ?
		WHERE table_id = ? AND row_id = ?;`

	deleteRow = `DELETE FROM table_rows WHERE table_id = ? AND row_id = ?;`

	getRowConflict = `SELECT version_tag, deleted, local_state, values_json
		FROM row_conflicts
		WHERE table_id = ? AND row_id = ?;`

	deleteRowConflict = `DELETE FROM row_conflicts WHERE table_id = ? AND row_id = ?;`

	listRowConflicts = `SELECT
			r.table_id,
			r.row_id,
			r.version_tag,
			r.sync_state,
			r.transactioning,
			r.values_json,
			r.updated_at,
			c.version_tag,
			c.deleted,
			c.local_state,
			c.values_json
		FROM row_conflicts c
		JOIN table_rows r ON r.table_id = c.table_id AND r.row_id = c.row_id
		WHERE c.table_id = ?
		ORDER BY c.row_id;`

	resetRowsTransactioning   = `UPDATE table_rows SET transactioning = 0 WHERE transactioning = 1;`
	resetTablesTransactioning = `UPDATE sync_tables SET transactioning = 0 WHERE transactioning = 1;`
)

var (
	statementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	tableColumns = []string{
		"table_id",
		"display_name",
		"sync_state",
		"transactioning",
		"sync_tag",
		"schema_json",
		"sync_enabled",
		"last_sync_time",
	}

	rowColumns = []string{
		"table_id",
		"row_id",
		"version_tag",
		"sync_state",
		"transactioning",
		"values_json",
		"updated_at",
	}
)

// rowFilter narrows a row listing.
type rowFilter struct {
	TableID string
	States  []models.SyncState
	RowIDs  []string
	// SkipTransactioning drops rows that are already part of a push.
	SkipTransactioning bool
}

// buildListTablesQuery lists sync tables ordered by id, optionally only the
// ones with synchronization enabled.
func buildListTablesQuery(onlyEnabled bool) (string, []any, error) {
	qb := statementBuilder.
		Select(tableColumns...).
		From("sync_tables").
		OrderBy("table_id")

	if onlyEnabled {
		qb = qb.Where(sq.Eq{"sync_enabled": true})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectRowsQuery(filter rowFilter) (string, []any, error) {
	qb := statementBuilder.
		Select(rowColumns...).
		From("table_rows").
		Where(sq.Eq{"table_id": filter.TableID}).
		OrderBy("row_id")

	if len(filter.States) > 0 {
		states := make([]int, 0, len(filter.States))
		for _, s := range filter.States {
			states = append(states, int(s))
		}
		qb = qb.Where(sq.Eq{"sync_state": states})
	}

	if len(filter.RowIDs) > 0 {
		qb = qb.Where(sq.Eq{"row_id": filter.RowIDs})
	}

	if filter.SkipTransactioning {
		qb = qb.Where(sq.Eq{"transactioning": false})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSetRowsTransactioningQuery(tableID string, rowIDs []string, transactioning bool) (string, []any, error) {
	query, args, err := statementBuilder.
		Update("table_rows").
		Set("transactioning", transactioning).
		Where(sq.Eq{"table_id": tableID, "row_id": rowIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPurgeQuery deletes the given rows of a table from rows or conflicts.
func buildPurgeQuery(from, tableID string, rowIDs []string) (string, []any, error) {
	query, args, err := statementBuilder.
		Delete(from).
		Where(sq.Eq{"table_id": tableID, "row_id": rowIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
