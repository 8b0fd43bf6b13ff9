package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

// localEditor applies user edits to the local store. Every edit is a single
// transaction that checks the current state before moving it.
type localEditor struct {
	*DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewLocalEditor constructs a [LocalEditor]. New row ids are drawn from ids.
func NewLocalEditor(db *DB, ids utils.IDGenerator, logger *logger.Logger) LocalEditor {
	return &localEditor{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateLocalTable registers a new table in INSERTING state with a zero sync
// tag. Synchronization is enabled for it.
func (e *localEditor) CreateLocalTable(ctx context.Context, table models.Table) error {
	return e.registerTable(ctx, "localEditor.CreateLocalTable", table, models.TableInserting)
}

// AdoptRemoteTable registers a table that already exists remotely. It starts
// at REST with a zero sync tag, so the next pass pulls a full snapshot.
func (e *localEditor) AdoptRemoteTable(ctx context.Context, table models.Table) error {
	return e.registerTable(ctx, "localEditor.AdoptRemoteTable", table, models.TableRest)
}

func (e *localEditor) registerTable(ctx context.Context, fn string, table models.Table, state models.TableState) error {
	log := logger.FromContext(ctx)

	if table.TableID == "" {
		return fmt.Errorf("%w: empty table id", models.ErrInvalidSchema)
	}
	if err := table.Schema.Validate(); err != nil {
		return err
	}

	schemaJSON, err := encodeSchema(table.Schema)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	_, err = e.DB.ExecContext(ctx, insertSyncTable,
		table.TableID,
		table.DisplayName,
		int(state),
		"",
		schemaJSON,
		true,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrTableAlreadyExists, table.TableID)
	}
	if err != nil {
		log.Err(err).Str("func", fn).Str("table_id", table.TableID).Msg("failed to insert sync table")
		return storeErr(ErrExecutingStatement, err)
	}

	log.Info().Str("func", fn).Str("table_id", table.TableID).Str("state", state.String()).Msg("local table registered")
	return nil
}

// UpdateLocalSchema replaces the table schema. A synced table moves to
// UPDATING so the next pass pushes the schema; a table that was never created
// remotely stays INSERTING.
func (e *localEditor) UpdateLocalSchema(ctx context.Context, tableID string, schema models.Schema) error {
	log := logger.FromContext(ctx)

	if err := schema.Validate(); err != nil {
		return err
	}

	schemaJSON, err := encodeSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	err = e.inTx(ctx, func(tx *sql.Tx) error {
		table, err := lockTable(ctx, tx, tableID)
		if err != nil {
			return err
		}

		next := table.State
		switch table.State {
		case models.TableRest, models.TableUpdating:
			next = models.TableUpdating
		case models.TableDeleting:
			return fmt.Errorf("%w: table %s is being deleted", ErrInvalidTransition, tableID)
		}

		return execTableUpdate(ctx, tx, "localEditor.UpdateLocalSchema", tableID, setTableSchemaAndState, schemaJSON, int(next), tableID)
	})
	if err != nil {
		log.Err(err).Str("func", "localEditor.UpdateLocalSchema").Str("table_id", tableID).Msg("failed to update local schema")
		return err
	}

	return nil
}

// MarkTableForDeletion moves a table to DELETING. A table that never reached
// the remote service is purged right away.
func (e *localEditor) MarkTableForDeletion(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	err := e.inTx(ctx, func(tx *sql.Tx) error {
		table, err := lockTable(ctx, tx, tableID)
		if err != nil {
			return err
		}

		if table.State == models.TableInserting && table.SyncTag.IsZero() {
			for _, stmt := range []string{deleteTableConflict, deleteTableRows, deleteSyncTable} {
				if _, err = tx.ExecContext(ctx, stmt, tableID); err != nil {
					return storeErr(ErrExecutingStatement, err)
				}
			}
			return nil
		}

		return execTableUpdate(ctx, tx, "localEditor.MarkTableForDeletion", tableID, setTableState, int(models.TableDeleting), tableID)
	})
	if err != nil {
		log.Err(err).Str("func", "localEditor.MarkTableForDeletion").Str("table_id", tableID).Msg("failed to mark table for deletion")
		return err
	}

	return nil
}

func (e *localEditor) SetSyncEnabled(ctx context.Context, tableID string, enabled bool) error {
	return execTableUpdate(ctx, e.DB, "localEditor.SetSyncEnabled", tableID, setTableSyncEnabled, enabled, tableID)
}

// InsertRow adds a new INSERTING row with a freshly generated id.
func (e *localEditor) InsertRow(ctx context.Context, tableID string, values map[string]string) (models.LocalRow, error) {
	log := logger.FromContext(ctx)

	row := models.LocalRow{
		Row: models.Row{
			RowID:  e.ids.Generate(),
			Values: values,
		},
		TableID:   tableID,
		State:     models.StateInserting,
		UpdatedAt: time.Now().UTC(),
	}

	err := e.inTx(ctx, func(tx *sql.Tx) error {
		table, err := lockEditableTable(ctx, tx, tableID)
		if err != nil {
			return err
		}
		if err = checkColumns(table.Schema, values); err != nil {
			return err
		}

		valuesJSON, err := encodeValues(values)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocalStore, err)
		}

		if _, err = tx.ExecContext(ctx, insertLocalRow, tableID, row.RowID, valuesJSON, row.UpdatedAt); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localEditor.InsertRow").Str("table_id", tableID).Msg("failed to insert local row")
		return models.LocalRow{}, err
	}

	return row, nil
}

// UpdateRow merges values into the row. REST rows move to UPDATING, rows
// that are not pushed yet keep their state.
func (e *localEditor) UpdateRow(ctx context.Context, tableID, rowID string, values map[string]string) error {
	log := logger.FromContext(ctx)

	err := e.inTx(ctx, func(tx *sql.Tx) error {
		table, err := lockEditableTable(ctx, tx, tableID)
		if err != nil {
			return err
		}
		if err = checkColumns(table.Schema, values); err != nil {
			return err
		}

		current, err := lockRow(ctx, tx, tableID, rowID)
		if err != nil {
			return err
		}

		next := current.State
		switch current.State {
		case models.StateRest:
			next = models.StateUpdating
		case models.StateDeleting:
			return fmt.Errorf("%w: row %s is deleted", ErrInvalidTransition, rowID)
		}

		merged := current.Values
		maps.Copy(merged, values)

		valuesJSON, err := encodeValues(merged)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocalStore, err)
		}

		if _, err = tx.ExecContext(ctx, updateLocalRow, valuesJSON, int(next), time.Now().UTC(), tableID, rowID); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localEditor.UpdateRow").Str("table_id", tableID).Str("row_id", rowID).Msg("failed to update local row")
		return err
	}

	return nil
}

// DeleteRow marks a row DELETING. A row that never reached the server is
// removed immediately.
func (e *localEditor) DeleteRow(ctx context.Context, tableID, rowID string) error {
	log := logger.FromContext(ctx)

	err := e.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := lockEditableTable(ctx, tx, tableID); err != nil {
			return err
		}

		current, err := lockRow(ctx, tx, tableID, rowID)
		if err != nil {
			return err
		}

		switch current.State {
		case models.StateInserting:
			if _, err = tx.ExecContext(ctx, deleteRow, tableID, rowID); err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
			return nil
		case models.StateDeleting:
			return nil
		}

		if _, err = tx.ExecContext(ctx, setLocalRowState, int(models.StateDeleting), time.Now().UTC(), tableID, rowID); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localEditor.DeleteRow").Str("table_id", tableID).Str("row_id", rowID).Msg("failed to delete local row")
		return err
	}

	return nil
}

func (e *localEditor) GetRow(ctx context.Context, tableID, rowID string) (models.LocalRow, error) {
	rows, err := selectRows(ctx, e.DB, "localEditor.GetRow", rowFilter{TableID: tableID, RowIDs: []string{rowID}})
	if err != nil {
		return models.LocalRow{}, err
	}
	if len(rows) == 0 {
		return models.LocalRow{}, fmt.Errorf("%w: %s/%s", ErrRowNotFound, tableID, rowID)
	}
	return rows[0], nil
}

func (e *localEditor) ListRows(ctx context.Context, tableID string) ([]models.LocalRow, error) {
	return selectRows(ctx, e.DB, "localEditor.ListRows", rowFilter{TableID: tableID})
}

// ListConflicts returns every conflicting row of the table together with the
// stored server version.
func (e *localEditor) ListConflicts(ctx context.Context, tableID string) ([]models.Conflict, error) {
	log := logger.FromContext(ctx)

	rows, err := e.DB.QueryContext(ctx, listRowConflicts, tableID)
	if err != nil {
		log.Err(err).Str("func", "localEditor.ListConflicts").Str("table_id", tableID).Msg("failed to execute query for conflicts")
		return nil, storeErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	conflicts := make([]models.Conflict, 0)
	for rows.Next() {
		var (
			local            models.LocalRow
			localState       int
			localValues      string
			server           models.Row
			intent           int
			serverValuesJSON string
		)

		if err = rows.Scan(
			&local.TableID,
			&local.RowID,
			&local.VersionTag,
			&localState,
			&local.Transactioning,
			&localValues,
			&local.UpdatedAt,
			&server.VersionTag,
			&server.Deleted,
			&intent,
			&serverValuesJSON,
		); err != nil {
			log.Err(err).Str("func", "localEditor.ListConflicts").Str("table_id", tableID).Msg("failed to scan conflict row")
			return nil, storeErr(ErrScanningRow, err)
		}

		conflict, err := newConflict(local, localState, localValues, server, intent, serverValuesJSON)
		if err != nil {
			log.Err(err).Str("func", "localEditor.ListConflicts").Str("table_id", tableID).Str("row_id", local.RowID).Msg("stored conflict is corrupted")
			return nil, storeErr(ErrScanningRow, err)
		}
		conflicts = append(conflicts, conflict)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localEditor.ListConflicts").Str("table_id", tableID).Msg("error occurred during rows iteration")
		return nil, storeErr(ErrScanningRows, rowsErr)
	}

	return conflicts, nil
}

// ResolveConflict applies an explicit resolution and drops the stored server
// version.
func (e *localEditor) ResolveConflict(ctx context.Context, tableID, rowID string, resolution models.ConflictResolution) error {
	log := logger.FromContext(ctx)

	if err := resolution.Validate(); err != nil {
		return err
	}

	err := e.inTx(ctx, func(tx *sql.Tx) error {
		current, err := lockRow(ctx, tx, tableID, rowID)
		if err != nil && !errors.Is(err, ErrRowConflicting) {
			return err
		}
		if current.State != models.StateConflicting {
			return fmt.Errorf("%w: row %s is %s", ErrConflictNotFound, rowID, current.State)
		}

		var (
			server     models.Row
			intent     int
			valuesJSON string
		)
		err = tx.QueryRowContext(ctx, getRowConflict, tableID, rowID).Scan(&server.VersionTag, &server.Deleted, &intent, &valuesJSON)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s/%s", ErrConflictNotFound, tableID, rowID)
		}
		if err != nil {
			return storeErr(ErrExecutingQuery, err)
		}
		server.RowID = rowID
		if server.Values, err = decodeValues(valuesJSON); err != nil {
			return fmt.Errorf("%w: %w", ErrLocalStore, err)
		}

		localIntent, err := models.ParseSyncState(intent)
		if err != nil {
			return storeErr(ErrScanningRow, err)
		}

		conflict := models.Conflict{TableID: tableID, Local: current, Server: server, LocalIntent: localIntent}
		resolved, purge, err := conflict.Resolve(resolution)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, deleteRowConflict, tableID, rowID); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}

		if purge {
			if _, err = tx.ExecContext(ctx, deleteRow, tableID, rowID); err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
			return nil
		}

		resolvedJSON, err := encodeValues(resolved.Values)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocalStore, err)
		}
		if _, err = tx.ExecContext(ctx, writeResolvedRow,
			resolved.VersionTag, resolvedJSON, int(resolved.State), time.Now().UTC(), tableID, rowID,
		); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localEditor.ResolveConflict").Str("table_id", tableID).Str("row_id", rowID).Msg("failed to resolve conflict")
		return err
	}

	log.Info().
		Str("func", "localEditor.ResolveConflict").
		Str("table_id", tableID).
		Str("row_id", rowID).
		Int("resolution", int(resolution)).
		Msg("conflict resolved")

	return nil
}

// lockTable reads the table inside tx and refuses tables in the middle of a
// sync pass.
func lockTable(ctx context.Context, tx *sql.Tx, tableID string) (models.Table, error) {
	table, err := scanTable(tx.QueryRowContext(ctx, getSyncTable, tableID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Table{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	case errors.Is(err, models.ErrMalformedSyncTag), errors.Is(err, ErrLocalStore):
		return models.Table{}, err
	case err != nil:
		return models.Table{}, storeErr(ErrScanningRow, err)
	}

	if table.Transactioning {
		return models.Table{}, fmt.Errorf("%w: %s", ErrTableInFlight, tableID)
	}

	return table, nil
}

// lockEditableTable is lockTable for row edits, which a table in DELETING
// no longer accepts.
func lockEditableTable(ctx context.Context, tx *sql.Tx, tableID string) (models.Table, error) {
	table, err := lockTable(ctx, tx, tableID)
	if err != nil {
		return models.Table{}, err
	}
	if table.State == models.TableDeleting {
		return models.Table{}, fmt.Errorf("%w: table %s is being deleted", ErrInvalidTransition, tableID)
	}
	return table, nil
}

// lockRow reads the row inside tx and refuses rows that are in flight or
// conflicting. A conflicting row is still returned with ErrRowConflicting.
func lockRow(ctx context.Context, tx *sql.Tx, tableID, rowID string) (models.LocalRow, error) {
	query, args, err := buildSelectRowsQuery(rowFilter{TableID: tableID, RowIDs: []string{rowID}})
	if err != nil {
		return models.LocalRow{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	row, err := scanLocalRow(tx.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.LocalRow{}, fmt.Errorf("%w: %s/%s", ErrRowNotFound, tableID, rowID)
	case errors.Is(err, ErrLocalStore):
		return models.LocalRow{}, err
	case err != nil:
		return models.LocalRow{}, storeErr(ErrScanningRow, err)
	}

	if row.Transactioning {
		return row, fmt.Errorf("%w: %s/%s", ErrRowInFlight, tableID, rowID)
	}
	if row.State == models.StateConflicting {
		return row, fmt.Errorf("%w: %s/%s", ErrRowConflicting, tableID, rowID)
	}

	return row, nil
}

func checkColumns(schema models.Schema, values map[string]string) error {
	for key := range values {
		if !schema.HasColumn(key) {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
	}
	return nil
}

func newConflict(local models.LocalRow, localState int, localValues string, server models.Row, intent int, serverValues string) (models.Conflict, error) {
	var err error
	if local.State, err = models.ParseSyncState(localState); err != nil {
		return models.Conflict{}, err
	}
	if local.Values, err = decodeValues(localValues); err != nil {
		return models.Conflict{}, err
	}

	server.RowID = local.RowID
	if server.Values, err = decodeValues(serverValues); err != nil {
		return models.Conflict{}, err
	}

	localIntent, err := models.ParseSyncState(intent)
	if err != nil {
		return models.Conflict{}, err
	}

	return models.Conflict{
		TableID:     local.TableID,
		Local:       local,
		Server:      server,
		LocalIntent: localIntent,
	}, nil
}
