package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

// tableRepository is the SQLite-backed implementation of [LocalTableStore].
// Table metadata lives in "sync_tables", rows in "table_rows" and the server
// versions of conflicting rows in "row_conflicts".
type tableRepository struct {
	*DB
	logger *logger.Logger
}

// NewTableRepository constructs a [LocalTableStore] backed by db.
func NewTableRepository(db *DB, logger *logger.Logger) LocalTableStore {
	return &tableRepository{
		DB:     db,
		logger: logger,
	}
}

// ListSyncTables returns every table with synchronization enabled, ordered by
// table id. A table whose stored sync tag is corrupted is still returned with
// a zero tag; GetTableSyncTag reports the corruption.
func (r *tableRepository) ListSyncTables(ctx context.Context) ([]models.Table, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTablesQuery(true)
	if err != nil {
		log.Err(err).Str("func", "tableRepository.ListSyncTables").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "tableRepository.ListSyncTables").Msg("failed to execute query for listing sync tables")
		return nil, storeErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	tables := make([]models.Table, 0, 8)
	for rows.Next() {
		table, scanErr := scanTable(rows)
		if scanErr != nil && !errors.Is(scanErr, models.ErrMalformedSyncTag) {
			log.Err(scanErr).Str("func", "tableRepository.ListSyncTables").Msg("failed to scan sync table row")
			if errors.Is(scanErr, ErrLocalStore) {
				return nil, scanErr
			}
			return nil, storeErr(ErrScanningRow, scanErr)
		}
		tables = append(tables, table)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "tableRepository.ListSyncTables").Msg("error occurred during rows iteration")
		return nil, storeErr(ErrScanningRows, rowsErr)
	}

	return tables, nil
}

func (r *tableRepository) GetTable(ctx context.Context, tableID string) (models.Table, error) {
	log := logger.FromContext(ctx)

	table, err := scanTable(r.DB.QueryRowContext(ctx, getSyncTable, tableID))
	switch {
	case err == nil:
		return table, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Table{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	case errors.Is(err, models.ErrMalformedSyncTag), errors.Is(err, ErrLocalStore):
		log.Err(err).Str("func", "tableRepository.GetTable").Str("table_id", tableID).Msg("stored table is corrupted")
		return table, err
	default:
		log.Err(err).Str("func", "tableRepository.GetTable").Str("table_id", tableID).Msg("failed to scan sync table row")
		return models.Table{}, storeErr(ErrScanningRow, err)
	}
}

func (r *tableRepository) GetTableState(ctx context.Context, tableID string) (models.TableState, error) {
	log := logger.FromContext(ctx)

	var state int
	err := r.DB.QueryRowContext(ctx, getTableState, tableID).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TableRest, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	if err != nil {
		log.Err(err).Str("func", "tableRepository.GetTableState").Str("table_id", tableID).Msg("failed to get table state")
		return models.TableRest, storeErr(ErrExecutingQuery, err)
	}

	tableState, err := models.ParseTableState(state)
	if err != nil {
		log.Err(err).Str("func", "tableRepository.GetTableState").Str("table_id", tableID).Msg("stored table state is unknown")
		return models.TableRest, storeErr(ErrScanningRow, err)
	}

	return tableState, nil
}

func (r *tableRepository) SetTableState(ctx context.Context, tableID string, state models.TableState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	return execTableUpdate(ctx, r.DB, "tableRepository.SetTableState", tableID, setTableState, int(state), tableID)
}

func (r *tableRepository) SetTableTransactioning(ctx context.Context, tableID string, transactioning bool) error {
	return execTableUpdate(ctx, r.DB, "tableRepository.SetTableTransactioning", tableID, setTableTransactioning, transactioning, tableID)
}

func (r *tableRepository) GetTableSyncTag(ctx context.Context, tableID string) (models.SyncTag, error) {
	log := logger.FromContext(ctx)

	var raw string
	err := r.DB.QueryRowContext(ctx, getTableSyncTag, tableID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncTag{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	if err != nil {
		log.Err(err).Str("func", "tableRepository.GetTableSyncTag").Str("table_id", tableID).Msg("failed to get table sync tag")
		return models.SyncTag{}, storeErr(ErrExecutingQuery, err)
	}

	tag, err := decodeSyncTag(raw)
	if err != nil {
		log.Err(err).Str("func", "tableRepository.GetTableSyncTag").Str("table_id", tableID).Msg("stored sync tag is malformed")
		return models.SyncTag{}, err
	}

	return tag, nil
}

func (r *tableRepository) SetTableSyncTag(ctx context.Context, tableID string, tag models.SyncTag) error {
	if err := tag.Validate(); err != nil {
		return err
	}
	return execTableUpdate(ctx, r.DB, "tableRepository.SetTableSyncTag", tableID, setTableSyncTag, encodeSyncTag(tag), tableID)
}

func (r *tableRepository) MarkTableSynced(ctx context.Context, tableID string, at time.Time) error {
	return execTableUpdate(ctx, r.DB, "tableRepository.MarkTableSynced", tableID, setTableLastSyncTime, at.UTC(), tableID)
}

// DeleteTablePermanently removes the table metadata, its rows and its stored
// conflicts in one transaction.
func (r *tableRepository) DeleteTablePermanently(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range []string{deleteTableConflict, deleteTableRows, deleteSyncTable} {
			if _, err := tx.ExecContext(ctx, stmt, tableID); err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "tableRepository.DeleteTablePermanently").Str("table_id", tableID).Msg("failed to purge table")
		return err
	}

	log.Info().Str("func", "tableRepository.DeleteTablePermanently").Str("table_id", tableID).Msg("table purged locally")
	return nil
}

// ResetTransactioning clears every row and table TRANSACTIONING marker left by
// an interrupted pass.
func (r *tableRepository) ResetTransactioning(ctx context.Context) (int64, int64, error) {
	log := logger.FromContext(ctx)

	var rowsReset, tablesReset int64
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, resetRowsTransactioning)
		if err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		if rowsReset, err = res.RowsAffected(); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}

		res, err = tx.ExecContext(ctx, resetTablesTransactioning)
		if err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		if tablesReset, err = res.RowsAffected(); err != nil {
			return storeErr(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "tableRepository.ResetTransactioning").Msg("failed to reset transactioning markers")
		return 0, 0, err
	}

	return rowsReset, tablesReset, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execTableUpdate runs a single-table UPDATE and reports ErrTableNotFound when
// nothing matched.
func execTableUpdate(ctx context.Context, db execer, fn, tableID, stmt string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("table_id", tableID).Msg("failed to update sync table")
		return storeErr(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("table_id", tableID).Msg("failed to get rows affected")
		return storeErr(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}

	return nil
}
