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

// GetRowStates snapshots rowID → state for every local row of the table.
func (r *tableRepository) GetRowStates(ctx context.Context, tableID string) (models.RowStates, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getRowStates, tableID)
	if err != nil {
		log.Err(err).Str("func", "tableRepository.GetRowStates").Str("table_id", tableID).Msg("failed to execute query for row states")
		return nil, storeErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make(models.RowStates)
	for rows.Next() {
		var (
			rowID string
			state int
		)
		if err = rows.Scan(&rowID, &state); err != nil {
			log.Err(err).Str("func", "tableRepository.GetRowStates").Str("table_id", tableID).Msg("failed to scan row state")
			return nil, storeErr(ErrScanningRow, err)
		}

		syncState, err := models.ParseSyncState(state)
		if err != nil {
			log.Err(err).Str("func", "tableRepository.GetRowStates").Str("table_id", tableID).Str("row_id", rowID).Msg("stored row state is unknown")
			return nil, storeErr(ErrScanningRow, err)
		}
		states[rowID] = syncState
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "tableRepository.GetRowStates").Str("table_id", tableID).Msg("error occurred during rows iteration")
		return nil, storeErr(ErrScanningRows, rowsErr)
	}

	return states, nil
}

// GetRowsByState returns the rows in the given state that are not already
// part of an in-flight push.
func (r *tableRepository) GetRowsByState(ctx context.Context, tableID string, state models.SyncState) ([]models.LocalRow, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return selectRows(ctx, r.DB, "tableRepository.GetRowsByState", rowFilter{
		TableID:            tableID,
		States:             []models.SyncState{state},
		SkipTransactioning: true,
	})
}

func (r *tableRepository) SetRowsTransactioning(ctx context.Context, tableID string, rowIDs []string, transactioning bool) error {
	if len(rowIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildSetRowsTransactioningQuery(tableID, rowIDs, transactioning)
	if err != nil {
		log.Err(err).Str("func", "tableRepository.SetRowsTransactioning").Str("table_id", tableID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tableRepository.SetRowsTransactioning").
			Str("table_id", tableID).
			Int("rows_count", len(rowIDs)).
			Bool("transactioning", transactioning).
			Msg("failed to set transactioning flag")
		return storeErr(ErrExecutingStatement, err)
	}

	return nil
}

// ApplyIncoming writes a partitioned pull in a single transaction. A row that
// became dirty after the states snapshot is turned into a conflict instead of
// being overwritten.
func (r *tableRepository) ApplyIncoming(ctx context.Context, tableID string, changes models.IncomingChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, row := range changes.Inserts {
			applied, err := applyPulledRow(ctx, tx, insertPulledRow, tableID, row, now)
			if err != nil {
				return err
			}
			if !applied {
				if err = storeConflict(ctx, tx, tableID, row, now); err != nil {
					return err
				}
			}
		}

		for _, row := range changes.Updates {
			applied, err := applyPulledRow(ctx, tx, updatePulledRow, tableID, row, now)
			if err != nil {
				return err
			}
			if !applied {
				if err = storeConflict(ctx, tx, tableID, row, now); err != nil {
					return err
				}
			}
		}

		for _, row := range changes.Deletes {
			res, err := tx.ExecContext(ctx, deletePulledRow, tableID, row.RowID)
			if err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
			if affected == 0 {
				if err = storeConflict(ctx, tx, tableID, row, now); err != nil {
					return err
				}
			}
		}

		for _, row := range changes.Conflicts {
			if err := storeConflict(ctx, tx, tableID, row, now); err != nil {
				return err
			}
		}

		if changes.Schema != nil {
			schemaJSON, err := encodeSchema(*changes.Schema)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLocalStore, err)
			}
			if err = execTableUpdate(ctx, tx, "tableRepository.ApplyIncoming", tableID, setTableSchema, schemaJSON, tableID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "tableRepository.ApplyIncoming").Str("table_id", tableID).Msg("failed to apply pulled changes, rolled back")
		return err
	}

	log.Debug().
		Str("func", "tableRepository.ApplyIncoming").
		Str("table_id", tableID).
		Int("inserts", len(changes.Inserts)).
		Int("updates", len(changes.Updates)).
		Int("deletes", len(changes.Deletes)).
		Int("conflicts", len(changes.Conflicts)).
		Bool("schema_changed", changes.Schema != nil).
		Msg("pulled changes applied")

	return nil
}

// ConfirmPushed records the tags the remote service returned for pushed rows:
// the row goes back to REST with the new tag and a cleared flag. Confirmed
// deletes are purged. Rows whose state changed since the push are left alone.
func (r *tableRepository) ConfirmPushed(ctx context.Context, tableID string, state models.SyncState, rowTags map[string]string) error {
	if len(rowTags) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	if state == models.StateDeleting {
		rowIDs := make([]string, 0, len(rowTags))
		for rowID := range rowTags {
			rowIDs = append(rowIDs, rowID)
		}
		return r.PurgeRows(ctx, tableID, rowIDs)
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for rowID, tag := range rowTags {
			if _, err := tx.ExecContext(ctx, confirmPushedRow, tag, tableID, rowID, int(state)); err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "tableRepository.ConfirmPushed").
			Str("table_id", tableID).
			Stringer("state", state).
			Int("rows_count", len(rowTags)).
			Msg("failed to confirm pushed rows")
		return err
	}

	return nil
}

// PurgeRows removes rows and their stored conflicts permanently.
func (r *tableRepository) PurgeRows(ctx context.Context, tableID string, rowIDs []string) error {
	if len(rowIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, from := range []string{"row_conflicts", "table_rows"} {
			query, args, err := buildPurgeQuery(from, tableID, rowIDs)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLocalStore, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return storeErr(ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "tableRepository.PurgeRows").Str("table_id", tableID).Int("rows_count", len(rowIDs)).Msg("failed to purge rows")
		return err
	}

	return nil
}

// applyPulledRow runs an insert or update of a pulled row and reports whether
// it matched. A miss means the row is locally dirty.
func applyPulledRow(ctx context.Context, tx *sql.Tx, stmt, tableID string, row models.Row, now time.Time) (bool, error) {
	valuesJSON, err := encodeValues(row.Values)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	var res sql.Result
	if stmt == insertPulledRow {
		res, err = tx.ExecContext(ctx, stmt, tableID, row.RowID, row.VersionTag, valuesJSON, now)
	} else {
		res, err = tx.ExecContext(ctx, stmt, row.VersionTag, valuesJSON, now, tableID, row.RowID)
	}
	if err != nil {
		return false, storeErr(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storeErr(ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// storeConflict keeps the server version of a row next to the local one and
// marks the local row CONFLICTING. A newer server version replaces the stored
// one. Nothing is stored when the row does not exist locally any more.
func storeConflict(ctx context.Context, tx *sql.Tx, tableID string, row models.Row, now time.Time) error {
	var (
		state          int
		transactioning bool
	)
	err := tx.QueryRowContext(ctx, getRowState, tableID, row.RowID).Scan(&state, &transactioning)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return storeErr(ErrExecutingQuery, err)
	}

	valuesJSON, err := encodeValues(row.Values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	if _, err = tx.ExecContext(ctx, upsertRowConflict, tableID, row.RowID, row.VersionTag, row.Deleted, state, valuesJSON, now); err != nil {
		return storeErr(ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, markRowConflicting, tableID, row.RowID); err != nil {
		return storeErr(ErrExecutingStatement, err)
	}

	return nil
}

func selectRows(ctx context.Context, db *DB, fn string, filter rowFilter) ([]models.LocalRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRowsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", fn).Str("table_id", filter.TableID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("table_id", filter.TableID).Msg("failed to execute query for rows")
		return nil, storeErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.LocalRow, 0, 16)
	for rows.Next() {
		row, scanErr := scanLocalRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Str("table_id", filter.TableID).Msg("failed to scan row")
			return nil, storeErr(ErrScanningRow, scanErr)
		}
		result = append(result, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Str("table_id", filter.TableID).Msg("error occurred during rows iteration")
		return nil, storeErr(ErrScanningRows, rowsErr)
	}

	return result, nil
}
