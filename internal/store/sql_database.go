package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/migrations"
)

const (
	busyRetries = 3
	busyBackoff = 50 * time.Millisecond
)

// DB is the local SQLite connection shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// inTx runs fn inside a transaction. An error from fn rolls everything back.
// The whole transaction is retried while the database file is locked.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewConstant(busyBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, fn)
		if err != nil && ClassifySQLiteError(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.inTx").Msg("database is locked, retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return storeErr(ErrCommitingTransaction, err)
	}

	return nil
}
