package store

import (
	"errors"
	"fmt"
)

// ErrLocalStore wraps every SQL-level failure of the local row store. The sync
// processor treats it as fatal for the whole pass.
var ErrLocalStore = errors.New("local store failure")

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTableNotFound is returned when no sync table with the requested id
	// exists locally.
	ErrTableNotFound = errors.New("table was not found")

	// ErrTableAlreadyExists is returned by CreateLocalTable for a taken id.
	ErrTableAlreadyExists = errors.New("table already exists")

	// ErrRowNotFound is returned when a row lookup or edit targets a row that
	// does not exist in the table.
	ErrRowNotFound = errors.New("row was not found")

	// ErrConflictNotFound is returned when resolving a row that has no stored
	// server version.
	ErrConflictNotFound = errors.New("conflict was not found")

	// ErrRowConflicting is returned when a local edit targets a CONFLICTING
	// row. The conflict has to be resolved first.
	ErrRowConflicting = errors.New("row is conflicting")

	// ErrRowInFlight is returned when a local edit targets a row that is being
	// pushed right now.
	ErrRowInFlight = errors.New("row is being synchronized")

	// ErrTableInFlight is returned when a local edit targets a table that is
	// being synchronized right now.
	ErrTableInFlight = errors.New("table is being synchronized")

	// ErrInvalidTransition is returned when a local edit is not allowed from
	// the current row or table state.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnknownColumn is returned when row values reference a column the
	// table schema does not define.
	ErrUnknownColumn = errors.New("unknown column")
)

// Low-level database operation errors. They are always wrapped together with
// [ErrLocalStore].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingValue is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingValue = errors.New("failed to encode column value")
)

// storeErr wraps a driver error with ErrLocalStore and the given kind.
func storeErr(kind, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrLocalStore, kind, err)
}
