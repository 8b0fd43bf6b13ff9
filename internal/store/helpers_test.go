package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("row-%d", s.n)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var testSchema = models.Schema{
	Columns: []models.Column{
		{Key: "name", Type: models.ColumnString},
		{Key: "qty", Type: models.ColumnInteger},
	},
}

// newTestStorages opens a migrated SQLite database in a temp dir.
func newTestStorages(t *testing.T) (*tableRepository, *localEditor, *DB) {
	t.Helper()

	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "sync.db")

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	tables := NewTableRepository(db, logger.Nop()).(*tableRepository)
	editor := NewLocalEditor(db, &seqIDs{}, logger.Nop()).(*localEditor)

	return tables, editor, db
}

// newSyncedTable creates a table that already exists remotely: REST with a
// non-zero tag.
func newSyncedTable(t *testing.T, tables *tableRepository, editor *localEditor, tableID string) {
	t.Helper()
	ctx := testContext()

	require.NoError(t, editor.CreateLocalTable(ctx, models.Table{TableID: tableID, DisplayName: tableID, Schema: testSchema}))
	require.NoError(t, tables.SetTableState(ctx, tableID, models.TableRest))
	require.NoError(t, tables.SetTableSyncTag(ctx, tableID, models.SyncTag{DataVersion: "d1", SchemaVersion: "s1"}))
}

// pullRows lands rows in REST as if they were pulled.
func pullRows(t *testing.T, tables *tableRepository, tableID string, rows ...models.Row) {
	t.Helper()
	require.NoError(t, tables.ApplyIncoming(testContext(), tableID, models.IncomingChanges{Inserts: rows}))
}

func rowByID(t *testing.T, editor *localEditor, tableID, rowID string) models.LocalRow {
	t.Helper()
	row, err := editor.GetRow(testContext(), tableID, rowID)
	require.NoError(t, err)
	return row
}
