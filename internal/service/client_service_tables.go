package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

type tableCatalog struct {
	remote adapter.TableSynchronizer
	editor store.LocalEditor
	logger *logger.Logger
}

// NewTableCatalog constructs a TableCatalog reading from remote and writing
// through editor.
func NewTableCatalog(remote adapter.TableSynchronizer, editor store.LocalEditor, logger *logger.Logger) TableCatalog {
	return &tableCatalog{
		remote: remote,
		editor: editor,
		logger: logger,
	}
}

func (c *tableCatalog) ListRemoteTables(ctx context.Context) ([]models.RemoteTable, error) {
	tables, err := c.remote.ListRemoteTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remote tables: %w", err)
	}
	return tables, nil
}

// DownloadTable fetches the schema only. The tag stays zero so the next pull
// is a full snapshot of rows and schema.
func (c *tableCatalog) DownloadTable(ctx context.Context, tableID string) error {
	schema, tag, err := c.remote.GetSchema(ctx, tableID)
	if err != nil {
		return fmt.Errorf("get schema of %s: %w", tableID, err)
	}

	if err = c.editor.AdoptRemoteTable(ctx, models.Table{
		TableID:     tableID,
		DisplayName: tableID,
		Schema:      schema,
	}); err != nil {
		return err
	}

	c.logger.Info().
		Str("func", "tableCatalog.DownloadTable").
		Str("table_id", tableID).
		Str("remote_tag", tag.String()).
		Int("columns", len(schema.Columns)).
		Msg("remote table registered locally")

	return nil
}
