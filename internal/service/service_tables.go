package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

const filesRoute = "/api/files"

type remoteRow struct {
	row models.Row
	seq int64
}

type remoteTable struct {
	schema     models.Schema
	schemaETag string
	dataETag   string

	seq     int64
	etagSeq map[string]int64
	rows    map[string]*remoteRow
}

func (t *remoteTable) tag() models.SyncTag {
	return models.SyncTag{DataVersion: t.dataETag, SchemaVersion: t.schemaETag}
}

// tableService is the in-memory implementation of [TableService].
type tableService struct {
	ids      utils.IDGenerator
	filesDir string
	logger   *logger.Logger

	mu     sync.RWMutex
	tables map[string]*remoteTable
}

// NewTableService constructs an empty in-memory TableService. Files are
// served from filesDir/<tableID>; an empty filesDir serves none.
func NewTableService(ids utils.IDGenerator, filesDir string, logger *logger.Logger) TableService {
	return &tableService{
		ids:      ids,
		filesDir: filesDir,
		logger:   logger,
		tables:   make(map[string]*remoteTable),
	}
}

func (s *tableService) ListTables(ctx context.Context) ([]models.RemoteTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RemoteTable, 0, len(s.tables))
	for id, t := range s.tables {
		out = append(out, models.RemoteTable{TableID: id, SyncTag: t.tag()})
	}
	slices.SortFunc(out, func(a, b models.RemoteTable) int { return strings.Compare(a.TableID, b.TableID) })

	return out, nil
}

// CreateTable creates tableID with schema. Creating a table that already
// exists is not an error: the zero tag comes back, so the caller's next pull
// is a full snapshot of rows and schema it has never seen.
func (s *tableService) CreateTable(ctx context.Context, tableID string, schema models.Schema) (models.SyncTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[tableID]; ok {
		logger.FromContext(ctx).Info().Str("func", "tableService.CreateTable").Str("table_id", tableID).Msg("table exists, joining")
		return models.SyncTag{}, nil
	}

	t := &remoteTable{
		schema:     schema,
		schemaETag: s.ids.Generate(),
		dataETag:   s.ids.Generate(),
		etagSeq:    make(map[string]int64),
		rows:       make(map[string]*remoteRow),
	}
	t.etagSeq[t.dataETag] = 0
	s.tables[tableID] = t

	logger.FromContext(ctx).Info().Str("func", "tableService.CreateTable").Str("table_id", tableID).Msg("table created")
	return t.tag(), nil
}

func (s *tableService) DeleteTable(ctx context.Context, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[tableID]; !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	delete(s.tables, tableID)

	logger.FromContext(ctx).Info().Str("func", "tableService.DeleteTable").Str("table_id", tableID).Msg("table deleted")
	return nil
}

// Changes returns the rows written after since. A zero tag gets the live rows
// only; an unknown data version gets every row including tombstones.
func (s *tableService) Changes(ctx context.Context, tableID string, since models.SyncTag) (models.ChangesResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[tableID]
	if !ok {
		return models.ChangesResponse{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}

	after, known := t.etagSeq[since.DataVersion]
	snapshot := since.DataVersion == ""
	if !known {
		after = -1
	}

	resp := models.ChangesResponse{SyncTag: t.tag(), Rows: make([]models.Row, 0)}
	for _, r := range t.rows {
		if r.seq <= after || (snapshot && r.row.Deleted) {
			continue
		}
		resp.Rows = append(resp.Rows, r.row.Clone())
	}
	slices.SortFunc(resp.Rows, func(a, b models.Row) int { return strings.Compare(a.RowID, b.RowID) })

	if since.SchemaVersion != t.schemaETag {
		schema := t.schema
		resp.SchemaChanged = true
		resp.Schema = &schema
	}

	return resp, nil
}

func (s *tableService) PutRow(ctx context.Context, tableID, rowID string, base models.SyncTag, req models.PutRowRequest) (models.RowWriteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[tableID]
	if !ok {
		return models.RowWriteResponse{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}

	current, exists := t.rows[rowID]
	live := exists && !current.row.Deleted

	switch {
	case req.VersionTag == "" && live && sameValues(current.row.Values, req.Values):
		// re-sent insert
		return s.written(t, base, current.row, false), nil
	case req.VersionTag == "" && live:
		return models.RowWriteResponse{}, fmt.Errorf("%w: %s", ErrRowAlreadyExists, rowID)
	case req.VersionTag != "" && !exists:
		return models.RowWriteResponse{}, fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
	case req.VersionTag != "" && (current.row.Deleted || current.row.VersionTag != req.VersionTag):
		return models.RowWriteResponse{}, fmt.Errorf("%w: %s", ErrStaleVersionTag, rowID)
	}

	row := models.Row{RowID: rowID, VersionTag: s.ids.Generate(), Values: req.Values}.Clone()
	return s.written(t, base, row, true), nil
}

func (s *tableService) DeleteRow(ctx context.Context, tableID, rowID, versionTag string, base models.SyncTag) (models.RowWriteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[tableID]
	if !ok {
		return models.RowWriteResponse{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}

	current, exists := t.rows[rowID]
	if !exists || current.row.Deleted {
		return s.written(t, base, models.Row{RowID: rowID, Deleted: true}, false), nil
	}
	if current.row.VersionTag != versionTag {
		return models.RowWriteResponse{}, fmt.Errorf("%w: %s", ErrStaleVersionTag, rowID)
	}

	tombstone := models.Row{RowID: rowID, VersionTag: s.ids.Generate(), Deleted: true}
	return s.written(t, base, tombstone, true), nil
}

// written stores row when changed and applies the base tag rule to the
// returned table tag.
func (s *tableService) written(t *remoteTable, base models.SyncTag, row models.Row, changed bool) models.RowWriteResponse {
	baseCurrent := base.DataVersion == t.dataETag

	if changed {
		t.seq++
		t.rows[row.RowID] = &remoteRow{row: row, seq: t.seq}
		t.dataETag = s.ids.Generate()
		t.etagSeq[t.dataETag] = t.seq
	}

	tag := base
	if baseCurrent {
		tag = t.tag()
	}

	return models.RowWriteResponse{RowID: row.RowID, VersionTag: row.VersionTag, SyncTag: tag}
}

func (s *tableService) GetSchema(ctx context.Context, tableID string) (models.SchemaResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[tableID]
	if !ok {
		return models.SchemaResponse{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}

	return models.SchemaResponse{Schema: t.schema, SyncTag: t.tag()}, nil
}

func (s *tableService) SetSchema(ctx context.Context, tableID string, req models.SetSchemaRequest) (models.SyncTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[tableID]
	if !ok {
		return models.SyncTag{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	if req.SchemaETag != t.schemaETag {
		return models.SyncTag{}, fmt.Errorf("%w: %s", ErrStaleSchemaTag, tableID)
	}

	t.schema = req.Schema
	t.schemaETag = s.ids.Generate()

	logger.FromContext(ctx).Info().Str("func", "tableService.SetSchema").Str("table_id", tableID).Msg("schema replaced")
	return t.tag(), nil
}

func (s *tableService) Manifest(ctx context.Context, tableID string) ([]models.ManifestEntry, error) {
	if err := s.checkTable(tableID); err != nil {
		return nil, err
	}

	entries := make([]models.ManifestEntry, 0)
	if s.filesDir == "" {
		return entries, nil
	}

	dir := filepath.Join(s.filesDir, tableID)
	dirEntries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read files dir: %w", err)
	}

	for _, e := range dirEntries {
		if e.IsDir() || strings.HasSuffix(e.Name(), tmpSuffix) {
			continue
		}
		hash, hashErr := utils.FileContentHash(filepath.Join(dir, e.Name()))
		if hashErr != nil {
			return nil, hashErr
		}
		entries = append(entries, models.ManifestEntry{
			Filename:    e.Name(),
			ContentHash: hash,
			DownloadURL: fileURL(tableID, e.Name()),
		})
	}

	return entries, nil
}

// fileURL is the download path of one file. Both segments are escaped so
// that names such as "50%.txt" or "photo #1.jpg" survive the round trip.
func fileURL(tableID, name string) string {
	return filesRoute + "/" + url.PathEscape(tableID) + "/" + url.PathEscape(name)
}

func (s *tableService) OpenFile(ctx context.Context, tableID, name string) (*os.File, error) {
	if err := s.checkTable(tableID); err != nil {
		return nil, err
	}
	if s.filesDir == "" {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}

	path, err := resolveTarget(filepath.Join(s.filesDir, tableID), name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return f, err
}

func (s *tableService) checkTable(tableID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tables[tableID]; !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
	}
	return nil
}
