package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

// seqIDs выдаёт предсказуемые id: id1, id2, ...
type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id%d", s.n)
}

var testSchema = models.Schema{Columns: []models.Column{
	{Key: "name", Type: models.ColumnString},
	{Key: "age", Type: models.ColumnInteger},
}}

func newTestTableService(t *testing.T, filesDir string) (*tableService, models.SyncTag) {
	t.Helper()
	svc := NewTableService(&seqIDs{}, filesDir, logger.Nop()).(*tableService)

	tag, err := svc.CreateTable(context.Background(), "t1", testSchema)
	require.NoError(t, err)

	return svc, tag
}

func insert(t *testing.T, svc TableService, base models.SyncTag, rowID, name string) models.RowWriteResponse {
	t.Helper()
	resp, err := svc.PutRow(context.Background(), "t1", rowID, base, models.PutRowRequest{Values: map[string]string{"name": name}})
	require.NoError(t, err)
	return resp
}

// ── tables ───────────────────────────────────────────────────────────────────

func TestTableService_CreateTable_Idempotent(t *testing.T) {
	svc, tag := newTestTableService(t, "")

	assert.False(t, tag.IsZero())

	// существующая таблица: нулевой тег, чтобы следующий pull был полным снимком
	again, err := svc.CreateTable(context.Background(), "t1", models.Schema{})
	require.NoError(t, err)
	assert.True(t, again.IsZero())

	schema, err := svc.GetSchema(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, testSchema, schema.Schema, "схема существующей таблицы не меняется")
	assert.Equal(t, tag, schema.SyncTag)
}

func TestTableService_ListTables(t *testing.T) {
	svc, tag := newTestTableService(t, "")
	ctx := context.Background()

	_, err := svc.CreateTable(ctx, "a0", testSchema)
	require.NoError(t, err)

	tables, err := svc.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "a0", tables[0].TableID)
	assert.Equal(t, models.RemoteTable{TableID: "t1", SyncTag: tag}, tables[1])

	require.NoError(t, svc.DeleteTable(ctx, "a0"))
	tables, err = svc.ListTables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, 1)
}

func TestTableService_DeleteTable(t *testing.T) {
	svc, _ := newTestTableService(t, "")
	ctx := context.Background()

	require.NoError(t, svc.DeleteTable(ctx, "t1"))
	assert.ErrorIs(t, svc.DeleteTable(ctx, "t1"), ErrTableNotFound)

	_, err := svc.Changes(ctx, "t1", models.SyncTag{})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

// ── base tag rule ────────────────────────────────────────────────────────────

func TestTableService_PutRow_CurrentBase_ReturnsNewTag(t *testing.T) {
	svc, tag := newTestTableService(t, "")

	resp := insert(t, svc, tag, "r1", "a")
	assert.Equal(t, "r1", resp.RowID)
	assert.NotEmpty(t, resp.VersionTag)
	assert.NotEqual(t, tag.DataVersion, resp.SyncTag.DataVersion)
	assert.Equal(t, tag.SchemaVersion, resp.SyncTag.SchemaVersion)

	// цепочка: следующий запрос с новым тегом снова получает свежий тег
	resp2 := insert(t, svc, resp.SyncTag, "r2", "b")
	assert.NotEqual(t, resp.SyncTag, resp2.SyncTag)
}

func TestTableService_PutRow_StaleBase_EchoesBase(t *testing.T) {
	svc, tag := newTestTableService(t, "")

	// чужая запись сдвигает тег
	insert(t, svc, tag, "foreign", "x")

	resp := insert(t, svc, tag, "r1", "a")
	assert.Equal(t, tag, resp.SyncTag, "клиент ещё не видел foreign, тег не двигаем")

	changes, err := svc.Changes(context.Background(), "t1", tag)
	require.NoError(t, err)
	assert.Equal(t, []string{"foreign", "r1"}, models.RowIDs(changes.Rows))
}

func TestTableService_PutRow_Rules(t *testing.T) {
	svc, tag := newTestTableService(t, "")
	ctx := context.Background()
	first := insert(t, svc, tag, "r1", "a")

	// повтор той же вставки, без изменений
	again := insert(t, svc, first.SyncTag, "r1", "a")
	assert.Equal(t, first.VersionTag, again.VersionTag)
	assert.Equal(t, first.SyncTag, again.SyncTag)

	_, err := svc.PutRow(ctx, "t1", "r1", first.SyncTag, models.PutRowRequest{Values: map[string]string{"name": "other"}})
	assert.ErrorIs(t, err, ErrRowAlreadyExists)

	_, err = svc.PutRow(ctx, "t1", "missing", first.SyncTag, models.PutRowRequest{VersionTag: "v1", Values: map[string]string{"name": "a"}})
	assert.ErrorIs(t, err, ErrRowNotFound)

	_, err = svc.PutRow(ctx, "t1", "r1", first.SyncTag, models.PutRowRequest{VersionTag: "stale", Values: map[string]string{"name": "b"}})
	assert.ErrorIs(t, err, ErrStaleVersionTag)

	updated, err := svc.PutRow(ctx, "t1", "r1", first.SyncTag, models.PutRowRequest{VersionTag: first.VersionTag, Values: map[string]string{"name": "b"}})
	require.NoError(t, err)
	assert.NotEqual(t, first.VersionTag, updated.VersionTag)

	_, err = svc.PutRow(ctx, "t1", "nope", first.SyncTag, models.PutRowRequest{})
	require.NoError(t, err, "пустая вставка допустима на уровне сервиса")

	_, err = svc.PutRow(ctx, "t2", "r1", tag, models.PutRowRequest{})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableService_DeleteRow(t *testing.T) {
	svc, tag := newTestTableService(t, "")
	ctx := context.Background()
	row := insert(t, svc, tag, "r1", "a")

	_, err := svc.DeleteRow(ctx, "t1", "r1", "stale", row.SyncTag)
	assert.ErrorIs(t, err, ErrStaleVersionTag)

	deleted, err := svc.DeleteRow(ctx, "t1", "r1", row.VersionTag, row.SyncTag)
	require.NoError(t, err)
	assert.NotEqual(t, row.SyncTag, deleted.SyncTag)

	// повторное удаление и удаление несуществующей строки, идемпотентны
	again, err := svc.DeleteRow(ctx, "t1", "r1", row.VersionTag, deleted.SyncTag)
	require.NoError(t, err)
	assert.Equal(t, deleted.SyncTag, again.SyncTag)

	_, err = svc.DeleteRow(ctx, "t1", "ghost", "", deleted.SyncTag)
	require.NoError(t, err)

	// строка удалена, обновление по старой версии уже невозможно
	_, err = svc.PutRow(ctx, "t1", "r1", deleted.SyncTag, models.PutRowRequest{VersionTag: row.VersionTag, Values: map[string]string{"name": "x"}})
	assert.ErrorIs(t, err, ErrStaleVersionTag)

	// а вставка заново, возможна
	insert(t, svc, deleted.SyncTag, "r1", "reborn")
}

// ── changes ──────────────────────────────────────────────────────────────────

func TestTableService_Changes(t *testing.T) {
	svc, tag := newTestTableService(t, "")
	ctx := context.Background()

	a := insert(t, svc, tag, "a", "1")
	b := insert(t, svc, a.SyncTag, "b", "2")
	del, err := svc.DeleteRow(ctx, "t1", "a", a.VersionTag, b.SyncTag)
	require.NoError(t, err)

	t.Run("zero tag returns live rows and schema", func(t *testing.T) {
		resp, err := svc.Changes(ctx, "t1", models.SyncTag{})
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, models.RowIDs(resp.Rows))
		assert.True(t, resp.SchemaChanged)
		require.NotNil(t, resp.Schema)
		assert.Equal(t, testSchema, *resp.Schema)
		assert.Equal(t, del.SyncTag, resp.SyncTag)
	})

	t.Run("known tag returns newer rows including tombstones", func(t *testing.T) {
		resp, err := svc.Changes(ctx, "t1", a.SyncTag)
		require.NoError(t, err)
		require.Len(t, resp.Rows, 2)
		assert.Equal(t, "a", resp.Rows[0].RowID)
		assert.True(t, resp.Rows[0].Deleted)
		assert.Equal(t, "b", resp.Rows[1].RowID)
		assert.False(t, resp.SchemaChanged)
		assert.Nil(t, resp.Schema)
	})

	t.Run("current tag returns nothing", func(t *testing.T) {
		resp, err := svc.Changes(ctx, "t1", del.SyncTag)
		require.NoError(t, err)
		assert.Empty(t, resp.Rows)
		assert.NotNil(t, resp.Rows)
	})

	t.Run("unknown tag returns everything", func(t *testing.T) {
		resp, err := svc.Changes(ctx, "t1", models.SyncTag{DataVersion: "bogus", SchemaVersion: tag.SchemaVersion})
		require.NoError(t, err)
		assert.Len(t, resp.Rows, 2)
	})
}

func TestTableService_Changes_ReturnsCopies(t *testing.T) {
	svc, tag := newTestTableService(t, "")
	insert(t, svc, tag, "a", "1")

	resp, err := svc.Changes(context.Background(), "t1", models.SyncTag{})
	require.NoError(t, err)
	resp.Rows[0].Values["name"] = "mutated"

	again, err := svc.Changes(context.Background(), "t1", models.SyncTag{})
	require.NoError(t, err)
	assert.Equal(t, "1", again.Rows[0].Values["name"])
}

// ── schema ───────────────────────────────────────────────────────────────────

func TestTableService_Schema(t *testing.T) {
	svc, tag := newTestTableService(t, "")
	ctx := context.Background()

	got, err := svc.GetSchema(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, testSchema, got.Schema)
	assert.Equal(t, tag, got.SyncTag)

	next := models.Schema{Columns: []models.Column{{Key: "title", Type: models.ColumnString}}}

	_, err = svc.SetSchema(ctx, "t1", models.SetSchemaRequest{SchemaETag: "stale", Schema: next})
	assert.ErrorIs(t, err, ErrStaleSchemaTag)

	newTag, err := svc.SetSchema(ctx, "t1", models.SetSchemaRequest{SchemaETag: tag.SchemaVersion, Schema: next})
	require.NoError(t, err)
	assert.Equal(t, tag.DataVersion, newTag.DataVersion)
	assert.NotEqual(t, tag.SchemaVersion, newTag.SchemaVersion)

	changes, err := svc.Changes(ctx, "t1", tag)
	require.NoError(t, err)
	assert.True(t, changes.SchemaChanged)
	assert.Equal(t, next, *changes.Schema)

	_, err = svc.GetSchema(ctx, "missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

// ── files ────────────────────────────────────────────────────────────────────

func TestTableService_Manifest(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "t1")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"+tmpSuffix), []byte("partial"), 0o644))

	svc, _ := newTestTableService(t, root)

	entries, err := svc.Manifest(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ManifestEntry{
		Filename:    "a.txt",
		ContentHash: contentHash("alpha"),
		DownloadURL: "/api/files/t1/a.txt",
	}, entries[0])

	_, err = svc.Manifest(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableService_Manifest_EscapesNames(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "t1"), 0o755))
	for _, name := range []string{"50%.txt", "a?b&c.txt", "photo #1.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "t1", name), []byte(name), 0o644))
	}

	svc, _ := newTestTableService(t, root)

	entries, err := svc.Manifest(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	urls := make(map[string]string, len(entries))
	for _, e := range entries {
		urls[e.Filename] = e.DownloadURL
	}
	assert.Equal(t, map[string]string{
		"50%.txt":      "/api/files/t1/50%25.txt",
		"a?b&c.txt":    "/api/files/t1/a%3Fb&c.txt",
		"photo #1.jpg": "/api/files/t1/photo%20%231.jpg",
	}, urls)
}

func TestTableService_Manifest_NoFiles(t *testing.T) {
	svc, _ := newTestTableService(t, t.TempDir())
	entries, err := svc.Manifest(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	disabled, _ := newTestTableService(t, "")
	entries, err = disabled.Manifest(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTableService_OpenFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "t1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "t1", "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("nope"), 0o644))

	svc, _ := newTestTableService(t, root)
	ctx := context.Background()

	f, err := svc.OpenFile(ctx, "t1", "a.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(body))

	_, err = svc.OpenFile(ctx, "t1", "missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = svc.OpenFile(ctx, "t1", "../secret.txt")
	assert.ErrorIs(t, err, ErrPathEscapesDir)
}
