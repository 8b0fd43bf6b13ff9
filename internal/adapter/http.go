package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

const (
	tablesPath   = "/api/tables"
	tablePath    = "/api/tables/{tableId}"
	changesPath  = "/api/tables/{tableId}/changes"
	rowPath      = "/api/tables/{tableId}/rows/{rowId}"
	schemaPath   = "/api/tables/{tableId}/schema"
	manifestPath = "/api/manifest"
)

// Adapters bundles the HTTP implementations sharing one client and one
// Authorization header.
type Adapters struct {
	Tables TableSynchronizer
	Files  FileTransport
}

type httpAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	mu         sync.RWMutex
	authHeader string

	logger *logger.Logger
}

// NewHTTPAdapters constructs the HTTP/JSON implementations of
// [TableSynchronizer] and [FileTransport]. Every request is bounded by
// adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAdapters(adapterCfg config.ClientAdapter, logger *logger.Logger) (*Adapters, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpAdapter{
		client:  utils.NewHTTPClient(baseURL.String(), adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}
	a.SetAuthHeader(adapterCfg.AuthHeader)

	return &Adapters{Tables: a, Files: a}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""

	return u, nil
}

// SetAuthHeader implements [TableSynchronizer]. The value is sent verbatim.
func (h *httpAdapter) SetAuthHeader(value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.authHeader = strings.TrimSpace(value)
}

func (h *httpAdapter) authedRequest(ctx context.Context, tableID string) *resty.Request {
	return h.withAuth(h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("tableId", tableID))
}

func (h *httpAdapter) withAuth(req *resty.Request) *resty.Request {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.authHeader != "" {
		req.SetHeader("Authorization", h.authHeader)
	}

	return req
}

// ListRemoteTables implements [TableSynchronizer] with GET /api/tables.
func (h *httpAdapter) ListRemoteTables(ctx context.Context) ([]models.RemoteTable, error) {
	resp, err := h.authedRequest(ctx, "").Get(tablesPath)
	if err != nil {
		return nil, transportError("list tables request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tables []models.RemoteTable
	if err = json.Unmarshal(resp.Body(), &tables); err != nil {
		return nil, decodeError("list tables", err)
	}
	for _, t := range tables {
		if err = validTag("list tables", t.SyncTag); err != nil {
			return nil, err
		}
	}

	return tables, nil
}

// CreateRemoteTable implements [TableSynchronizer] with an idempotent
// PUT /api/tables/{tableId}.
func (h *httpAdapter) CreateRemoteTable(ctx context.Context, tableID string, schema models.Schema) (models.SyncTag, error) {
	resp, err := h.authedRequest(ctx, tableID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateTableRequest{Schema: schema}).
		Put(tablePath)
	if err != nil {
		return models.SyncTag{}, transportError("create table request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncTag{}, err
	}

	return decodeSyncTag(resp.Body(), "create table")
}

// DeleteRemoteTable implements [TableSynchronizer] with
// DELETE /api/tables/{tableId}.
func (h *httpAdapter) DeleteRemoteTable(ctx context.Context, tableID string) error {
	resp, err := h.authedRequest(ctx, tableID).Delete(tablePath)
	if err != nil {
		return transportError("delete table request", err)
	}

	return mapHTTPError(resp)
}

// Pull implements [TableSynchronizer] with
// GET /api/tables/{tableId}/changes. The returned tag is validated before
// it reaches the caller.
func (h *httpAdapter) Pull(ctx context.Context, tableID string, since models.SyncTag) (models.IncomingModification, error) {
	resp, err := h.authedRequest(ctx, tableID).
		SetQueryParams(tagQuery(since)).
		Get(changesPath)
	if err != nil {
		return models.IncomingModification{}, transportError("pull request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IncomingModification{}, err
	}

	var changes models.ChangesResponse
	if err = json.Unmarshal(resp.Body(), &changes); err != nil {
		return models.IncomingModification{}, decodeError("pull", err)
	}
	if err = validTag("pull", changes.SyncTag); err != nil {
		return models.IncomingModification{}, err
	}
	if changes.SchemaChanged && changes.Schema == nil {
		return models.IncomingModification{}, decodeError("pull", fmt.Errorf("schema_changed without schema"))
	}

	h.logger.Debug().
		Str("func", "httpAdapter.Pull").
		Str("table_id", tableID).
		Int("rows", len(changes.Rows)).
		Bool("schema_changed", changes.SchemaChanged).
		Msg("pulled changes")

	return models.IncomingModification{
		Rows:          changes.Rows,
		TableSyncTag:  changes.SyncTag,
		SchemaChanged: changes.SchemaChanged,
		Schema:        changes.Schema,
	}, nil
}

// PushInsert implements [TableSynchronizer]: one PUT per row with an empty
// version tag.
func (h *httpAdapter) PushInsert(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error) {
	return h.pushRows(ctx, "push insert", tableID, base, rows, func(req *resty.Request, row models.Row) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.PutRowRequest{Values: row.Values}).
			Put(rowPath)
	})
}

// PushUpdate implements [TableSynchronizer]: one PUT per row carrying the
// version tag the local edit was based on.
func (h *httpAdapter) PushUpdate(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error) {
	return h.pushRows(ctx, "push update", tableID, base, rows, func(req *resty.Request, row models.Row) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.PutRowRequest{VersionTag: row.VersionTag, Values: row.Values}).
			Put(rowPath)
	})
}

// PushDelete implements [TableSynchronizer]: one DELETE per row.
func (h *httpAdapter) PushDelete(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error) {
	return h.pushRows(ctx, "push delete", tableID, base, rows, func(req *resty.Request, row models.Row) (*resty.Response, error) {
		return req.
			SetQueryParam("version_tag", row.VersionTag).
			Delete(rowPath)
	})
}

// pushRows sends rows sequentially and stops at the first failure. The table
// tag of the last confirmed row is the tag of the batch.
func (h *httpAdapter) pushRows(
	ctx context.Context,
	op, tableID string,
	base models.SyncTag,
	rows []models.Row,
	send func(req *resty.Request, row models.Row) (*resty.Response, error),
) (models.Modification, error) {
	mod := models.NewModification()
	current := base

	for idx, row := range rows {
		req := h.authedRequest(ctx, tableID).
			SetPathParam("rowId", row.RowID).
			SetQueryParams(tagQuery(current))

		resp, err := send(req, row)
		if err != nil {
			return mod, transportError(op+" request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			h.logger.Warn().
				Err(err).
				Str("func", "httpAdapter.pushRows").
				Str("op", op).
				Str("table_id", tableID).
				Str("row_id", row.RowID).
				Int("iteration", idx+1).
				Int("total", len(rows)).
				Msg("row rejected, stopping batch")
			return mod, fmt.Errorf("row %s: %w", row.RowID, err)
		}

		var written models.RowWriteResponse
		if err = json.Unmarshal(resp.Body(), &written); err != nil {
			return mod, decodeError(op, err)
		}
		if err = validTag(op, written.SyncTag); err != nil {
			return mod, err
		}

		mod.RowTags[row.RowID] = written.VersionTag
		current = written.SyncTag
		mod.TableSyncTag = current
	}

	return mod, nil
}

// GetSchema implements [TableSynchronizer] with
// GET /api/tables/{tableId}/schema.
func (h *httpAdapter) GetSchema(ctx context.Context, tableID string) (models.Schema, models.SyncTag, error) {
	resp, err := h.authedRequest(ctx, tableID).Get(schemaPath)
	if err != nil {
		return models.Schema{}, models.SyncTag{}, transportError("get schema request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Schema{}, models.SyncTag{}, err
	}

	var schemaResp models.SchemaResponse
	if err = json.Unmarshal(resp.Body(), &schemaResp); err != nil {
		return models.Schema{}, models.SyncTag{}, decodeError("get schema", err)
	}
	if err = validTag("get schema", schemaResp.SyncTag); err != nil {
		return models.Schema{}, models.SyncTag{}, err
	}

	return schemaResp.Schema, schemaResp.SyncTag, nil
}

// SetSchema implements [TableSynchronizer] with
// PUT /api/tables/{tableId}/schema.
func (h *httpAdapter) SetSchema(ctx context.Context, tableID string, current models.SyncTag, schema models.Schema) (models.SyncTag, error) {
	resp, err := h.authedRequest(ctx, tableID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SetSchemaRequest{SchemaETag: current.SchemaVersion, Schema: schema}).
		Put(schemaPath)
	if err != nil {
		return models.SyncTag{}, transportError("set schema request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncTag{}, err
	}

	return decodeSyncTag(resp.Body(), "set schema")
}

// GetManifest implements [FileTransport] with GET /api/manifest?tableId=.
func (h *httpAdapter) GetManifest(ctx context.Context, tableID string) ([]models.ManifestEntry, error) {
	resp, err := h.authedRequest(ctx, tableID).
		SetQueryParam("tableId", tableID).
		Get(manifestPath)
	if err != nil {
		return nil, transportError("manifest request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.ManifestEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, decodeError("manifest", err)
	}

	return entries, nil
}

// Download implements [FileTransport]. The body is streamed, not buffered.
// The Authorization header is sent only to the configured server: relative
// URLs and absolute URLs of the same origin.
func (h *httpAdapter) Download(ctx context.Context, fileURL string, w io.Writer) error {
	target, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("%w: download url %q: %w", ErrRemoteRejection, fileURL, err)
	}

	req := h.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	if h.sameOrigin(target) {
		req = h.withAuth(req)
	}

	resp, err := req.Get(fileURL)
	if err != nil {
		return transportError("download request", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		msg, _ := io.ReadAll(io.LimitReader(body, 512))
		return mapStatus(resp.StatusCode(), strings.TrimSpace(string(msg)))
	}

	if _, err = io.Copy(w, body); err != nil {
		return transportError("download body", err)
	}

	return nil
}

func (h *httpAdapter) sameOrigin(u *url.URL) bool {
	if !u.IsAbs() && u.Host == "" {
		return true
	}
	return strings.EqualFold(u.Scheme, h.baseURL.Scheme) && strings.EqualFold(u.Host, h.baseURL.Host)
}

func tagQuery(tag models.SyncTag) map[string]string {
	return map[string]string{
		"data_etag":   tag.DataVersion,
		"schema_etag": tag.SchemaVersion,
	}
}

func decodeSyncTag(body []byte, op string) (models.SyncTag, error) {
	var tagResp models.SyncTagResponse
	if err := json.Unmarshal(body, &tagResp); err != nil {
		return models.SyncTag{}, decodeError(op, err)
	}
	if err := validTag(op, tagResp.SyncTag); err != nil {
		return models.SyncTag{}, err
	}

	return tagResp.SyncTag, nil
}

// validTag refuses a tag the server should never have produced. The error
// carries both ErrRemoteRejection and models.ErrMalformedSyncTag.
func validTag(op string, tag models.SyncTag) error {
	if err := tag.Validate(); err != nil {
		return decodeError(op, err)
	}
	return nil
}
