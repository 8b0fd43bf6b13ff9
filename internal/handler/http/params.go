package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-table-sync/models"
)

// pathParam returns the unescaped value of a route parameter. chi matches
// on r.URL.RawPath when it is set, so only then do parameters such as
// "r%3A1" arrive escaped; otherwise the value is already decoded and may
// contain a literal "%".
func pathParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw, nil
	}

	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errInvalidPathParameter, key, err)
	}
	return value, nil
}

// tagFromQuery reads the table tag a client sends as its base.
func tagFromQuery(r *http.Request) models.SyncTag {
	q := r.URL.Query()
	return models.SyncTag{
		DataVersion:   q.Get("data_etag"),
		SchemaVersion: q.Get("schema_etag"),
	}
}
