package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

// newTestHandler создаёт Handler с nop-логгером (без вывода в stdout).
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func okHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{name: "custom id reused", incoming: "my-custom-trace-id", wantReuse: true},
		{name: "uuid reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantReuse: true},
		{name: "missing id generated", incoming: ""},
		{name: "too long id replaced", incoming: strings.Repeat("a", maxTraceIDLen+1)},
		{name: "id with spaces replaced", incoming: "a b"},
		{name: "non-ascii id replaced", incoming: "трасса"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", got)
			}
			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTraceID_UniqueIDs(t *testing.T) {
	h := newTestHandler()
	mw := h.withTraceID(okHandler(http.StatusOK, ""))

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-ctx")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-ctx"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			status: http.StatusOK,
			body:   "OK",
			wantContains: []string{
				`"level":"info"`, `"method":"GET"`, `"uri":"/test"`, `"status":200`, `"size":2`, `"duration":`,
			},
		},
		{
			name:         "PUT 409",
			method:       http.MethodPut,
			status:       http.StatusConflict,
			body:         `{"error":"stale"}`,
			wantContains: []string{`"level":"info"`, `"method":"PUT"`, `"status":409`, `"size":17`},
		},
		{
			name:         "500 logged as error",
			method:       http.MethodGet,
			status:       http.StatusInternalServerError,
			wantContains: []string{`"level":"error"`, `"status":500`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			mw := h.withTraceID(h.withLogging(okHandler(tt.status, tt.body)))
			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, httptest.NewRequest(tt.method, "/test", nil))

			assert.Equal(t, tt.status, rr.Code)
			for _, s := range tt.wantContains {
				assert.Contains(t, buf.String(), s)
			}
			assert.Contains(t, buf.String(), `"trace_id":`)
		})
	}
}

func TestWithLogging_RouteFields(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	r := chi.NewRouter()
	r.Use(h.withTraceID, h.withLogging)
	r.Get("/api/tables/{tableId}/changes", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tables/t1/changes", nil))

	assert.Contains(t, buf.String(), `"route":"/api/tables/{tableId}/changes"`)
	assert.Contains(t, buf.String(), `"table_id":"t1"`)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{name: "disabled, no header", wantStatus: http.StatusOK},
		{name: "disabled, any header", header: "Bearer whatever", wantStatus: http.StatusOK},
		{name: "exact match", configured: "Bearer abc", header: "Bearer abc", wantStatus: http.StatusOK},
		{name: "missing header", configured: "Bearer abc", wantStatus: http.StatusUnauthorized},
		{name: "different token", configured: "Bearer abc", header: "Bearer abd", wantStatus: http.StatusUnauthorized},
		{name: "prefix only", configured: "Bearer abc", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "case matters", configured: "Bearer abc", header: "bearer abc", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), authHeader: tt.configured}

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(okHandler(http.StatusOK, "ok")).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
			}
		})
	}
}

// ── withGZip ─────────────────────────────────────────────────────────────────

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	b, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(b)
}

func TestWithGZip_Responses(t *testing.T) {
	big := `{"rows":[` + strings.Repeat(`{"row_id":"r"},`, 500) + `{}]}`

	tests := []struct {
		name           string
		acceptEncoding string
		next           http.Handler
		wantGzip       bool
		wantBody       string
	}{
		{name: "json compressed", acceptEncoding: "gzip", next: jsonHandler(http.StatusOK, `{"a":1}`), wantGzip: true, wantBody: `{"a":1}`},
		{name: "large json compressed", acceptEncoding: "gzip, deflate", next: jsonHandler(http.StatusOK, big), wantGzip: true, wantBody: big},
		{name: "json error compressed", acceptEncoding: "gzip", next: jsonHandler(http.StatusConflict, `{"error":"x"}`), wantGzip: true, wantBody: `{"error":"x"}`},
		{name: "client without gzip", next: jsonHandler(http.StatusOK, `{"a":1}`), wantBody: `{"a":1}`},
		{name: "plain text untouched", acceptEncoding: "gzip", next: okHandler(http.StatusOK, "hello"), wantBody: "hello"},
		{name: "no content untouched", acceptEncoding: "gzip", next: jsonHandler(http.StatusNoContent, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(tt.next).ServeHTTP(rr, req)

			if tt.wantGzip {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWithGZip_VaryHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(okHandler(http.StatusOK, "x")).ServeHTTP(rr, req)

	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
}

func TestWithGZip_RequestBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"values":{"a":"1"}}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/test", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"values":{"a":"1"}}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/test", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "invalid gzip data", resp.Error)
}

// ── responseWriter ───────────────────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	t.Run("first WriteHeader wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Write implies 200 and counts bytes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		_, err := w.Write([]byte("hello "))
		require.NoError(t, err)
		_, err = w.Write([]byte("world"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 11, w.size)
		assert.Equal(t, "hello world", rr.Body.String())
	})

	t.Run("unwrap", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}
		assert.Same(t, rr, w.Unwrap())
	})
}
