package http

import (
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

// manifest handles GET /api/manifest?tableId=.
func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("tableId")

	entries, err := h.services.TableService.Manifest(r.Context(), tableID)
	if err != nil {
		writeServiceError(w, r, "*Handler.manifest", err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// downloadFile handles GET /api/files/{tableId}/{name}. Range and
// conditional requests are served by [http.ServeContent].
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	tableID, err := pathParam(r, "tableId")
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadFile", err)
		return
	}
	name, err := pathParam(r, "*")
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadFile", err)
		return
	}

	f, err := h.services.TableService.OpenFile(r.Context(), tableID, name)
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadFile", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadFile", err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("func", "*Handler.downloadFile").
		Str("table_id", tableID).
		Str("file", name).
		Int64("size", info.Size()).
		Msg("serving file")

	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
