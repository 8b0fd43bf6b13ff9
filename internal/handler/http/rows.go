package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

func (h *Handler) rowParams(r *http.Request) (string, string, error) {
	tableID, err := pathParam(r, "tableId")
	if err != nil {
		return "", "", err
	}
	rowID, err := pathParam(r, "rowId")
	if err != nil {
		return "", "", err
	}
	return tableID, rowID, nil
}

// putRow handles PUT /api/tables/{tableId}/rows/{rowId}. An empty
// version_tag in the body inserts, a non-empty one updates.
func (h *Handler) putRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tableID, rowID, err := h.rowParams(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.putRow", err)
		return
	}

	var req models.PutRowRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.putRow").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.TableService.PutRow(r.Context(), tableID, rowID, tagFromQuery(r), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.putRow", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// deleteRow handles DELETE /api/tables/{tableId}/rows/{rowId}?version_tag=.
func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request) {
	tableID, rowID, err := h.rowParams(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteRow", err)
		return
	}

	versionTag := r.URL.Query().Get("version_tag")
	resp, err := h.services.TableService.DeleteRow(r.Context(), tableID, rowID, versionTag, tagFromQuery(r))
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteRow", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
