// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

// listTables handles GET /api/tables.
func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.services.TableService.ListTables(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listTables", err)
		return
	}

	utils.WriteJSON(w, tables, http.StatusOK)
}

// createTable handles PUT /api/tables/{tableId}. Creating an existing table
// returns its current tag.
func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tableID, err := pathParam(r, "tableId")
	if err != nil {
		writeServiceError(w, r, "*Handler.createTable", err)
		return
	}

	var req models.CreateTableRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createTable").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	tag, err := h.services.TableService.CreateTable(r.Context(), tableID, req.Schema)
	if err != nil {
		writeServiceError(w, r, "*Handler.createTable", err)
		return
	}

	utils.WriteJSON(w, models.SyncTagResponse{SyncTag: tag}, http.StatusOK)
}

// deleteTable handles DELETE /api/tables/{tableId}.
func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := pathParam(r, "tableId")
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteTable", err)
		return
	}

	if err = h.services.TableService.DeleteTable(r.Context(), tableID); err != nil {
		writeServiceError(w, r, "*Handler.deleteTable", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// changes handles GET /api/tables/{tableId}/changes?data_etag=&schema_etag=.
func (h *Handler) changes(w http.ResponseWriter, r *http.Request) {
	tableID, err := pathParam(r, "tableId")
	if err != nil {
		writeServiceError(w, r, "*Handler.changes", err)
		return
	}

	resp, err := h.services.TableService.Changes(r.Context(), tableID, tagFromQuery(r))
	if err != nil {
		writeServiceError(w, r, "*Handler.changes", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getSchema(w http.ResponseWriter, r *http.Request) {
	tableID, err := pathParam(r, "tableId")
	if err != nil {
		writeServiceError(w, r, "*Handler.getSchema", err)
		return
	}

	resp, err := h.services.TableService.GetSchema(r.Context(), tableID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getSchema", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// setSchema handles PUT /api/tables/{tableId}/schema. The body carries the
// schema tag the new schema is based on.
func (h *Handler) setSchema(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tableID, err := pathParam(r, "tableId")
	if err != nil {
		writeServiceError(w, r, "*Handler.setSchema", err)
		return
	}

	var req models.SetSchemaRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setSchema").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	tag, err := h.services.TableService.SetSchema(r.Context(), tableID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.setSchema", err)
		return
	}

	utils.WriteJSON(w, models.SyncTagResponse{SyncTag: tag}, http.StatusOK)
}
