package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// JSON API
		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Get("/api/tables", h.listTables)
			r.Route("/api/tables/{tableId}", func(r chi.Router) {
				r.Put("/", h.createTable)
				r.Delete("/", h.deleteTable)
				r.Get("/changes", h.changes)
				r.Get("/schema", h.getSchema)
				r.Put("/schema", h.setSchema)
				r.Put("/rows/{rowId}", h.putRow)
				r.Delete("/rows/{rowId}", h.deleteRow)
			})
			r.Get("/api/manifest", h.manifest)
		})

		// file bodies are streamed as stored
		r.Get("/api/files/{tableId}/*", h.downloadFile)
	})

	return router
}
