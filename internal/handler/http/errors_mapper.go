package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPathEscapesDir:      http.StatusBadRequest,
	models.ErrMalformedSyncTag:     http.StatusBadRequest,
	errInvalidPathParameter:        http.StatusBadRequest,

	service.ErrTableNotFound: http.StatusNotFound,
	service.ErrRowNotFound:   http.StatusNotFound,
	service.ErrFileNotFound:  http.StatusNotFound,

	service.ErrStaleVersionTag:  http.StatusConflict,
	service.ErrStaleSchemaTag:   http.StatusConflict,
	service.ErrRowAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status and writes it as an error body.
// Details of server-side failures stay in the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
