// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

// classifyOutcome maps the error of a table pass onto the status reported to
// the caller. The order matters: a local store failure hides everything else.
func classifyOutcome(err error) models.OutcomeStatus {
	switch {
	case err == nil:
		return models.OutcomeSuccess
	case errors.Is(err, store.ErrLocalStore):
		return models.OutcomeLocalStoreFailed
	case errors.Is(err, models.ErrMalformedSyncTag) && !errors.Is(err, adapter.ErrRemoteRejection):
		// a persisted tag that no longer parses; a bad tag from the server is
		// a rejection like any other bad response
		return models.OutcomeMalformedTag
	case errors.Is(err, adapter.ErrUnauthorized):
		return models.OutcomeNeedsReauth
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return models.OutcomeTransportFailed
	case errors.Is(err, store.ErrTableNotFound):
		return models.OutcomeSkipped
	default:
		return models.OutcomeRejected
	}
}

// isFatalForPass reports whether the remaining tables must not be touched.
func isFatalForPass(err error) bool {
	return errors.Is(err, store.ErrLocalStore)
}
