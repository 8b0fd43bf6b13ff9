package models

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// OutcomeStatus is the per-table result of a sync run.
type OutcomeStatus string

const (
	OutcomeSuccess          OutcomeStatus = "success"
	OutcomeTransportFailed  OutcomeStatus = "transport_failed"
	OutcomeRejected         OutcomeStatus = "rejected"
	OutcomeNeedsReauth      OutcomeStatus = "needs_reauth"
	OutcomeMalformedTag     OutcomeStatus = "malformed_tag"
	OutcomeLocalStoreFailed OutcomeStatus = "local_store_failed"
	// OutcomeSkipped marks tables not attempted because the run was aborted.
	OutcomeSkipped OutcomeStatus = "skipped"
)

// TableOutcome reports what happened to one table during a run.
type TableOutcome struct {
	TableID string
	Status  OutcomeStatus
	Err     error
	// Removed is set when the pass deleted the table on both sides.
	Removed bool

	Pulled    int
	Inserted  int
	Updated   int
	Deleted   int
	Conflicts int
}

// SyncReport is returned by every sync run.
type SyncReport struct {
	Tables     []TableOutcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// Err aggregates the errors of all failed tables, or returns nil.
func (r SyncReport) Err() error {
	var result *multierror.Error
	for _, t := range r.Tables {
		if t.Err != nil {
			result = multierror.Append(result, fmt.Errorf("table %s: %w", t.TableID, t.Err))
		}
	}
	return result.ErrorOrNil()
}

// Outcome returns the outcome for tableID.
func (r SyncReport) Outcome(tableID string) (TableOutcome, bool) {
	for _, t := range r.Tables {
		if t.TableID == tableID {
			return t, true
		}
	}
	return TableOutcome{}, false
}

// NeedsReauth reports whether any table was rejected for authorization.
func (r SyncReport) NeedsReauth() bool {
	for _, t := range r.Tables {
		if t.Status == OutcomeNeedsReauth {
			return true
		}
	}
	return false
}
