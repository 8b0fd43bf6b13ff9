package models

import (
	"errors"
	"fmt"
)

// ErrUnknownResolution is returned for resolutions outside the known set.
var ErrUnknownResolution = errors.New("unknown conflict resolution")

// Conflict pairs a locally edited row with the diverging server version of
// the same row id.
type Conflict struct {
	TableID string
	Local   LocalRow
	Server  Row
	// LocalIntent is the state the local row had before it became
	// CONFLICTING: INSERTING, UPDATING or DELETING.
	LocalIntent SyncState
}

// ConflictResolution is the explicit choice made by an external actor for a
// conflicting row. The engine never picks one by itself.
type ConflictResolution int

const (
	// TakeLocal keeps the local values and re-pushes them against the server
	// version tag.
	TakeLocal ConflictResolution = iota + 1
	// TakeServer discards the local edit in favour of the server version.
	TakeServer
)

// Validate rejects unknown resolutions.
func (r ConflictResolution) Validate() error {
	switch r {
	case TakeLocal, TakeServer:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownResolution, int(r))
}

// Resolve computes the local row that replaces the conflicting one. purge
// reports that the row must be removed locally instead.
func (c Conflict) Resolve(r ConflictResolution) (resolved LocalRow, purge bool, err error) {
	if err = r.Validate(); err != nil {
		return LocalRow{}, false, err
	}

	resolved = LocalRow{TableID: c.TableID}

	if r == TakeServer {
		if c.Server.Deleted {
			return LocalRow{}, true, nil
		}
		resolved.Row = c.Server.Clone()
		resolved.State = StateRest
		return resolved, false, nil
	}

	intent := c.LocalIntent
	if intent != StateDeleting {
		intent = StateUpdating
	}

	resolved.Row = c.Local.Row.Clone()
	resolved.Deleted = false

	switch {
	case c.Server.Deleted && intent == StateDeleting:
		return LocalRow{}, true, nil
	case c.Server.Deleted:
		// gone on the server: recreate it
		resolved.VersionTag = ""
		resolved.State = StateInserting
	default:
		resolved.VersionTag = c.Server.VersionTag
		resolved.State = intent
		resolved.Deleted = intent == StateDeleting
	}

	return resolved, false, nil
}
