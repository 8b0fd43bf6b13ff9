package models

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when a persisted state value is outside the
// closed set of known states.
var ErrUnknownState = errors.New("unknown sync state")

// SyncState is the per-row synchronization state. Values are persisted as
// integers and must stay stable.
type SyncState int

const (
	StateRest SyncState = iota
	StateInserting
	StateUpdating
	StateDeleting
	StateConflicting
)

var syncStateNames = map[SyncState]string{
	StateRest:        "rest",
	StateInserting:   "inserting",
	StateUpdating:    "updating",
	StateDeleting:    "deleting",
	StateConflicting: "conflicting",
}

// ParseSyncState converts a persisted integer into a SyncState, rejecting
// anything outside the known set.
func ParseSyncState(v int) (SyncState, error) {
	s := SyncState(v)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate returns ErrUnknownState for values outside the closed set.
func (s SyncState) Validate() error {
	if _, ok := syncStateNames[s]; !ok {
		return fmt.Errorf("%w: row state %d", ErrUnknownState, int(s))
	}
	return nil
}

func (s SyncState) String() string {
	if name, ok := syncStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SyncState(%d)", int(s))
}

// IsDirty reports whether the row carries a local change not yet confirmed by
// the remote service.
func (s SyncState) IsDirty() bool {
	return s == StateInserting || s == StateUpdating || s == StateDeleting || s == StateConflicting
}

// TableState is the table-level synchronization state. A table takes part in
// per-row sync only while it is at rest.
type TableState int

const (
	TableRest TableState = iota
	TableInserting
	TableUpdating
	TableDeleting
)

var tableStateNames = map[TableState]string{
	TableRest:      "rest",
	TableInserting: "inserting",
	TableUpdating:  "updating",
	TableDeleting:  "deleting",
}

// ParseTableState converts a persisted integer into a TableState.
func ParseTableState(v int) (TableState, error) {
	s := TableState(v)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate returns ErrUnknownState for values outside the closed set.
func (s TableState) Validate() error {
	if _, ok := tableStateNames[s]; !ok {
		return fmt.Errorf("%w: table state %d", ErrUnknownState, int(s))
	}
	return nil
}

func (s TableState) String() string {
	if name, ok := tableStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TableState(%d)", int(s))
}
