package service

import (
	"maps"

	"github.com/MKhiriev/go-table-sync/models"
)

// mergePlan is a pulled delta split against the local row states.
type mergePlan struct {
	changes models.IncomingChanges
	// echoes are dirty rows the pull shows already applied remotely, keyed
	// by local state: a push whose confirmation never reached the store.
	echoes map[models.SyncState]map[string]string
}

func (m mergePlan) echoCount() int {
	n := 0
	for _, rows := range m.echoes {
		n += len(rows)
	}
	return n
}

// partitionIncoming stages every pulled row:
//   - unknown locally: insert, unless the row is deleted remotely;
//   - REST locally: update, or delete when the row is deleted remotely;
//   - dirty locally: conflict, unless the pulled version is exactly what the
//     local edit would produce.
//
// dirty holds the local rows of pending states, keyed by row id. A dirty row
// missing from it is always staged as a conflict.
func partitionIncoming(incoming models.IncomingModification, states models.RowStates, dirty map[string]models.LocalRow) mergePlan {
	plan := mergePlan{echoes: make(map[models.SyncState]map[string]string)}

	for _, row := range incoming.Rows {
		state, known := states[row.RowID]

		switch {
		case !known && row.Deleted:
			// created and deleted remotely before we ever saw it
		case !known:
			plan.changes.Inserts = append(plan.changes.Inserts, row)
		case state == models.StateRest && row.Deleted:
			plan.changes.Deletes = append(plan.changes.Deletes, row)
		case state == models.StateRest:
			plan.changes.Updates = append(plan.changes.Updates, row)
		case state.IsDirty():
			if local, ok := dirty[row.RowID]; ok && isEcho(state, local, row) {
				if plan.echoes[state] == nil {
					plan.echoes[state] = make(map[string]string)
				}
				plan.echoes[state][row.RowID] = row.VersionTag
				continue
			}
			plan.changes.Conflicts = append(plan.changes.Conflicts, row)
		}
	}

	if incoming.SchemaChanged && incoming.Schema != nil {
		schema := *incoming.Schema
		plan.changes.Schema = &schema
	}

	return plan
}

func isEcho(state models.SyncState, local models.LocalRow, remote models.Row) bool {
	switch state {
	case models.StateInserting, models.StateUpdating:
		return !remote.Deleted && sameValues(local.Values, remote.Values)
	case models.StateDeleting:
		return remote.Deleted
	default:
		return false
	}
}

// sameValues treats a missing cell and an empty one alike.
func sameValues(a, b map[string]string) bool {
	return maps.EqualFunc(compact(a), compact(b), func(x, y string) bool { return x == y })
}

func compact(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// dirtyStatesOf returns the pending states touched by the pulled rows.
func dirtyStatesOf(rows []models.Row, states models.RowStates) []models.SyncState {
	seen := make(map[models.SyncState]bool)
	var out []models.SyncState
	for _, row := range rows {
		state, ok := states[row.RowID]
		if !ok || seen[state] {
			continue
		}
		switch state {
		case models.StateInserting, models.StateUpdating, models.StateDeleting:
			seen[state] = true
			out = append(out, state)
		}
	}
	return out
}
