package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

type syncProcessor struct {
	tables store.LocalTableStore
	remote adapter.TableSynchronizer
	logger *logger.Logger
	now    func() time.Time

	mu        sync.Mutex
	recovered bool
}

// NewSyncProcessor constructs a SyncProcessor driving tables against remote.
func NewSyncProcessor(tables store.LocalTableStore, remote adapter.TableSynchronizer, logger *logger.Logger) SyncProcessor {
	return &syncProcessor{
		tables: tables,
		remote: remote,
		logger: logger,
		now:    time.Now,
	}
}

// pushFunc is one of the Synchronizer push operations.
type pushFunc func(ctx context.Context, tableID string, base models.SyncTag, rows []models.Row) (models.Modification, error)

func (p *syncProcessor) Run(ctx context.Context) (models.SyncReport, error) {
	if !p.mu.TryLock() {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer p.mu.Unlock()

	ctx = p.logger.WithContext(ctx)
	report := models.SyncReport{StartedAt: p.now()}
	finish := func(err error) (models.SyncReport, error) {
		report.FinishedAt = p.now()
		return report, err
	}

	if !p.recovered {
		if err := p.recoverInFlight(ctx); err != nil {
			return finish(fmt.Errorf("recovery pass: %w", err))
		}
	}

	tables, err := p.tables.ListSyncTables(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "syncProcessor.Run").Msg("failed to list sync tables")
		return finish(fmt.Errorf("list sync tables: %w", err))
	}
	slices.SortFunc(tables, func(a, b models.Table) int { return strings.Compare(a.TableID, b.TableID) })

	for idx, table := range tables {
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.Tables = append(report.Tables, skipped(tables[idx:], ctxErr)...)
			return finish(ctxErr)
		}

		outcome := p.syncTable(ctx, table)
		report.Tables = append(report.Tables, outcome)

		if isFatalForPass(outcome.Err) {
			p.logger.Error().
				Err(outcome.Err).
				Str("func", "syncProcessor.Run").
				Str("table_id", table.TableID).
				Int("skipped", len(tables)-idx-1).
				Msg("local store failed, aborting sync pass")
			report.Tables = append(report.Tables, skipped(tables[idx+1:], nil)...)
			return finish(fmt.Errorf("table %s: %w", table.TableID, outcome.Err))
		}
	}

	p.logger.Info().
		Str("func", "syncProcessor.Run").
		Int("tables", len(tables)).
		Bool("failed", report.Err() != nil).
		Msg("sync pass finished")

	return finish(nil)
}

func skipped(tables []models.Table, err error) []models.TableOutcome {
	out := make([]models.TableOutcome, 0, len(tables))
	for _, t := range tables {
		out = append(out, models.TableOutcome{TableID: t.TableID, Status: models.OutcomeSkipped, Err: err})
	}
	return out
}

func (p *syncProcessor) RecoverInFlight(ctx context.Context) error {
	if !p.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer p.mu.Unlock()

	return p.recoverInFlight(p.logger.WithContext(ctx))
}

// recoverInFlight clears the markers left by an interrupted pass. The outcome
// of those pushes is unknown, so the rows stay in their pending state and the
// next push re-drives them.
func (p *syncProcessor) recoverInFlight(ctx context.Context) error {
	rows, tables, err := p.tables.ResetTransactioning(ctx)
	if err != nil {
		return err
	}
	p.recovered = true

	event := p.logger.Debug()
	if rows > 0 || tables > 0 {
		event = p.logger.Warn()
	}
	event.Str("func", "syncProcessor.recoverInFlight").
		Int64("rows", rows).
		Int64("tables", tables).
		Msg("cleared in-flight markers")

	return nil
}

// syncTable drives one table through its state machine.
func (p *syncProcessor) syncTable(ctx context.Context, table models.Table) models.TableOutcome {
	log := p.logger.WithTable(table.TableID)
	ctx = log.WithContext(ctx)

	outcome := models.TableOutcome{TableID: table.TableID}
	err := p.withTableTransaction(ctx, table.TableID, func() error {
		return p.driveTable(ctx, table, &outcome)
	})

	if err == nil && table.State != models.TableDeleting {
		err = p.tables.MarkTableSynced(ctx, table.TableID, p.now())
	}

	outcome.Err = err
	outcome.Status = classifyOutcome(err)
	outcome.Removed = err == nil && table.State == models.TableDeleting

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.Str("func", "syncProcessor.syncTable").
		Str("state", table.State.String()).
		Str("status", string(outcome.Status)).
		Int("pulled", outcome.Pulled).
		Int("inserted", outcome.Inserted).
		Int("updated", outcome.Updated).
		Int("deleted", outcome.Deleted).
		Int("conflicts", outcome.Conflicts).
		Msg("table synchronized")

	return outcome
}

// withTableTransaction brackets fn with the table TRANSACTIONING marker. The
// marker is cleared even when fn fails or ctx is cancelled.
func (p *syncProcessor) withTableTransaction(ctx context.Context, tableID string, fn func() error) error {
	if err := p.tables.SetTableTransactioning(ctx, tableID, true); err != nil {
		return err
	}

	runErr := fn()

	err := p.tables.SetTableTransactioning(context.WithoutCancel(ctx), tableID, false)
	switch {
	case err == nil:
		return runErr
	case errors.Is(err, store.ErrTableNotFound) && runErr == nil:
		// purged by the DELETING routine
		return nil
	case runErr == nil:
		return err
	default:
		return multierror.Append(runErr, err)
	}
}

func (p *syncProcessor) driveTable(ctx context.Context, table models.Table, outcome *models.TableOutcome) error {
	tag, err := p.tables.GetTableSyncTag(ctx, table.TableID)
	if err != nil {
		return err
	}

	switch table.State {
	case models.TableInserting:
		return p.insertTable(ctx, table, tag, outcome)
	case models.TableUpdating:
		return p.updateTable(ctx, table, tag, outcome)
	case models.TableDeleting:
		return p.deleteTable(ctx, table.TableID)
	default:
		return p.syncRows(ctx, table.TableID, tag, outcome)
	}
}

// insertTable creates the table remotely and pushes its pending rows.
func (p *syncProcessor) insertTable(ctx context.Context, table models.Table, tag models.SyncTag, outcome *models.TableOutcome) error {
	created, err := p.remote.CreateRemoteTable(ctx, table.TableID, table.Schema)
	if err != nil {
		return fmt.Errorf("create remote table: %w", err)
	}
	if !created.Equal(tag) {
		if err = p.tables.SetTableSyncTag(ctx, table.TableID, created); err != nil {
			return err
		}
	}

	if _, err = p.pushState(ctx, table.TableID, created, models.StateInserting, outcome); err != nil {
		return err
	}

	return p.tables.SetTableState(ctx, table.TableID, models.TableRest)
}

// updateTable sends the locally edited schema and then runs the row pass. If
// the remote schema moved on in the meantime, the pull brings it back and it
// replaces the local edit; the outcome still reports the rejection.
func (p *syncProcessor) updateTable(ctx context.Context, table models.Table, tag models.SyncTag, outcome *models.TableOutcome) error {
	log := logger.FromContext(ctx)

	updated, err := p.remote.SetSchema(ctx, table.TableID, tag, table.Schema)
	var schemaErr error
	switch {
	case err == nil:
		// only the schema half: foreign row changes must still be pulled
		tag = tag.WithSchema(updated.SchemaVersion)
		if err = p.tables.SetTableSyncTag(ctx, table.TableID, tag); err != nil {
			return err
		}
	case errors.Is(err, adapter.ErrVersionConflict):
		log.Warn().Err(err).Str("func", "syncProcessor.updateTable").Msg("remote schema changed, local schema edit dropped")
		schemaErr = fmt.Errorf("set schema: %w", err)
	default:
		return fmt.Errorf("set schema: %w", err)
	}

	if err = p.tables.SetTableState(ctx, table.TableID, models.TableRest); err != nil {
		return err
	}

	if err = p.syncRows(ctx, table.TableID, tag, outcome); err != nil {
		return err
	}

	return schemaErr
}

// deleteTable removes the table remotely first; the local copy is purged only
// after the remote side confirmed.
func (p *syncProcessor) deleteTable(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	err := p.remote.DeleteRemoteTable(ctx, tableID)
	if errors.Is(err, adapter.ErrNotFound) {
		log.Info().Str("func", "syncProcessor.deleteTable").Msg("table already gone remotely")
		err = nil
	}
	if err != nil {
		return fmt.Errorf("delete remote table: %w", err)
	}

	return p.tables.DeleteTablePermanently(ctx, tableID)
}

// syncRows is the REST routine: pull, then push inserts, updates and deletes.
// A rejected batch does not stop the following ones; a transport failure
// does.
func (p *syncProcessor) syncRows(ctx context.Context, tableID string, tag models.SyncTag, outcome *models.TableOutcome) error {
	tag, err := p.pull(ctx, tableID, tag, outcome)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, state := range []models.SyncState{models.StateInserting, models.StateUpdating, models.StateDeleting} {
		tag, err = p.pushState(ctx, tableID, tag, state, outcome)
		if err == nil {
			continue
		}
		result = multierror.Append(result, err)
		if !errors.Is(err, adapter.ErrRemoteRejection) || errors.Is(err, adapter.ErrUnauthorized) {
			break
		}
	}

	return result.ErrorOrNil()
}

// pull merges the remote delta into the store and advances the tag only after
// the merge committed.
func (p *syncProcessor) pull(ctx context.Context, tableID string, since models.SyncTag, outcome *models.TableOutcome) (models.SyncTag, error) {
	log := logger.FromContext(ctx)

	incoming, err := p.remote.Pull(ctx, tableID, since)
	if err != nil {
		return since, fmt.Errorf("pull: %w", err)
	}

	states, err := p.tables.GetRowStates(ctx, tableID)
	if err != nil {
		return since, err
	}

	dirty := make(map[string]models.LocalRow)
	for _, state := range dirtyStatesOf(incoming.Rows, states) {
		rows, rowsErr := p.tables.GetRowsByState(ctx, tableID, state)
		if rowsErr != nil {
			return since, rowsErr
		}
		for _, row := range rows {
			dirty[row.RowID] = row
		}
	}

	plan := partitionIncoming(incoming, states, dirty)

	if !plan.changes.IsEmpty() {
		if err = p.tables.ApplyIncoming(ctx, tableID, plan.changes); err != nil {
			return since, err
		}
	}
	for _, state := range []models.SyncState{models.StateInserting, models.StateUpdating, models.StateDeleting} {
		if rowTags := plan.echoes[state]; len(rowTags) > 0 {
			if err = p.tables.ConfirmPushed(ctx, tableID, state, rowTags); err != nil {
				return since, err
			}
		}
	}

	outcome.Pulled += len(incoming.Rows)
	outcome.Conflicts += len(plan.changes.Conflicts)

	log.Debug().
		Str("func", "syncProcessor.pull").
		Int("rows", len(incoming.Rows)).
		Int("inserts", len(plan.changes.Inserts)).
		Int("updates", len(plan.changes.Updates)).
		Int("deletes", len(plan.changes.Deletes)).
		Int("conflicts", len(plan.changes.Conflicts)).
		Int("echoes", plan.echoCount()).
		Bool("schema_changed", plan.changes.Schema != nil).
		Msg("pulled changes merged")

	next := incoming.TableSyncTag
	if next.IsZero() || next.Equal(since) {
		return since, nil
	}
	if err = p.tables.SetTableSyncTag(ctx, tableID, next); err != nil {
		return since, err
	}

	return next, nil
}

// pushState pushes every pending row of one state that is not already in
// flight. Confirmed rows are written back even when the batch failed; the
// table tag advances only for a fully confirmed batch.
func (p *syncProcessor) pushState(ctx context.Context, tableID string, base models.SyncTag, state models.SyncState, outcome *models.TableOutcome) (models.SyncTag, error) {
	log := logger.FromContext(ctx)

	pending, err := p.tables.GetRowsByState(ctx, tableID, state)
	if err != nil {
		return base, err
	}
	if len(pending) == 0 {
		return base, nil
	}

	ids := models.RowIDs(pending)
	if err = p.tables.SetRowsTransactioning(ctx, tableID, ids, true); err != nil {
		return base, err
	}

	rows := make([]models.Row, 0, len(pending))
	for _, r := range pending {
		rows = append(rows, r.Row)
	}

	mod, pushErr := p.pushFor(state)(ctx, tableID, base, rows)

	// the remote side committed these rows: record that whatever ctx says
	storeCtx := context.WithoutCancel(ctx)
	if len(mod.RowTags) > 0 {
		if err = p.tables.ConfirmPushed(storeCtx, tableID, state, mod.RowTags); err != nil {
			return base, err
		}
	}

	rest := make([]string, 0, len(ids)-len(mod.RowTags))
	for _, id := range ids {
		if _, ok := mod.RowTags[id]; !ok {
			rest = append(rest, id)
		}
	}
	if len(rest) > 0 {
		if err = p.tables.SetRowsTransactioning(storeCtx, tableID, rest, false); err != nil {
			return base, err
		}
	}

	countPushed(outcome, state, len(mod.RowTags))

	if pushErr != nil {
		log.Warn().
			Err(pushErr).
			Str("func", "syncProcessor.pushState").
			Str("state", state.String()).
			Int("confirmed", len(mod.RowTags)).
			Int("pending", len(rest)).
			Msg("push batch failed")
		return base, fmt.Errorf("push %s: %w", state, pushErr)
	}

	if mod.TableSyncTag.IsZero() || mod.TableSyncTag.Equal(base) {
		return base, nil
	}
	if err = p.tables.SetTableSyncTag(ctx, tableID, mod.TableSyncTag); err != nil {
		return base, err
	}

	return mod.TableSyncTag, nil
}

func (p *syncProcessor) pushFor(state models.SyncState) pushFunc {
	switch state {
	case models.StateInserting:
		return p.remote.PushInsert
	case models.StateUpdating:
		return p.remote.PushUpdate
	default:
		return p.remote.PushDelete
	}
}

func countPushed(outcome *models.TableOutcome, state models.SyncState, n int) {
	switch state {
	case models.StateInserting:
		outcome.Inserted += n
	case models.StateUpdating:
		outcome.Updated += n
	case models.StateDeleting:
		outcome.Deleted += n
	}
}
