// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

// spyProcessor считает вызовы Run и возвращает заданный отчёт.
type spyProcessor struct {
	calls  atomic.Int64
	report models.SyncReport
	err    error
}

func (s *spyProcessor) Run(_ context.Context) (models.SyncReport, error) {
	s.calls.Add(1)
	return s.report, s.err
}

func (s *spyProcessor) RecoverInFlight(_ context.Context) error { return nil }

// spyFiles запоминает, какие таблицы и каталоги пришли в SyncTableFiles.
type spyFiles struct {
	mu    sync.Mutex
	calls map[string]string
}

func (s *spyFiles) Reconcile(_ context.Context, _ string, _ []models.ManifestEntry) (models.FileReport, error) {
	return models.FileReport{}, nil
}

func (s *spyFiles) SyncTableFiles(_ context.Context, tableID, localDir string) (models.FileReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]string)
	}
	s.calls[tableID] = localDir
	return models.FileReport{}, nil
}

func (s *spyFiles) snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.calls))
	for k, v := range s.calls {
		out[k] = v
	}
	return out
}

func newTestJob(p SyncProcessor) *clientSyncJob {
	return NewClientSyncJob(p, nil, "", logger.Nop()).(*clientSyncJob)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsRun(t *testing.T) {
	spy := &spyProcessor{}
	job := newTestJob(spy)

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Run должен быть вызван несколько раз, вызвано: %d", got)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyProcessor{}
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newTestJob(&spyProcessor{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := newTestJob(&spyProcessor{})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyProcessor{}
	job := newTestJob(spy)

	// interval <= 0 → дефолт 5 минут: только первый прогон сразу после старта
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())

	job.Start(context.Background(), -time.Second)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(2), spy.calls.Load())
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := newTestJob(&spyProcessor{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestClientSyncJob_RunError_DoesNotStopJob(t *testing.T) {
	spy := &spyProcessor{err: assert.AnError}
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

// ── LastReport ───────────────────────────────────────────────────────────────

func TestClientSyncJob_LastReport(t *testing.T) {
	report := models.SyncReport{Tables: []models.TableOutcome{{TableID: "t1", Status: models.OutcomeNeedsReauth}}}
	job := newTestJob(&spyProcessor{report: report})

	_, ok := job.LastReport()
	assert.False(t, ok, "до первого прогона отчёта нет")

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool {
		_, ok := job.LastReport()
		return ok
	}, time.Second, 5*time.Millisecond)
	job.Stop()

	got, _ := job.LastReport()
	assert.True(t, got.NeedsReauth())
}

func TestClientSyncJob_InProgress_KeepsPreviousReport(t *testing.T) {
	job := newTestJob(&spyProcessor{err: ErrSyncInProgress})

	job.runOnce(context.Background())

	_, ok := job.LastReport()
	assert.False(t, ok)
}

// ── files ────────────────────────────────────────────────────────────────────

func TestClientSyncJob_ReconcilesFilesOfSyncedTables(t *testing.T) {
	dir := t.TempDir()
	files := &spyFiles{}
	processor := &spyProcessor{report: models.SyncReport{Tables: []models.TableOutcome{
		{TableID: "ok", Status: models.OutcomeSuccess},
		{TableID: "offline", Status: models.OutcomeTransportFailed},
		// удалена в этом проходе: манифеста уже нет
		{TableID: "purged", Status: models.OutcomeSuccess, Removed: true},
	}}}

	job := NewClientSyncJob(processor, files, dir, logger.Nop()).(*clientSyncJob)
	job.runOnce(context.Background())

	assert.Equal(t, map[string]string{"ok": filepath.Join(dir, "ok")}, files.snapshot())
}

func TestClientSyncJob_AbortedPass_SkipsFiles(t *testing.T) {
	files := &spyFiles{}
	processor := &spyProcessor{
		report: models.SyncReport{Tables: []models.TableOutcome{{TableID: "ok", Status: models.OutcomeSuccess}}},
		err:    assert.AnError,
	}

	job := NewClientSyncJob(processor, files, t.TempDir(), logger.Nop()).(*clientSyncJob)
	job.runOnce(context.Background())

	assert.Empty(t, files.snapshot())
}
