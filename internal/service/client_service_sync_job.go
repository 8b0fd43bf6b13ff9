package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	processor SyncProcessor
	files     FileReconciler
	filesDir  string
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reportMu   sync.RWMutex
	lastReport *models.SyncReport
}

// NewClientSyncJob creates a clientSyncJob that calls processor.Run on a
// ticker. When filesDir is not empty, the files of every successfully synced
// table are reconciled into filesDir/<tableID> after the pass. The job is
// idle until Start is called.
func NewClientSyncJob(processor SyncProcessor, files FileReconciler, filesDir string, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		processor: processor,
		files:     files,
		filesDir:  filesDir,
		logger:    logger,
	}
}

// Start implements ClientSyncJob.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) LastReport() (models.SyncReport, bool) {
	j.reportMu.RLock()
	defer j.reportMu.RUnlock()

	if j.lastReport == nil {
		return models.SyncReport{}, false
	}
	return *j.lastReport, true
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	report, err := j.processor.Run(ctx)
	if errors.Is(err, ErrSyncInProgress) {
		j.logger.Debug().Str("func", "clientSyncJob.runOnce").Msg("previous sync still running, tick skipped")
		return
	}
	if err != nil {
		j.logger.Err(err).Str("func", "clientSyncJob.runOnce").Msg("sync pass aborted")
	}
	if report.NeedsReauth() {
		j.logger.Warn().Str("func", "clientSyncJob.runOnce").Msg("remote service refused credentials")
	}

	j.reportMu.Lock()
	j.lastReport = &report
	j.reportMu.Unlock()

	if j.files == nil || j.filesDir == "" || err != nil {
		return
	}
	for _, outcome := range report.Tables {
		if outcome.Status != models.OutcomeSuccess || outcome.Removed {
			continue
		}
		if _, filesErr := j.files.SyncTableFiles(ctx, outcome.TableID, filepath.Join(j.filesDir, outcome.TableID)); filesErr != nil {
			j.logger.Warn().
				Err(filesErr).
				Str("func", "clientSyncJob.runOnce").
				Str("table_id", outcome.TableID).
				Msg("file reconciliation failed")
		}
	}
}
