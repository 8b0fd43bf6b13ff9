// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/service"
)

// syncWorker runs the periodic sync pass.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncWorker wraps job so that it is driven by the Workers lifecycle.
// A zero interval falls back to the job's default.
func NewSyncWorker(job service.ClientSyncJob, cfg config.ClientWorkers) Worker {
	return &syncWorker{job: job, interval: cfg.SyncInterval}
}

func (w *syncWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
