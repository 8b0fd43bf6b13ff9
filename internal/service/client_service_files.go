package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
	"github.com/MKhiriev/go-table-sync/models"
)

const (
	downloadRetries    = 2
	downloadRetryDelay = 500 * time.Millisecond
	tmpSuffix          = ".tmp"
)

type fileReconciler struct {
	files  adapter.FileTransport
	logger *logger.Logger

	retryDelay time.Duration
}

// NewFileReconciler constructs a FileReconciler downloading through files.
func NewFileReconciler(files adapter.FileTransport, logger *logger.Logger) FileReconciler {
	return &fileReconciler{
		files:      files,
		logger:     logger,
		retryDelay: downloadRetryDelay,
	}
}

func (r *fileReconciler) SyncTableFiles(ctx context.Context, tableID, localDir string) (models.FileReport, error) {
	entries, err := r.files.GetManifest(ctx, tableID)
	if err != nil {
		return models.FileReport{}, fmt.Errorf("get manifest of %s: %w", tableID, err)
	}

	return r.Reconcile(ctx, localDir, entries)
}

func (r *fileReconciler) Reconcile(ctx context.Context, localDir string, entries []models.ManifestEntry) (models.FileReport, error) {
	var report models.FileReport
	if localDir == "" {
		return report, ErrFilesDisabled
	}
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return report, fmt.Errorf("create files dir: %w", err)
	}

	var result *multierror.Error
	for _, entry := range entries {
		downloaded, err := r.reconcileEntry(ctx, localDir, entry)
		switch {
		case err != nil:
			report.Failed = append(report.Failed, entry.Filename)
			result = multierror.Append(result, fmt.Errorf("%s: %w", entry.Filename, err))
		case downloaded:
			report.Downloaded = append(report.Downloaded, entry.Filename)
		default:
			report.UpToDate = append(report.UpToDate, entry.Filename)
		}
	}

	r.logger.Info().
		Str("func", "fileReconciler.Reconcile").
		Str("dir", localDir).
		Int("downloaded", len(report.Downloaded)).
		Int("up_to_date", len(report.UpToDate)).
		Int("failed", len(report.Failed)).
		Msg("files reconciled")

	return report, result.ErrorOrNil()
}

// reconcileEntry reports whether the file had to be downloaded.
func (r *fileReconciler) reconcileEntry(ctx context.Context, localDir string, entry models.ManifestEntry) (bool, error) {
	want := entry.NormalizedHash()
	if want == "" || entry.DownloadURL == "" {
		return false, ErrInvalidManifest
	}

	target, err := resolveTarget(localDir, entry.Filename)
	if err != nil {
		return false, err
	}

	have, err := utils.FileContentHash(target)
	switch {
	case err == nil && normalizeHash(have) == want:
		return false, nil
	case err != nil && !errors.Is(err, utils.ErrFileNotFound):
		return false, err
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	if err = r.download(ctx, target, entry.DownloadURL, want); err != nil {
		return false, err
	}

	return true, nil
}

// download retries transport failures only. A non-2xx answer or a corrupted
// body is final for this run.
func (r *fileReconciler) download(ctx context.Context, target, url, want string) error {
	backoff := retry.WithMaxRetries(downloadRetries, retry.NewConstant(r.retryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := r.downloadOnce(ctx, target, url, want)
		if errors.Is(err, adapter.ErrTransport) {
			r.logger.Warn().Err(err).Str("func", "fileReconciler.download").Str("url", url).Msg("download failed, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// downloadOnce writes to "<target>.tmp", hashing the body on the way, and
// renames it over target once the hash matches.
func (r *fileReconciler) downloadOnce(ctx context.Context, target, url, want string) (err error) {
	tmp := target + tmpSuffix
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	hasher := utils.NewContentHasher()
	err = r.files.Download(ctx, url, io.MultiWriter(f, hasher))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if got := hasher.Sum(); normalizeHash(got) != want {
		return fmt.Errorf("%w: want %s, got %s", ErrHashMismatch, want, normalizeHash(got))
	}

	return os.Rename(tmp, target)
}

// resolveTarget joins name onto dir and refuses names leaving dir.
func resolveTarget(dir, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrPathEscapesDir, name)
	}

	target := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathEscapesDir, name)
	}

	return target, nil
}

func normalizeHash(h string) string {
	return models.ManifestEntry{ContentHash: h}.NormalizedHash()
}
