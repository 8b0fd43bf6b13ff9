package models

import "strings"

// MD5HashPrefix prefixes content hashes in file manifests.
const MD5HashPrefix = "md5:"

// ManifestEntry describes one file the remote service expects to exist
// locally.
type ManifestEntry struct {
	Filename    string `json:"filename"`
	ContentHash string `json:"content_hash"`
	DownloadURL string `json:"download_url"`
}

// NormalizedHash returns the lower-case hex digest without the "md5:" prefix.
func (e ManifestEntry) NormalizedHash() string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e.ContentHash), MD5HashPrefix))
}

// FileReport summarizes a manifest reconciliation.
type FileReport struct {
	Downloaded []string
	UpToDate   []string
	Failed     []string
}
