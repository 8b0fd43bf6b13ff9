package utils

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
)

// ContentHashPrefix prefixes every content hash produced by this package, so
// the algorithm stays explicit on the wire.
const ContentHashPrefix = "md5:"

// ErrFileNotFound is returned by FileContentHash when the file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ContentHasher is an io.Writer computing the "md5:<hex>" digest of what was
// written to it. Tee a download through it to hash while writing.
type ContentHasher struct {
	h hash.Hash
}

func NewContentHasher() *ContentHasher {
	return &ContentHasher{h: md5.New()}
}

func (c *ContentHasher) Write(p []byte) (int, error) {
	return c.h.Write(p)
}

// Sum returns the digest of everything written so far.
func (c *ContentHasher) Sum() string {
	return ContentHashPrefix + hex.EncodeToString(c.h.Sum(nil))
}

// FileContentHash streams the file at path through a [ContentHasher]. It
// returns ErrFileNotFound (wrapped) when the file is missing, so callers can
// treat it as absent.
func FileContentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := NewContentHasher()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return h.Sum(), nil
}
