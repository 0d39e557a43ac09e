// Package local provides a filesystem-backed implementation of blob.Store.
package local

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nwatkins/wishlist/internal/blob"
)

// PhotoPrefix is the path prefix under which item photos are stored and
// served.
const PhotoPrefix = "itemPhotos"

// Ensure Store implements blob.Store
var _ blob.Store = (*Store)(nil)

// Store implements blob.Store on the local filesystem. Blobs are written
// under <baseDir>/itemPhotos and served under <baseURL>/itemPhotos.
type Store struct {
	baseDir string
	baseURL string
}

// New creates a local blob store rooted at baseDir. baseURL is the public
// URL prefix the server exposes the directory under.
func New(baseDir, baseURL string) (*Store, error) {
	dir := filepath.Join(baseDir, PhotoPrefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &Store{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir returns the directory photos are written to, for static serving.
func (s *Store) Dir() string {
	return filepath.Join(s.baseDir, PhotoPrefix)
}

// Put writes the blob and returns its public URL. The stored name is
// prefixed with a fresh UUID so repeated uploads of the same file name
// never clobber an earlier photo.
func (s *Store) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := uuid.New().String() + "_" + sanitize(name)
	path := filepath.Join(s.Dir(), stored)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.baseURL + "/" + PhotoPrefix + "/" + url.PathEscape(stored), nil
}

// sanitize strips any directory components and replaces characters that are
// unsafe in a stored file name.
func sanitize(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "photo"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
