// Package blob provides abstractions for storing uploaded item photos.
package blob

import "context"

// Store defines the interface for photo blob storage.
// Implementations return a publicly fetchable URL for each stored blob,
// which is what gets persisted on the item record.
type Store interface {
	// Put stores the blob under a path derived from name and returns its
	// public URL. The stored path is uniqued per upload: two uploads with
	// the same file name never overwrite one another.
	Put(ctx context.Context, name string, data []byte) (string, error)
}
