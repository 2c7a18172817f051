// Package store defines the key-value persistence abstraction and its
// file and SQLite backends.
package store

import "context"

// Persisted value keys. The dashboard document and the settings document
// are stored independently and each save replaces the whole value.
const (
	KeyDashboard = "bookmarkDashboard"
	KeySettings  = "dashboardSettings"
)

// Provider is the asynchronous key-value contract the engine persists
// through. Implementations must make each Save atomic from the caller's
// perspective: a concurrent Load observes either the old or the new value,
// never a partial write.
type Provider interface {
	// Load returns the value at key, or ok=false when the key is absent.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Save replaces the value at key.
	Save(ctx context.Context, key string, value []byte) error
	// Clear removes every key.
	Clear(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
