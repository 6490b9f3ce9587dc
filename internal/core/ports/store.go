package ports

import "go.trai.ch/hoop/internal/core/domain"

// DigestStore opens persisted analysis caches.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DigestStore interface {
	// Open loads the cache kept under root. A missing cache yields an empty one.
	Open(root string) (DigestCache, error)
}

// DigestCache holds per-file analyses keyed by a content hash.
type DigestCache interface {
	// Get returns the cached analysis for key. It is safe for concurrent use.
	Get(key uint64) (domain.Analysis, bool)

	// Put records an analysis. Entries are persisted by Flush.
	Put(key uint64, analysis domain.Analysis)

	// Retain drops every entry whose key is not in keys.
	Retain(keys []uint64)

	// Flush writes pending entries to durable storage.
	Flush() error
}
