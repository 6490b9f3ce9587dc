// Package cas persists per-file analyses keyed by content hash.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
)

// formatVersion changes whenever the cache layout does. Caches of another version are discarded.
const formatVersion = 1

var (
	_ ports.DigestStore = (*Store)(nil)
	_ ports.DigestCache = (*Cache)(nil)
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cas: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cas: CBOR decoder initialization failed: " + err.Error())
	}
}

type cacheFile struct {
	Version int                        `cbor:"1,keyasint"`
	Entries map[uint64]domain.Analysis `cbor:"2,keyasint"`
}

// Store opens digest caches kept under <root>/.hoop/cache.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Open loads the cache under root. Unreadable contents are discarded with a warning.
func (s *Store) Open(root string) (ports.DigestCache, error) {
	path := domain.DefaultDigestCachePath(root)
	c := &Cache{path: path, entries: make(map[uint64]domain.Analysis)}

	//nolint:gosec // Path is built from the scan root
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	entries, err := decode(raw)
	if err != nil {
		s.logger.Warn(zerr.With(err, "path", path).Error())
		c.dirty = true
		return c, nil
	}
	c.entries = entries
	return c, nil
}

func decode(raw []byte) (map[uint64]domain.Analysis, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error())
	}
	defer dec.Close()

	data, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error())
	}

	var file cacheFile
	if err := decMode.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error())
	}
	if file.Version != formatVersion {
		return nil, zerr.With(domain.ErrStoreDecodeFailed, "version", file.Version)
	}
	if file.Entries == nil {
		file.Entries = make(map[uint64]domain.Analysis)
	}
	return file.Entries, nil
}

// Cache is an in-memory view of one cache file.
type Cache struct {
	path string

	mu      sync.RWMutex
	entries map[uint64]domain.Analysis
	dirty   bool
}

// Get returns the analysis stored under key.
func (c *Cache) Get(key uint64) (domain.Analysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.entries[key]
	return a, ok
}

// Put stores an analysis under key.
func (c *Cache) Put(key uint64, analysis domain.Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[key]; ok && old == analysis {
		return
	}
	c.entries[key] = analysis
	c.dirty = true
}

// Retain drops the analyses of content no longer present in the source tree.
func (c *Cache) Retain(keys []uint64) {
	keep := make(map[uint64]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if _, ok := keep[k]; !ok {
			delete(c.entries, k)
			c.dirty = true
		}
	}
}

// Len returns the number of cached analyses.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Flush writes the cache to disk if it changed since it was opened.
func (c *Cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	data, err := encMode.Marshal(cacheFile{Version: formatVersion, Entries: c.entries})
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreEncodeFailed.Error())
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreEncodeFailed.Error())
	}
	compressed := enc.EncodeAll(data, nil)
	_ = enc.Close()

	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", c.path)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, compressed, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", c.path)
	}

	c.dirty = false
	return nil
}
