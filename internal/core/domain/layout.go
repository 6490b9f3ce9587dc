package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// HoopDirName is the name of the internal workspace directory.
	HoopDirName = ".hoop"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// DigestCacheFile is the name of the persisted digest cache.
	DigestCacheFile = "digests.cbor.zst"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hoop.yaml"

	// OutputDirName is the directory under the destination root that receives reports.
	OutputDirName = "output"

	// TimestampFormat is appended to report file names.
	TimestampFormat = "2006-01-02_15-04-05"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDigestCachePath returns the digest cache location relative to root.
// It joins .hoop, cache, and digests.cbor.zst.
func DefaultDigestCachePath(root string) string {
	return filepath.Join(root, HoopDirName, CacheDirName, DigestCacheFile)
}

// GroupName returns the folder name shared by every copy of one digest within a worker.
func GroupName(sequence int, digest string) string {
	return fmt.Sprintf("%03d_%s", sequence, digest)
}
