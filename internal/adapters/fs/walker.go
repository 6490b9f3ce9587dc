// Package fs provides file system adapters for scanning and placing pattern files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/hoop/internal/core/domain"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root in lexical order, skipping version control
// directories, the hoop workspace directory, and anything matching ignores.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.skipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if matchesAny(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skipDir(name string, ignores []string) bool {
	switch name {
	case ".git", ".jj", domain.HoopDirName:
		return true
	}
	return matchesAny(name, ignores)
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
