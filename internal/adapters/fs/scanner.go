package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.SourceScanner = (*Scanner)(nil)
	_ ports.SourceReader  = (*Scanner)(nil)
)

// Scanner finds pattern files and reads their contents.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan returns every file under root whose extension is listed, in walk order.
func (s *Scanner) Scan(root string, extensions []string, itemField int) ([]domain.Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrSourceNotFound, "path", root)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrSourceNotFound, "path", root)
	}

	wanted := make([]string, len(extensions))
	for i, ext := range extensions {
		wanted[i] = normalizeExt(ext)
	}

	var sources []domain.Source
	for path := range s.walker.WalkFiles(root, nil) {
		name := filepath.Base(path)
		if !slices.Contains(wanted, strings.ToLower(filepath.Ext(name))) {
			continue
		}
		sources = append(sources, domain.Source{
			Path:   path,
			Name:   name,
			ItemID: ItemID(name, itemField),
		})
	}
	return sources, nil
}

// List returns the names of the regular files directly inside dir, sorted.
func (s *Scanner) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", dir)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ReadFile reads the whole file at path.
func (s *Scanner) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the scan of a user-chosen root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	return data, nil
}

// ItemID returns the field-th "_"-separated part of name, or "" when there is none.
func ItemID(name string, field int) string {
	parts := strings.Split(name, "_")
	if field < 0 || field >= len(parts) {
		return ""
	}
	return parts[field]
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
