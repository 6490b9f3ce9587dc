package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GroupScanner = (*Scanner)(nil)

// Groups returns the files placed in group folders under root. Worker folders hold their group
// folders either directly or below a pes/ folder. Reports, machine files and the digest cache
// are not worker folders.
func (s *Scanner) Groups(root string, extensions []string) ([]domain.GroupFile, error) {
	labels, err := readDirs(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrSourceNotFound, "path", root)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", root)
	}

	wanted := make([]string, len(extensions))
	for i, ext := range extensions {
		wanted[i] = normalizeExt(ext)
	}

	var files []domain.GroupFile
	for _, label := range labels {
		if label == domain.OutputDirName || strings.HasPrefix(label, ".") {
			continue
		}
		labelDir := filepath.Join(root, label)
		for _, parent := range []string{labelDir, filepath.Join(labelDir, domain.PatternDirName)} {
			found, err := groupFiles(parent, label, wanted)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", parent)
			}
			files = append(files, found...)
		}
	}

	slices.SortStableFunc(files, func(a, b domain.GroupFile) int {
		if c := strings.Compare(a.Label, b.Label); c != 0 {
			return c
		}
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		if c := strings.Compare(a.Group, b.Group); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return files, nil
}

// groupFiles collects the wanted files of every <NNN>_<digest> folder directly inside parent.
func groupFiles(parent, label string, wanted []string) ([]domain.GroupFile, error) {
	groups, err := readDirs(parent)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []domain.GroupFile
	for _, group := range groups {
		order, ok := groupOrder(group)
		if !ok {
			continue
		}
		dir := filepath.Join(parent, group)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.Type().IsRegular() || !slices.Contains(wanted, strings.ToLower(filepath.Ext(e.Name()))) {
				continue
			}
			files = append(files, domain.GroupFile{
				Path:  filepath.Join(dir, e.Name()),
				Name:  e.Name(),
				Label: label,
				Group: group,
				Order: order,
			})
		}
	}
	return files, nil
}

// groupOrder parses the numeric prefix of a <NNN>_<digest> folder name.
func groupOrder(name string) (int, bool) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, false
	}
	order, err := strconv.Atoi(prefix)
	if err != nil || order < 0 {
		return 0, false
	}
	return order, true
}

func readDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
