// Package report writes plan and completeness reports.
package report

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reporter implements ports.Reporter.
type Reporter struct{}

// NewReporter creates a Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Timestamped inserts _YYYY-MM-DD_HH-MM-SS before the extension of path.
func Timestamped(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + now.Format(domain.TimestampFormat) + ext
}

// create opens path for writing, creating parent directories.
func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return f, nil
}

func closeFile(f *os.File, err error) error {
	if cerr := f.Close(); cerr != nil && err == nil {
		return zerr.With(zerr.Wrap(cerr, domain.ErrReportWriteFailed.Error()), "path", f.Name())
	}
	return err
}
