package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/engine/completeness"
)

// CheckOptions configures a completeness check.
type CheckOptions struct {
	Dir        string
	Folders    []string
	Extensions []string
	ReportCSV  string
}

// Check compares every order's announced file count with the files present in
// each folder under Dir, prints the verdict and returns all reports.
func (a *App) Check(ctx context.Context, opts CheckOptions) ([]domain.OrderReport, error) {
	var all []domain.OrderReport
	for _, folder := range opts.Folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(opts.Dir, folder)
		names, err := a.scanner.List(path)
		if err != nil {
			return nil, err
		}

		reports := completeness.Analyze(folder, names, opts.Extensions, completeness.ModeFor(folder))
		a.printCheck(path, reports)
		all = append(all, reports...)
	}

	if opts.ReportCSV != "" {
		if err := a.reporter.WriteCompleteness(opts.ReportCSV, all); err != nil {
			return nil, err
		}
		a.logger.Info("completeness report written to " + opts.ReportCSV)
	}
	return all, nil
}

func (a *App) printCheck(path string, reports []domain.OrderReport) {
	mismatched := completeness.Mismatched(reports)

	_, _ = fmt.Fprintf(a.out, "Scan results for: %s\n", path)
	_, _ = fmt.Fprintf(a.out, "  order ids scanned: %d\n", len(reports))
	_, _ = fmt.Fprintf(a.out, "  ids with missing or extra files: %d\n", len(mismatched))
	if len(mismatched) > 0 {
		_, _ = fmt.Fprintf(a.out, "  mismatched: %s\n", strings.Join(mismatched, ", "))
	}
}
