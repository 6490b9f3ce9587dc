package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExportOptions configures a DST export of a sorted tree.
type ExportOptions struct {
	Dst string
	// Log names the mapping log under <dst>/output.
	Log string
}

// Export writes one DST file per worker, item and position below each worker folder of Dst
// and records the mapping in a JSON log. Jobs whose file could not be written are left out
// of the log and make Export fail once everything else is done.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	now := a.now()
	jobs, err := a.exporter.Export(ctx, opts.Dst, now)
	if err != nil {
		return zerr.Wrap(err, "export failed")
	}
	if len(jobs) == 0 {
		a.logger.Info("no sorted pattern files found in " + opts.Dst)
		return nil
	}

	exported := make([]domain.ExportJob, 0, len(jobs))
	files := make(map[string]bool)
	perLabel := make(map[string]map[string]bool)
	var labels []string
	for i := range jobs {
		j := &jobs[i]
		if !j.Exported {
			continue
		}
		exported = append(exported, *j)
		files[j.Path] = true
		if perLabel[j.Label] == nil {
			perLabel[j.Label] = make(map[string]bool)
			labels = append(labels, j.Label)
		}
		perLabel[j.Label][j.DSTName] = true
	}

	for _, label := range labels {
		dir := filepath.Join(opts.Dst, label, domain.MachineDirName)
		_, _ = fmt.Fprintf(a.out, "  %s (%d DST files)\n", dir, len(perLabel[label]))
	}

	path := filepath.Join(opts.Dst, domain.OutputDirName, filepath.Base(opts.Log))
	if err := a.reporter.WriteExportLog(path, exported, now); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("%d DST files written for %d jobs", len(files), len(exported)))
	a.logger.Info("mapping log saved to " + path)

	if failed := len(jobs) - len(exported); failed > 0 {
		names := make([]string, 0, failed)
		for i := range jobs {
			if !jobs[i].Exported {
				names = append(names, jobs[i].DSTName)
			}
		}
		return zerr.With(domain.ErrExportFailed, "dst_files", strings.Join(names, ", "))
	}
	return nil
}
