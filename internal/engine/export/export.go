// Package export converts the files of a sorted tree into machine-ready DST files.
package export

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// patternExt is the only extension exported. Machine files are produced from PES sources.
const patternExt = ".pes"

// Exporter writes one DST file per worker, item and garment position.
type Exporter struct {
	scanner ports.GroupScanner
	reader  ports.SourceReader
	parser  ports.PatternParser
	encoder ports.PatternEncoder
	placer  ports.Placer
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates an Exporter.
func New(
	scanner ports.GroupScanner,
	reader ports.SourceReader,
	parser ports.PatternParser,
	encoder ports.PatternEncoder,
	placer ports.Placer,
	tracer ports.Tracer,
	logger ports.Logger,
) *Exporter {
	return &Exporter{
		scanner: scanner,
		reader:  reader,
		parser:  parser,
		encoder: encoder,
		placer:  placer,
		tracer:  tracer,
		logger:  logger,
	}
}

type jobKey struct {
	label    string
	item     int
	position string
}

// Jobs groups files by worker, item and position, keeping the order of files. The first file
// of a group names the job. Files outside the order naming scheme are returned separately.
func Jobs(root string, files []domain.GroupFile, day time.Time) ([]domain.ExportJob, []domain.GroupFile) {
	index := make(map[jobKey]int)
	var (
		jobs    []domain.ExportJob
		ignored []domain.GroupFile
	)
	for _, f := range files {
		design, ok := domain.ParseDesignName(f.Name)
		if !ok {
			ignored = append(ignored, f)
			continue
		}

		key := jobKey{label: f.Label, item: design.Item, position: design.Position}
		i, ok := index[key]
		if !ok {
			name := domain.MachineFileName(f.Order, f.Label, design.TotalFaces, design.Position, day)
			jobs = append(jobs, domain.ExportJob{
				DSTName:     name,
				Label:       f.Label,
				FolderOrder: f.Order,
				FolderName:  f.Group,
				Item:        design.Item,
				Position:    design.Position,
				TotalFaces:  design.TotalFaces,
				Path:        domain.MachineFilePath(root, f.Label, name),
			})
			i = len(jobs) - 1
			index[key] = i
		}
		jobs[i].Files = append(jobs[i].Files, domain.ExportFile{GroupFile: f, Design: design})
	}
	return jobs, ignored
}

// Export scans root, groups its files and writes every distinct DST file once. Jobs whose file
// could not be produced are returned with Exported unset; the failure is logged.
func (e *Exporter) Export(ctx context.Context, root string, day time.Time) ([]domain.ExportJob, error) {
	ctx, span := e.tracer.Start(ctx, "export")
	defer span.End()

	files, err := e.scanner.Groups(root, []string{patternExt})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	jobs, ignored := Jobs(root, files, day)
	if len(ignored) > 0 {
		e.logger.Warn(fmt.Sprintf("%d file(s) do not follow the order naming scheme and were not exported", len(ignored)))
	}

	// Jobs of one group folder share a DST name and content.
	var targets []int
	seen := make(map[string]bool)
	for i := range jobs {
		if !seen[jobs[i].Path] {
			seen[jobs[i].Path] = true
			targets = append(targets, i)
		}
	}

	written := make([]bool, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for t, i := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := e.convert(&jobs[i]); err != nil {
				e.logger.Warn(err.Error())
				return nil
			}
			written[t] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	ok := make(map[string]bool, len(targets))
	for t, i := range targets {
		ok[jobs[i].Path] = written[t]
	}
	for i := range jobs {
		jobs[i].Exported = ok[jobs[i].Path]
	}

	span.SetAttribute("files", len(files))
	span.SetAttribute("jobs", len(jobs))
	span.SetAttribute("dst_files", len(targets))
	return jobs, nil
}

// convert encodes the first file of job and writes it to job.Path.
func (e *Exporter) convert(job *domain.ExportJob) error {
	src := job.Files[0].Path
	if e.parser == nil {
		return zerr.With(domain.ErrPatternUnsupported, "path", src)
	}

	data, err := e.reader.ReadFile(src)
	if err != nil {
		return err
	}
	p, err := e.parser.TryParse(data)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "could not convert "+job.Files[0].Name), "path", src)
	}
	out, err := e.encoder.Encode(p, strings.TrimSuffix(job.DSTName, ".dst"))
	if err != nil {
		return zerr.With(err, "path", src)
	}
	return e.placer.Write(job.Path, out)
}
