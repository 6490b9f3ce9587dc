// Package app implements the application layer for hoop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/hoop/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/hoop/internal/engine/planner"
	"go.trai.ch/zerr"
)

// Planner builds an assignment plan for one source tree.
type Planner interface {
	Plan(ctx context.Context, req planner.Request) (*domain.Plan, error)
}

// Exporter converts the files of a sorted tree into machine files.
type Exporter interface {
	Export(ctx context.Context, root string, day time.Time) ([]domain.ExportJob, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	planner      Planner
	exporter     Exporter
	scanner      ports.SourceScanner
	placer       ports.Placer
	reporter     ports.Reporter
	watcher      ports.Watcher
	logger       ports.Logger
	out          io.Writer
	now          func() time.Time
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	p Planner,
	exporter Exporter,
	scanner ports.SourceScanner,
	placer ports.Placer,
	reporter ports.Reporter,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		planner:      p,
		exporter:     exporter,
		scanner:      scanner,
		placer:       placer,
		reporter:     reporter,
		watcher:      watcher,
		logger:       log,
		out:          os.Stdout,
		now:          time.Now,
		debounce:     defaultDebounce,
	}
}

// WithOutput redirects summaries and check results.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithClock replaces the clock used for report timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithDebounce sets how long watch mode waits for the tree to settle.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

type logSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging applies the global logging flags when the logger supports them.
func (a *App) ConfigureLogging(verbose, jsonLogs bool) {
	if l, ok := a.logger.(logSettings); ok {
		l.SetVerbose(verbose)
		l.SetJSON(jsonLogs)
	}
}

// SourceOptions selects the configuration and source tree of a run.
type SourceOptions struct {
	// ConfigPath overrides hoop.yaml discovery.
	ConfigPath string
	Src        string
	// People overrides people_count when positive.
	People  int
	NoCache bool
}

// settings resolves the configuration for opts.
func (a *App) settings(opts *SourceOptions) (domain.Settings, error) {
	var (
		settings domain.Settings
		err      error
	)
	if opts.ConfigPath != "" {
		settings, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		var path string
		settings, path, err = a.configLoader.Load(".")
		if path != "" {
			a.logger.Debug("using configuration " + path)
		}
	}
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.People > 0 {
		settings.PeopleCount = opts.People
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (a *App) plan(ctx context.Context, opts *SourceOptions, settings domain.Settings) (*domain.Plan, error) {
	src, err := filepath.Abs(opts.Src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", opts.Src)
	}

	plan, err := a.planner.Plan(ctx, planner.Request{
		Root:     src,
		Settings: settings,
		NoCache:  opts.NoCache,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "planning failed")
	}
	return plan, nil
}

// PlanOptions configures a dry run.
type PlanOptions struct {
	SourceOptions
	Watch bool
}

// Plan computes and prints the assignment without placing any file or writing reports.
// Unless NoCache is set, the digest cache under the source tree is refreshed.
func (a *App) Plan(ctx context.Context, opts PlanOptions) error {
	settings, err := a.settings(&opts.SourceOptions)
	if err != nil {
		return err
	}

	run := func(ctx context.Context) error {
		plan, err := a.plan(ctx, &opts.SourceOptions, settings)
		if err != nil {
			return err
		}
		a.logSkipped(plan)
		return a.reporter.RenderSummary(a.out, plan)
	}

	if err := run(ctx); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, opts.Src, settings.Extensions, run)
}

// SortOptions configures a placement run.
type SortOptions struct {
	SourceOptions
	Dst  string
	Copy bool
	// CSV and Manifest name report files under <dst>/output. Empty disables the report.
	CSV      string
	Manifest string
}

// Sort plans the source tree, places every file under Dst and writes the reports.
func (a *App) Sort(ctx context.Context, opts SortOptions) error {
	settings, err := a.settings(&opts.SourceOptions)
	if err != nil {
		return err
	}

	plan, err := a.plan(ctx, &opts.SourceOptions, settings)
	if err != nil {
		return err
	}
	a.logSkipped(plan)
	if plan.Empty() {
		a.logger.Info("no pattern files found in " + opts.Src)
		return nil
	}

	mode := ports.PlaceMove
	if opts.Copy {
		mode = ports.PlaceCopy
	}
	placements, err := a.placer.Place(ctx, plan, opts.Dst, mode)
	if err != nil {
		return zerr.Wrap(err, "placement failed")
	}

	if err := a.reporter.RenderSummary(a.out, plan); err != nil {
		return err
	}

	outputDir := filepath.Join(opts.Dst, domain.OutputDirName)
	now := a.now()
	if opts.CSV != "" {
		path := report.Timestamped(filepath.Join(outputDir, filepath.Base(opts.CSV)), now)
		if err := a.reporter.WriteCSV(path, plan, placements); err != nil {
			return err
		}
		a.logger.Info("CSV exported to " + path)
	}
	if opts.Manifest != "" {
		path := report.Timestamped(filepath.Join(outputDir, filepath.Base(opts.Manifest)), now)
		if err := a.reporter.WriteManifest(path, plan, settings); err != nil {
			return err
		}
		a.logger.Info("manifest written to " + path)
	}
	return nil
}

func (a *App) logSkipped(plan *domain.Plan) {
	if len(plan.Skipped) > 0 {
		a.logger.Warn(fmt.Sprintf("%d file(s) could not be read and were left out", len(plan.Skipped)))
	}
}
