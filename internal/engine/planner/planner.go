// Package planner runs the analysis, clustering, balancing and ordering pipeline.
package planner

import (
	"context"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/hoop/internal/engine/balance"
	"go.trai.ch/hoop/internal/engine/cluster"
	"go.trai.ch/hoop/internal/engine/estimate"
	"go.trai.ch/hoop/internal/engine/identity"
	"go.trai.ch/hoop/internal/engine/order"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Planner turns a directory of pattern files into a worker assignment plan.
type Planner struct {
	scanner ports.SourceScanner
	reader  ports.SourceReader
	parser  ports.PatternParser
	store   ports.DigestStore
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates a Planner. parser and store may be nil: without a parser every digest is
// taken from raw bytes, without a store nothing is cached.
func New(
	scanner ports.SourceScanner,
	reader ports.SourceReader,
	parser ports.PatternParser,
	store ports.DigestStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Planner {
	return &Planner{
		scanner: scanner,
		reader:  reader,
		parser:  parser,
		store:   store,
		tracer:  tracer,
		logger:  logger,
	}
}

// Request describes one planning run.
type Request struct {
	Root     string
	Settings domain.Settings
	NoCache  bool
}

// Plan scans req.Root and builds the assignment plan.
func (p *Planner) Plan(ctx context.Context, req Request) (*domain.Plan, error) {
	if err := req.Settings.Validate(); err != nil {
		return nil, err
	}

	ctx, span := p.tracer.Start(ctx, "plan")
	defer span.End()

	sources, err := p.scan(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	artifacts, skipped, err := p.Analyze(ctx, sources, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	plan, err := p.Assemble(ctx, artifacts, req.Settings)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	plan.Skipped = skipped
	return plan, nil
}

func (p *Planner) scan(ctx context.Context, req Request) ([]domain.Source, error) {
	_, span := p.tracer.Start(ctx, "scan")
	defer span.End()

	sources, err := p.scanner.Scan(req.Root, req.Settings.Extensions, req.Settings.ItemField)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("files", len(sources))
	return sources, nil
}

// slot is written by exactly one analysis task.
type slot struct {
	analysis domain.Analysis
	key      uint64
	fresh    bool
	readErr  error
}

// Analyze reads, digests and costs every source in parallel. Sources that cannot be read
// are left out of the returned artifacts and reported by path.
func (p *Planner) Analyze(
	ctx context.Context,
	sources []domain.Source,
	req Request,
) ([]domain.Artifact, []string, error) {
	ctx, span := p.tracer.Start(ctx, "analyze")
	defer span.End()

	canon, err := identity.New(req.Settings.HashAlgorithm, req.Settings.HashLength)
	if err != nil {
		return nil, nil, err
	}
	estimator := estimate.New(req.Settings.Cost)
	cache := p.openCache(req)
	fingerprint := req.Settings.Fingerprint()

	if p.parser == nil && len(sources) > 0 {
		p.logger.Warn("pattern parsing is unavailable, identities fall back to raw file bytes")
	}

	slots := make([]slot, len(sources))

	limit := req.Settings.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := p.reader.ReadFile(sources[i].Path)
			if err != nil {
				slots[i].readErr = err
				return nil
			}

			key := contentKey(fingerprint, data)
			slots[i].key = key
			if cache != nil {
				if a, ok := cache.Get(key); ok {
					slots[i].analysis = a
					return nil
				}
			}

			digest, fidelity, pattern := canon.Identify(p.parser, data)
			slots[i].analysis = domain.Analysis{
				Digest:   digest,
				Seconds:  estimator.Estimate(pattern),
				Fidelity: fidelity,
			}
			slots[i].fresh = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	artifacts := make([]domain.Artifact, 0, len(sources))
	keys := make([]uint64, 0, len(sources))
	var skipped []string
	var hits int
	for i := range slots {
		s := &slots[i]
		if s.readErr != nil {
			err := zerr.With(zerr.Wrap(s.readErr, domain.ErrSourceReadFailed.Error()), "path", sources[i].Path)
			p.logger.Warn(err.Error())
			skipped = append(skipped, sources[i].Path)
			continue
		}
		if s.fresh && s.analysis.Fidelity == domain.FidelityRaw && p.parser != nil {
			p.logger.Warn("could not parse " + sources[i].Name + ", using raw file bytes as identity")
		}
		keys = append(keys, s.key)
		if !s.fresh {
			hits++
		} else if cache != nil {
			cache.Put(s.key, s.analysis)
		}
		artifacts = append(artifacts, domain.NewArtifact(sources[i], s.analysis))
	}

	if cache != nil {
		cache.Retain(keys)
		if err := cache.Flush(); err != nil {
			p.logger.Warn(err.Error())
		}
	}

	span.SetAttribute("artifacts", len(artifacts))
	span.SetAttribute("cache_hits", hits)
	span.SetAttribute("skipped", len(skipped))
	return artifacts, skipped, nil
}

func (p *Planner) openCache(req Request) ports.DigestCache {
	if req.NoCache || p.store == nil {
		return nil
	}
	cache, err := p.store.Open(req.Root)
	if err != nil {
		p.logger.Warn(err.Error())
		return nil
	}
	return cache
}

// contentKey identifies file content under one set of analysis settings.
func contentKey(fingerprint string, data []byte) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(fingerprint)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(data)
	return h.Sum64()
}

// Assemble clusters, balances and orders analyzed artifacts. artifacts must be in scan order.
func (p *Planner) Assemble(ctx context.Context, artifacts []domain.Artifact, settings domain.Settings) (*domain.Plan, error) {
	labels := settings.Labels()

	_, span := p.tracer.Start(ctx, "cluster")
	clusters := cluster.Build(artifacts)
	span.SetAttribute("clusters", len(clusters))
	span.End()

	_, span = p.tracer.Start(ctx, "balance")
	loads, err := balance.Assign(artifacts, clusters, balance.Options{
		Weights:            settings.Weights(),
		DuplicateReduction: settings.DuplicateReduction,
	})
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, err
	}
	span.End()

	_, span = p.tracer.Start(ctx, "order")
	order.Assign(artifacts)
	span.End()

	return &domain.Plan{
		Artifacts: artifacts,
		Clusters:  clusters,
		Loads:     loads,
		Summaries: domain.Summarize(artifacts, labels, settings.DuplicateReduction),
		Labels:    labels,
	}, nil
}
