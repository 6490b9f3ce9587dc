// Package balance distributes clusters across workers.
//
// Assignment is a single greedy pass in the manner of longest-processing-time-first
// scheduling: clusters are taken by descending adjusted cost and each goes whole to the
// currently least-loaded worker. Loads are never revisited, so the result approximates a
// balanced partition without being optimal.
package balance

import (
	"cmp"
	"slices"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
)

// Options configures a balancing pass.
type Options struct {
	// Weights holds one positive capacity factor per worker. Its length is the worker count.
	Weights []float64
	// DuplicateReduction is subtracted once per repeated digest within a cluster.
	DuplicateReduction float64
}

// AdjustedCost returns the cluster's summed cost minus the duplicate discount, floored at zero.
func AdjustedCost(artifacts []domain.Artifact, c domain.Cluster, duplicateReduction float64) float64 {
	raw := 0.0
	counts := make(map[string]int, len(c))
	for _, idx := range c {
		raw += artifacts[idx].Seconds
		counts[artifacts[idx].Digest]++
	}
	reduction := 0.0
	for _, k := range counts {
		if k > 1 {
			reduction += float64(k-1) * duplicateReduction
		}
	}
	return max(0, raw-reduction)
}

// Assign sets Worker on every artifact and returns the final load of each worker.
//
// Clusters with equal adjusted cost keep their input order. A cluster goes to the worker
// with the smallest load divided by weight; equal ratios go to the lowest worker index.
func Assign(artifacts []domain.Artifact, clusters []domain.Cluster, opts Options) ([]float64, error) {
	workers := len(opts.Weights)
	if workers < 1 {
		return nil, zerr.With(domain.ErrInvalidPeopleCount, "people_count", workers)
	}
	for i, w := range opts.Weights {
		if w <= 0 {
			return nil, zerr.With(zerr.With(domain.ErrInvalidPersonWeight, "index", i), "weight", w)
		}
	}

	type costed struct {
		cluster domain.Cluster
		cost    float64
	}
	order := make([]costed, len(clusters))
	for i, c := range clusters {
		order[i] = costed{cluster: c, cost: AdjustedCost(artifacts, c, opts.DuplicateReduction)}
	}
	slices.SortStableFunc(order, func(a, b costed) int {
		return cmp.Compare(b.cost, a.cost)
	})

	loads := make([]float64, workers)
	for _, entry := range order {
		w := leastLoaded(loads, opts.Weights)
		loads[w] += entry.cost
		for _, idx := range entry.cluster {
			artifacts[idx].Worker = w
		}
	}

	for i := range artifacts {
		if artifacts[i].Worker == domain.Unassigned {
			return nil, zerr.With(zerr.With(domain.ErrUnassignedArtifact, "index", i), "name", artifacts[i].Name)
		}
	}
	return loads, nil
}

func leastLoaded(loads, weights []float64) int {
	best := 0
	for w := 1; w < len(loads); w++ {
		if loads[w]/weights[w] < loads[best]/weights[best] {
			best = w
		}
	}
	return best
}
