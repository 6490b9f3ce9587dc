// Package order numbers distinct digests per worker.
package order

import "go.trai.ch/hoop/internal/core/domain"

type groupKey struct {
	worker int
	digest string
}

// Registry maps (worker, digest) to a sequence number in first-seen order.
// Numbers start at 1 per worker and are never reused within a run.
type Registry struct {
	next map[int]int
	seq  map[groupKey]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		next: make(map[int]int),
		seq:  make(map[groupKey]int),
	}
}

// Sequence returns the number of the (worker, digest) group, allocating it on first use.
func (r *Registry) Sequence(worker int, digest string) int {
	key := groupKey{worker: worker, digest: digest}
	if n, ok := r.seq[key]; ok {
		return n
	}
	r.next[worker]++
	n := r.next[worker]
	r.seq[key] = n
	return n
}

// Groups returns how many distinct digests the worker has.
func (r *Registry) Groups(worker int) int {
	return r.next[worker]
}

// Assign sets Sequence on every artifact, iterating in scan order.
func Assign(artifacts []domain.Artifact) *Registry {
	r := NewRegistry()
	for i := range artifacts {
		artifacts[i].Sequence = r.Sequence(artifacts[i].Worker, artifacts[i].Digest)
	}
	return r
}
