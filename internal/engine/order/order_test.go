package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/engine/order"
)

func TestAssign(t *testing.T) {
	artifacts := []domain.Artifact{
		{Digest: "h1", Worker: 0},
		{Digest: "h2", Worker: 1},
		{Digest: "h3", Worker: 0},
		{Digest: "h1", Worker: 0},
		{Digest: "h2", Worker: 1},
		{Digest: "h1", Worker: 1},
	}

	r := order.Assign(artifacts)

	got := make([]int, len(artifacts))
	for i := range artifacts {
		got[i] = artifacts[i].Sequence
	}
	assert.Equal(t, []int{1, 1, 2, 1, 1, 2}, got)
	assert.Equal(t, 2, r.Groups(0))
	assert.Equal(t, 2, r.Groups(1))
	assert.Equal(t, "002_h3", artifacts[2].GroupName())
}

func TestAssign_Empty(t *testing.T) {
	r := order.Assign(nil)
	assert.Zero(t, r.Groups(0))
}

func TestAssign_Monotonic(t *testing.T) {
	digests := []string{"e", "a", "e", "c", "b", "a", "d", "c", "f"}
	artifacts := make([]domain.Artifact, len(digests))
	for i, d := range digests {
		artifacts[i] = domain.Artifact{Digest: d, Worker: i % 2}
	}

	r := order.Assign(artifacts)

	for w := range 2 {
		seen := make(map[string]int)
		next := 1
		for i := range artifacts {
			a := artifacts[i]
			if a.Worker != w {
				continue
			}
			if n, ok := seen[a.Digest]; ok {
				assert.Equal(t, n, a.Sequence)
				continue
			}
			assert.Equal(t, next, a.Sequence, "first sighting of %s on worker %d", a.Digest, w)
			seen[a.Digest] = a.Sequence
			next++
		}
		assert.Equal(t, next-1, r.Groups(w))
	}
}

func TestRegistry_Stable(t *testing.T) {
	r := order.NewRegistry()
	assert.Equal(t, 1, r.Sequence(3, "x"))
	assert.Equal(t, 2, r.Sequence(3, "y"))
	assert.Equal(t, 1, r.Sequence(3, "x"))
	assert.Equal(t, 1, r.Sequence(4, "y"))
}
