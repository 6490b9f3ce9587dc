package balance_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/engine/balance"
	"go.trai.ch/hoop/internal/engine/cluster"
)

func newArtifacts(digests, items []string, seconds []float64) []domain.Artifact {
	artifacts := make([]domain.Artifact, len(digests))
	for i := range digests {
		artifacts[i] = domain.Artifact{
			Name:    digests[i],
			Digest:  digests[i],
			ItemID:  items[i],
			Seconds: seconds[i],
			Worker:  domain.Unassigned,
		}
	}
	return artifacts
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func TestAssign_Scenario(t *testing.T) {
	artifacts := newArtifacts(
		[]string{"h1", "h1", "h2", "h3", "h3"},
		[]string{"i1", "", "i1", "i2", "i2"},
		[]float64{10, 20, 5, 7, 7},
	)
	clusters := cluster.Build(artifacts)
	require.Equal(t, []domain.Cluster{{0, 1, 2}, {3, 4}}, clusters)

	assert.InDelta(t, 32.0, balance.AdjustedCost(artifacts, clusters[0], 3), 1e-9)
	assert.InDelta(t, 11.0, balance.AdjustedCost(artifacts, clusters[1], 3), 1e-9)

	loads, err := balance.Assign(artifacts, clusters, balance.Options{Weights: equalWeights(2), DuplicateReduction: 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{32, 11}, loads)

	workers := make([]int, len(artifacts))
	for i := range artifacts {
		workers[i] = artifacts[i].Worker
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1}, workers)
}

func TestAssign_Empty(t *testing.T) {
	loads, err := balance.Assign(nil, nil, balance.Options{Weights: equalWeights(3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, loads)
}

func TestAdjustedCost_FloorsAtZero(t *testing.T) {
	artifacts := newArtifacts([]string{"a", "a", "a"}, []string{"", "", ""}, []float64{1, 1, 1})
	assert.Zero(t, balance.AdjustedCost(artifacts, domain.Cluster{0, 1, 2}, 300))
}

func TestAssign_TiesGoToLowestWorker(t *testing.T) {
	artifacts := newArtifacts([]string{"a", "b", "c"}, []string{"", "", ""}, []float64{5, 5, 5})
	clusters := cluster.Build(artifacts)

	_, err := balance.Assign(artifacts, clusters, balance.Options{Weights: equalWeights(3)})
	require.NoError(t, err)

	// Equal costs keep scan order and each lands on the next empty worker.
	assert.Equal(t, 0, artifacts[0].Worker)
	assert.Equal(t, 1, artifacts[1].Worker)
	assert.Equal(t, 2, artifacts[2].Worker)
}

func TestAssign_Weighted(t *testing.T) {
	artifacts := newArtifacts(
		[]string{"a", "b", "c", "d"},
		[]string{"", "", "", ""},
		[]float64{100, 100, 100, 10},
	)
	clusters := cluster.Build(artifacts)

	loads, err := balance.Assign(artifacts, clusters, balance.Options{Weights: []float64{1, 0.2}})
	require.NoError(t, err)

	// Worker 1 at weight 0.2 takes one large cluster, then looks five times as loaded.
	assert.Equal(t, []float64{210, 100}, loads)
}

func TestAssign_InvalidOptions(t *testing.T) {
	_, err := balance.Assign(nil, nil, balance.Options{})
	require.ErrorContains(t, err, domain.ErrInvalidPeopleCount.Error())

	_, err = balance.Assign(nil, nil, balance.Options{Weights: []float64{1, 0}})
	require.ErrorContains(t, err, domain.ErrInvalidPersonWeight.Error())
}

func TestAssign_UnassignedArtifact(t *testing.T) {
	artifacts := newArtifacts([]string{"a", "b"}, []string{"", ""}, []float64{1, 1})

	// A partition that misses index 1 violates the contract.
	_, err := balance.Assign(artifacts, []domain.Cluster{{0}}, balance.Options{Weights: equalWeights(2)})
	require.ErrorContains(t, err, domain.ErrUnassignedArtifact.Error())
}

func TestAssign_Properties(t *testing.T) {
	digests := []string{"a", "b", "a", "c", "d", "e", "f", "g", "f", "h", "i", "j"}
	items := []string{"1", "2", "", "2", "3", "", "4", "", "", "5", "5", ""}
	seconds := []float64{400, 250, 380, 90, 1200, 60, 700, 30, 650, 300, 310, 45}

	for workers := 1; workers <= 5; workers++ {
		artifacts := newArtifacts(digests, items, seconds)
		clusters := cluster.Build(artifacts)

		loads, err := balance.Assign(artifacts, clusters, balance.Options{
			Weights:            equalWeights(workers),
			DuplicateReduction: 300,
		})
		require.NoError(t, err)

		largest := 0.0
		for _, c := range clusters {
			largest = max(largest, balance.AdjustedCost(artifacts, c, 300))
			for _, idx := range c {
				assert.Equal(t, artifacts[c[0]].Worker, artifacts[idx].Worker, "cluster split across workers")
			}
		}
		assert.LessOrEqual(t, slices.Max(loads)-slices.Min(loads), largest, "balance bound with %d workers", workers)
	}
}
