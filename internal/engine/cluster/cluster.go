// Package cluster groups artifacts that must be produced by the same worker.
package cluster

import "go.trai.ch/hoop/internal/core/domain"

// unionFind is a disjoint-set forest over a fixed index range.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union attaches the root of b under the root of a.
func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}

// Build partitions artifacts into clusters linked by a shared digest or a shared
// non-empty item id. Links are transitive. Each cluster lists its indices in ascending
// order and clusters are ordered by their smallest member.
func Build(artifacts []domain.Artifact) []domain.Cluster {
	if len(artifacts) == 0 {
		return nil
	}

	uf := newUnionFind(len(artifacts))

	byDigest := make(map[string]int, len(artifacts))
	for i := range artifacts {
		if first, ok := byDigest[artifacts[i].Digest]; ok {
			uf.union(first, i)
			continue
		}
		byDigest[artifacts[i].Digest] = i
	}

	byItem := make(map[string]int)
	for i := range artifacts {
		id := artifacts[i].ItemID
		if id == "" {
			continue
		}
		if first, ok := byItem[id]; ok {
			uf.union(first, i)
			continue
		}
		byItem[id] = i
	}

	// Scanning indices in ascending order yields ascending members and clusters
	// ordered by their first member.
	slot := make(map[int]int)
	var clusters []domain.Cluster
	for i := range artifacts {
		root := uf.find(i)
		idx, ok := slot[root]
		if !ok {
			idx = len(clusters)
			slot[root] = idx
			clusters = append(clusters, nil)
		}
		clusters[idx] = append(clusters[idx], i)
	}
	return clusters
}
