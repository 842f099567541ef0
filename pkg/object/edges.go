package object

import (
	"container/heap"
	"math"

	"github.com/mdimension/mdim/pkg/geom"
)

// ==================================================================
// Edge builders shared by the generators
// ==================================================================

// completeEdges connects every vertex pair once.
func completeEdges(n int) []Edge {
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{i, j})
		}
	}
	return edges
}

// ShortEdges connects every vertex pair whose distance lies within
// (1+tolerance) of the minimum pairwise distance. This recovers the edge
// skeleton of vertex-transitive objects, root systems included, without
// family-specific rules.
func ShortEdges(vertices []geom.Vector, tolerance float64) []Edge {
	return minDistanceEdges(vertices, tolerance, math.MaxFloat64)
}

// minDistanceEdges is ShortEdges with an additional absolute distance cap,
// used by the hypercube variants whose shortest edges are known analytically.
func minDistanceEdges(vertices []geom.Vector, tolerance, maxDist float64) []Edge {
	n := len(vertices)
	minDist := math.MaxFloat64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := vertices[i].Distance(vertices[j]); d > 1e-9 && d < minDist {
				minDist = d
			}
		}
	}
	if minDist == math.MaxFloat64 {
		return nil
	}

	threshold := math.Min(minDist*(1+tolerance), maxDist)
	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if vertices[i].Distance(vertices[j]) <= threshold {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	return edges
}

// distEntry pairs a candidate neighbor with its squared distance.
type distEntry struct {
	idx    int
	distSq float64
}

// distHeap is a max-heap on distSq, so the farthest of the current k
// candidates sits on top and is evicted first.
type distHeap []distEntry

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].distSq > h[j].distSq }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)         { *h = append(*h, x.(distEntry)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// KNNEdges connects each vertex to its k nearest neighbors, deduplicating the
// resulting pairs. k is capped at n−1; a cap of zero yields no edges. Runs in
// O(n² log k) by keeping the k best candidates in a bounded heap.
func KNNEdges(vertices []geom.Vector, k int) []Edge {
	n := len(vertices)
	if n == 0 || k <= 0 {
		return nil
	}
	if k > n-1 {
		k = n - 1
	}
	if k == 0 {
		return nil
	}

	seen := make(map[Edge]bool)
	for i := 0; i < n; i++ {
		h := make(distHeap, 0, k+1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d2 := vertices[i].DistanceSquared(vertices[j])
			if len(h) < k {
				heap.Push(&h, distEntry{idx: j, distSq: d2})
			} else if d2 < h[0].distSq {
				heap.Pop(&h)
				heap.Push(&h, distEntry{idx: j, distSq: d2})
			}
		}
		for _, entry := range h {
			seen[NewEdge(i, entry.idx)] = true
		}
	}

	edges := make([]Edge, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return edges
}
