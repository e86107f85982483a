// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values. Edge weights are non-negative by construction (core
// rejects negative weights), so no pre-scan is needed.
package dijkstra

import (
	"container/heap"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/alignmetrics/core"
)

// Dijkstra computes the minimum-cost distance from Options.Source to every
// vertex of g. Vertices with no path (or beyond MaxDistance) map to
// Unreachable.
//
// Preconditions and validation (in order):
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. g weighted (ErrUnweightedGraph).
//  4. g contains Source (ErrVertexNotFound).
//
// A candidate path whose cost would reach Unreachable is dropped. If a
// vertex has no cheaper path, Dijkstra fails with ErrWeightOverflow instead
// of reporting it unreachable.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[cfg.Source] = 0

	visited := make(map[string]bool, len(vertices))
	overflowed := make(map[string]bool)
	pq := &nodePQ{{id: cfg.Source, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*nodeItem)
		if visited[cur.id] || cur.dist > dist[cur.id] {
			continue // stale entry
		}
		if cur.dist > cfg.MaxDistance {
			dist[cur.id] = Unreachable
			continue
		}
		visited[cur.id] = true

		nbrs, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if visited[n.ID] {
				continue
			}
			if n.Weight > Unreachable-1-cur.dist {
				overflowed[n.ID] = true
				continue
			}
			nd := cur.dist + n.Weight
			if nd < dist[n.ID] {
				dist[n.ID] = nd
				heap.Push(pq, &nodeItem{id: n.ID, dist: nd})
			}
		}
	}

	for _, v := range slices.Sorted(maps.Keys(overflowed)) {
		if dist[v] == Unreachable && cfg.MaxDistance == Unreachable {
			return nil, fmt.Errorf("%w: vertex %q from %q", ErrWeightOverflow, v, cfg.Source)
		}
	}

	// Tentative distances beyond the cap were never settled.
	for v, d := range dist {
		if d > cfg.MaxDistance {
			dist[v] = Unreachable
		}
	}

	return dist, nil
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap over nodeItem.dist, ties broken by ID for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
