// Package structure derives structural node embeddings from graph topology.
//
// Each node is described by its shortest-path distance to a fixed set of
// anchor nodes: hop counts via BFS on unweighted graphs, weighted costs via
// Dijkstra otherwise. Rows produced for two graphs with corresponding anchor
// lists are comparable, which is what transport.Cost needs for its
// structural term.
package structure

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/alignmetrics/bfs"
	"github.com/katalvlaran/alignmetrics/core"
	"github.com/katalvlaran/alignmetrics/dijkstra"
	"github.com/katalvlaran/alignmetrics/matrix"
)

// AnchorDistances returns a |order|×|anchors| matrix whose (i, a) entry is
// the shortest-path distance from anchors[a] to order[i].
//
// For directed graphs the distance is measured from the anchor outward.
//
// Errors:
//   - ErrGraphNil, ErrNoAnchors, ErrOptionViolation.
//   - ErrUnknownVertex for anchors or ordered IDs missing from g.
//   - context errors on cancellation.
func AnchorDistances(g *core.Graph, anchors []string, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(anchors) == 0 {
		return nil, ErrNoAnchors
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	order := o.Order
	if order == nil {
		order = g.Vertices()
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: empty vertex order", ErrUnknownVertex)
	}
	for _, id := range order {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
	}
	for _, a := range anchors {
		if !g.HasVertex(a) {
			return nil, fmt.Errorf("%w: anchor %q", ErrUnknownVertex, a)
		}
	}
	fill := o.Unreachable
	if math.IsNaN(fill) {
		fill = float64(g.VertexCount())
	}

	out, err := matrix.NewDense(len(order), len(anchors))
	if err != nil {
		return nil, err
	}

	// Each goroutine owns one column, so writes never overlap.
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for col, anchor := range anchors {
		eg.Go(func() error {
			dist, err := distancesFrom(ctx, g, anchor)
			if err != nil {
				return fmt.Errorf("anchor %q: %w", anchor, err)
			}
			for row, id := range order {
				v, ok := dist[id]
				if !ok {
					v = fill
				}
				if err := out.Set(row, col, v); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// distancesFrom returns reachable vertices and their distance from src.
func distancesFrom(ctx context.Context, g *core.Graph, src string) (map[string]float64, error) {
	if g.Weighted() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		if err != nil {
			return nil, err
		}
		out := make(map[string]float64, len(raw))
		for id, d := range raw {
			if d != dijkstra.Unreachable {
				out[id] = float64(d)
			}
		}
		return out, nil
	}

	res, err := bfs.BFS(g, src, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(res.Depth))
	for id, d := range res.Depth {
		out[id] = float64(d)
	}

	return out, nil
}

// SelectAnchors picks the k vertices of highest degree, ties broken by
// ascending ID.
func SelectAnchors(g *core.Graph, k int) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	if k < 1 || k > len(vertices) {
		return nil, fmt.Errorf("%w: k=%d, |V|=%d", ErrBadAnchorCount, k, len(vertices))
	}

	type scored struct {
		id  string
		deg int
	}
	all := make([]scored, len(vertices))
	for i, id := range vertices {
		d, err := g.Degree(id)
		if err != nil {
			return nil, errors.Join(ErrUnknownVertex, err)
		}
		all[i] = scored{id: id, deg: d}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].deg > all[j].deg })

	out := make([]string, k)
	for i := range out {
		out[i] = all[i].id
	}

	return out, nil
}
