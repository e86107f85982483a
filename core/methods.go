// Package core: Graph method implementations.
//
// Vertex and edge insertion are O(1) amortized; listing methods sort their
// output so iteration order is deterministic.

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a vertex. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from→to (and to→from for undirected graphs), creating
// missing endpoints. Returns the new edge ID.
//
// Errors:
//   - ErrEmptyVertexID for an empty endpoint.
//   - ErrBadWeight for weight≠0 on an unweighted graph or weight<0.
//   - ErrLoopNotAllowed for from==to without WithLoops.
//   - ErrMultiEdgeNotAllowed when the endpoints are already connected.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || (!g.weighted && weight != 0) {
		return "", fmt.Errorf("%w: %d on %s→%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	if !g.directed {
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// HasEdge reports whether from→to is traversable.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns the outgoing adjacency of id sorted by neighbor ID.
// Returns ErrVertexNotFound for unknown vertices.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, 0, len(adj))
	for to, eid := range adj {
		out = append(out, Neighbor{ID: to, Weight: g.edges[eid].Weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the sorted IDs reachable in one hop from id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbrs))
	for i, n := range nbrs {
		ids[i] = n.ID
	}

	return ids, nil
}

// Degree returns the number of outgoing adjacency entries of id
// (for undirected graphs: the number of incident edges).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by ID number.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E| (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Weighted reports the construction-time "weighted" flag.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
