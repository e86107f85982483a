package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignmetrics/core"
	"github.com/katalvlaran/alignmetrics/dijkstra"
)

func weighted(t *testing.T, edges [][3]any) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int)))
		require.NoError(t, err)
	}
	return g
}

func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	_, err = dijkstra.Dijkstra(core.NewGraph(core.WithWeighted()), dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestDijkstra_ShortestPaths(t *testing.T) {
	// A–B (4), A–C (1), C–B (2), B–D (5), isolated E
	g := weighted(t, [][3]any{{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 2}, {"B", "D", 5}})
	require.NoError(t, g.AddVertex("E"))

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"A": 0, "B": 3, "C": 1, "D": 8, "E": dijkstra.Unreachable,
	}, dist)
}

func TestDijkstra_ZeroWeights(t *testing.T) {
	g := weighted(t, [][3]any{{"A", "B", 0}, {"B", "C", 0}})
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t, [][3]any{{"A", "B", 2}, {"B", "C", 2}, {"C", "D", 2}})
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist["C"])
	assert.Equal(t, dijkstra.Unreachable, dist["D"])
}

func TestDijkstra_WeightOverflow(t *testing.T) {
	cases := []struct {
		name  string
		edges [][3]any
	}{
		{"sum wraps", [][3]any{{"a", "b", int64(math.MaxInt64 - 7)}, {"b", "c", int64(10)}}},
		{"weight equals Unreachable", [][3]any{{"a", "b", int64(math.MaxInt64)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(core.WithWeighted())
			for _, e := range tc.edges {
				_, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(int64))
				require.NoError(t, err)
			}
			_, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
			require.ErrorIs(t, err, dijkstra.ErrWeightOverflow)
		})
	}
}

func TestDijkstra_OverflowOnLongerPathIgnored(t *testing.T) {
	// c is reached cheaply from a; the detour through b would overflow.
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", math.MaxInt64-1)
	require.NoError(t, err)

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 0, "b": 1, "c": 5}, dist)
}

func TestDijkstra_LargeWeightsStayNonNegative(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", math.MaxInt64-1)
	require.NoError(t, err)

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["a"])
	assert.Equal(t, int64(math.MaxInt64-1), dist["b"])
}
