// SPDX-License-Identifier: MIT

package embedio_test

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignmetrics/core"
	"github.com/katalvlaran/alignmetrics/embedio"
	"github.com/katalvlaran/alignmetrics/matrix"
	"github.com/katalvlaran/alignmetrics/metrics"
)

func TestReadMatrix_Separators(t *testing.T) {
	in := `# two nodes, three dims
1 2 3

4.5,5, -6e-1
`
	m, err := embedio.ReadMatrix(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4.5, 5, -0.6}}, m.ToRows())
}

func TestReadMatrix_Errors(t *testing.T) {
	_, err := embedio.ReadMatrix(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(t, err, embedio.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")

	_, err = embedio.ReadMatrix(strings.NewReader("1 x\n"))
	require.ErrorIs(t, err, embedio.ErrSyntax)

	_, err = embedio.ReadMatrix(strings.NewReader("# nothing\n\n"))
	require.ErrorIs(t, err, embedio.ErrEmpty)

	_, err = embedio.ReadMatrix(strings.NewReader("1 NaN\n"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestReadMatrix_AllowInf(t *testing.T) {
	m, err := embedio.ReadMatrix(strings.NewReader("0 +Inf\n"), matrix.WithAllowInf())
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestReadPairs(t *testing.T) {
	pairs, err := embedio.ReadPairs(strings.NewReader("0 1\n# skip\n2,0\n"))
	require.NoError(t, err)
	assert.Equal(t, []metrics.Pair{{Src: 0, Tgt: 1}, {Src: 2, Tgt: 0}}, pairs)

	for _, bad := range []string{"0\n", "0 1 2\n", "-1 0\n", "a b\n"} {
		_, err = embedio.ReadPairs(strings.NewReader(bad))
		require.ErrorIs(t, err, embedio.ErrSyntax, bad)
	}
	_, err = embedio.ReadPairs(strings.NewReader(""))
	require.ErrorIs(t, err, embedio.ErrEmpty)
}

func TestReadEdgeList_Unweighted(t *testing.T) {
	g, err := embedio.ReadEdgeList(strings.NewReader("a b\nb c\nc b\nd\nd d\n"))
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount(), "reversed duplicate and self-loop dropped")
}

func TestReadEdgeList_Weighted(t *testing.T) {
	g, err := embedio.ReadEdgeList(strings.NewReader("a b 3\nb c\n"), core.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.True(t, g.Directed())
	nb, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: "b", Weight: 3}}, nb)

	_, err = embedio.ReadEdgeList(strings.NewReader("a b -1\n"))
	require.ErrorIs(t, err, embedio.ErrSyntax)
	_, err = embedio.ReadEdgeList(strings.NewReader("a b 1 2\n"))
	require.ErrorIs(t, err, embedio.ErrSyntax)
	_, err = embedio.ReadEdgeList(strings.NewReader("a b 9223372036854775807\n"))
	require.ErrorIs(t, err, embedio.ErrSyntax)
	assert.Contains(t, err.Error(), "line 1")

	// One below the marker is still accepted.
	g, err = embedio.ReadEdgeList(strings.NewReader("a b 9223372036854775806\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestWriteMatrix_RoundTrip(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0.1, 2}, {-3, 1e-9}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, embedio.WriteMatrix(&buf, m))
	assert.Equal(t, "0.1 2\n-3 1e-09\n", buf.String())

	back, err := embedio.ReadMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.ToRows(), back.ToRows())

	require.ErrorIs(t, embedio.WriteMatrix(io.Discard, nil), matrix.ErrNilMatrix)
}

func TestSaveLoad_Compressed(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	for _, name := range []string{"emb.txt", "emb.txt.gz", "emb.txt.zst"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			require.NoError(t, embedio.SaveMatrix(p, m))

			raw, err := os.ReadFile(p)
			require.NoError(t, err)
			if filepath.Ext(name) == ".txt" {
				assert.Equal(t, "1 2 3\n4 5 6\n", string(raw))
			} else {
				assert.NotContains(t, string(raw), "1 2 3")
			}

			back, err := embedio.LoadMatrix(p)
			require.NoError(t, err)
			assert.Equal(t, m.ToRows(), back.ToRows())
		})
	}
}

func TestLoadPairsAndEdges_Files(t *testing.T) {
	dir := t.TempDir()
	pp := filepath.Join(dir, "pairs.txt")
	require.NoError(t, os.WriteFile(pp, []byte("0 0\n1 1\n"), 0o644))
	pairs, err := embedio.LoadPairs(pp)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)

	ep := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(ep, []byte("x y\n"), 0o644))
	g, err := embedio.LoadEdgeList(ep)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2 3\n"), 0o644))
	_, err = embedio.LoadPairs(bad)
	require.ErrorIs(t, err, embedio.ErrSyntax)
	assert.Contains(t, err.Error(), bad)

	_, err = embedio.LoadMatrix(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// A .gz file that is not gzip fails on open.
	fake := filepath.Join(dir, "fake.gz")
	require.NoError(t, os.WriteFile(fake, []byte("plain"), 0o644))
	_, err = embedio.Open(fake)
	require.Error(t, err)
}
