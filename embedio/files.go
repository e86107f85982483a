// SPDX-License-Identifier: MIT

package embedio

import (
	"github.com/katalvlaran/alignmetrics/core"
	"github.com/katalvlaran/alignmetrics/matrix"
	"github.com/katalvlaran/alignmetrics/metrics"
)

// LoadMatrix opens path (compressed or not) and reads a matrix from it.
func LoadMatrix(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMatrix(f, opts...)
	if err != nil {
		return nil, wrapFile(path, err)
	}

	return m, nil
}

// LoadPairs opens path and reads ground-truth pairs from it.
func LoadPairs(path string) ([]metrics.Pair, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, wrapFile(path, err)
	}

	return pairs, nil
}

// LoadEdgeList opens path and builds a graph from its edge list.
func LoadEdgeList(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadEdgeList(f, opts...)
	if err != nil {
		return nil, wrapFile(path, err)
	}

	return g, nil
}

// SaveMatrix writes m to path, compressing by extension.
func SaveMatrix(path string, m *matrix.Dense) (err error) {
	w, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = wrapFile(path, cerr)
		}
	}()

	if err = WriteMatrix(w, m); err != nil {
		return wrapFile(path, err)
	}

	return nil
}
