// SPDX-License-Identifier: MIT

// Package embedio reads and writes the plain-text inputs of an alignment
// evaluation: embedding or distance matrices, ground-truth pair lists and
// edge lists.
//
// Format rules shared by every reader:
//   - one record per line;
//   - fields separated by whitespace and/or commas;
//   - blank lines and lines starting with '#' are skipped.
//
// Syntax errors carry the 1-based line number and wrap ErrSyntax.
package embedio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/alignmetrics/core"
	"github.com/katalvlaran/alignmetrics/dijkstra"
	"github.com/katalvlaran/alignmetrics/matrix"
	"github.com/katalvlaran/alignmetrics/metrics"
)

// Sentinel errors.
var (
	// ErrSyntax marks a malformed line.
	ErrSyntax = errors.New("embedio: syntax error")

	// ErrEmpty is returned when the input holds no records.
	ErrEmpty = errors.New("embedio: no records")
)

// maxLine bounds a single input line; wide embeddings exceed bufio's 64 KiB default.
const maxLine = 64 << 20

func wrapFile(path string, err error) error {
	return fmt.Errorf("embedio: %s: %w", path, err)
}

func lineErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, line, fmt.Sprintf(format, args...))
}

func isSep(r rune) bool { return r == ',' || unicode.IsSpace(r) }

// scanRecords calls fn with the fields of every non-blank, non-comment line.
func scanRecords(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.FieldsFunc(text, isSep)); err != nil {
			return err
		}
	}

	return sc.Err()
}

// ReadMatrix parses one row per line into a Dense. Every row must have the
// same number of columns. opts set the numeric policy (e.g. matrix.WithAllowInf
// for distance files with unreachable entries).
func ReadMatrix(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	var rows [][]float64
	err := scanRecords(r, func(line int, fields []string) error {
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return lineErrorf(line, "%d columns, want %d", len(fields), len(rows[0]))
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return lineErrorf(line, "column %d: %v", j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return matrix.NewFromRows(rows, opts...)
}

// ReadPairs parses "src tgt" lines into ground-truth pairs. Indices must be
// non-negative integers; range checks against the matrices happen in
// metrics.Evaluate.
func ReadPairs(r io.Reader) ([]metrics.Pair, error) {
	var pairs []metrics.Pair
	err := scanRecords(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return lineErrorf(line, "%d fields, want 2", len(fields))
		}
		var idx [2]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return lineErrorf(line, "index %q is not a non-negative integer", f)
			}
			idx[i] = v
		}
		pairs = append(pairs, metrics.Pair{Src: idx[0], Tgt: idx[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, ErrEmpty
	}

	return pairs, nil
}

// ReadEdgeList parses "u v" or "u v w" lines into a graph. If any line has
// a weight the graph is built weighted; weights are non-negative integers
// below dijkstra.Unreachable.
// A line with a single field declares an isolated vertex. Repeated edges
// are ignored, as are self-loops unless opts include core.WithLoops.
func ReadEdgeList(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	type rec struct {
		line     int
		from, to string
		w        int64
	}
	var (
		recs     []rec
		weighted bool
	)
	err := scanRecords(r, func(line int, fields []string) error {
		switch len(fields) {
		case 1:
			recs = append(recs, rec{line: line, from: fields[0]})
		case 2:
			recs = append(recs, rec{line: line, from: fields[0], to: fields[1]})
		case 3:
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || w < 0 {
				return lineErrorf(line, "weight %q is not a non-negative integer", fields[2])
			}
			if w >= dijkstra.Unreachable {
				return lineErrorf(line, "weight %q collides with the unreachable marker", fields[2])
			}
			weighted = true
			recs = append(recs, rec{line: line, from: fields[0], to: fields[1], w: w})
		default:
			return lineErrorf(line, "%d fields, want 1 to 3", len(fields))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmpty
	}

	if weighted {
		opts = append(opts[:len(opts):len(opts)], core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, e := range recs {
		if e.to == "" {
			if err = g.AddVertex(e.from); err != nil {
				return nil, lineErrorf(e.line, "%v", err)
			}
			continue
		}
		_, err = g.AddEdge(e.from, e.to, e.w)
		switch {
		case err == nil, errors.Is(err, core.ErrMultiEdgeNotAllowed):
		case errors.Is(err, core.ErrLoopNotAllowed):
			if err = g.AddVertex(e.from); err != nil {
				return nil, lineErrorf(e.line, "%v", err)
			}
		default:
			return nil, lineErrorf(e.line, "%v", err)
		}
	}

	return g, nil
}

// WriteMatrix writes m one row per line, values separated by a single space
// in the shortest representation that round-trips.
func WriteMatrix(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.Rows(); i++ {
		row, err := m.RowView(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}

	return bw.Flush()
}
