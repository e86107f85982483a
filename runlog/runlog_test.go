// SPDX-License-Identifier: MIT

package runlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignmetrics/metrics"
	"github.com/katalvlaran/alignmetrics/runlog"
)

func TestEnsureRunDir_FreshRoot(t *testing.T) {
	root := t.TempDir()
	d := runlog.Dir{Root: root}

	got, err := d.EnsureRunDir("toy")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "toy_results", "run_0"), got)

	info, err := os.Stat(filepath.Join(root, "toy_results"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(got)
	assert.True(t, os.IsNotExist(err), "run directory is not created")

	// Calling again without creating run_0 yields the same path.
	again, err := d.EnsureRunDir("toy")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestEnsureRunDir_CountsOnlyDirectories(t *testing.T) {
	root := t.TempDir()
	results := filepath.Join(root, "toy_results")
	require.NoError(t, os.MkdirAll(filepath.Join(results, "run_0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(results, "run_1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(results, "notes.txt"), []byte("x"), 0o644))

	got, err := runlog.Dir{Root: root}.EnsureRunDir("toy")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(results, "run_2"), got)
}

func TestEnsureRunDir_Errors(t *testing.T) {
	_, err := runlog.Dir{Root: t.TempDir()}.EnsureRunDir("")
	require.ErrorIs(t, err, runlog.ErrEmptyDataset)

	for _, name := range []string{"..", ".", "../x", "a/b", `a\b`} {
		root := t.TempDir()
		_, err = runlog.Dir{Root: root}.EnsureRunDir(name)
		require.ErrorIs(t, err, runlog.ErrBadDataset, name)
		entries, rerr := os.ReadDir(root)
		require.NoError(t, rerr)
		assert.Empty(t, entries, "nothing created for %q", name)
	}

	// Root is a regular file, so the results directory cannot be created.
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = runlog.Dir{Root: file}.EnsureRunDir("toy")
	require.Error(t, err)
}

func TestWriteReport_RoundTrip(t *testing.T) {
	rep := &metrics.Report{
		Ks:       []int{1, 2},
		Pairs:    2,
		Hits:     map[int]float64{1: 0.5, 2: 1},
		MRR:      0.75,
		Forward:  metrics.DirectionScore{Hits: map[int]float64{1: 0.5, 2: 1}, MRR: 0.75},
		Backward: metrics.DirectionScore{Hits: map[int]float64{1: 0, 2: 0.5}, MRR: 0.4},
	}
	rec, err := runlog.NewRecord("toy", "l1", rep)
	require.NoError(t, err)
	_, err = uuid.Parse(rec.ID)
	require.NoError(t, err)

	d := runlog.Dir{Root: t.TempDir()}
	runDir, err := d.EnsureRunDir("toy")
	require.NoError(t, err)
	path, err := runlog.WriteReport(runDir, rec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(runDir, runlog.ReportFile), path)

	back, err := runlog.ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, "toy", back.Dataset)
	assert.Equal(t, []int{1, 2}, back.Ks)
	assert.Equal(t, rep.Hits, back.Hits)
	assert.InDelta(t, 0.75, back.MRR, 1e-12)
	assert.InDelta(t, 0.4, back.Backward.MRR, 1e-12)
	assert.True(t, rec.CreatedAt.Equal(back.CreatedAt))

	// The next run sees run_0 and moves on.
	next, err := d.EnsureRunDir("toy")
	require.NoError(t, err)
	assert.Equal(t, "run_1", filepath.Base(next))
}

func TestNewRecord_Errors(t *testing.T) {
	_, err := runlog.NewRecord("toy", "l1", nil)
	require.ErrorIs(t, err, runlog.ErrNilReport)
	_, err = runlog.NewRecord("", "l1", &metrics.Report{})
	require.ErrorIs(t, err, runlog.ErrEmptyDataset)
	_, err = runlog.NewRecord("../up", "l1", &metrics.Report{})
	require.ErrorIs(t, err, runlog.ErrBadDataset)
	_, err = runlog.WriteReport(t.TempDir(), nil)
	require.ErrorIs(t, err, runlog.ErrNilReport)
}
