// SPDX-License-Identifier: MIT

// Package runlog lays out per-run result directories and persists evaluation
// reports into them.
//
// Layout:
//
//	<root>/<dataset>_results/run_0/metrics.yaml
//	<root>/<dataset>_results/run_1/metrics.yaml
//	...
//
// EnsureRunDir numbers runs by counting existing subdirectories; two
// processes calling it at once may receive the same path.
package runlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/alignmetrics/metrics"
)

// ReportFile is the file name WriteReport creates inside a run directory.
const ReportFile = "metrics.yaml"

const (
	resultsSuffix = "_results"
	runPrefix     = "run_"
	dirPerm       = 0o755
	filePerm      = 0o644
)

// Sentinel errors.
var (
	// ErrEmptyDataset is returned when the dataset name is empty.
	ErrEmptyDataset = errors.New("runlog: empty dataset name")

	// ErrBadDataset is returned for names that would escape or nest under the root.
	ErrBadDataset = errors.New("runlog: dataset name must be a single path element")

	// ErrNilReport is returned by NewRecord and WriteReport for a nil report.
	ErrNilReport = errors.New("runlog: nil report")
)

// Dir is a run-log root. The zero value writes under the working directory.
type Dir struct {
	Root string
}

// ResultsDir returns <root>/<dataset>_results.
func (d Dir) ResultsDir(dataset string) string {
	return filepath.Join(d.Root, dataset+resultsSuffix)
}

// checkDataset rejects empty names, "." and "..", and names containing a
// path separator.
func checkDataset(dataset string) error {
	if dataset == "" {
		return ErrEmptyDataset
	}
	if dataset == "." || dataset == ".." || strings.ContainsAny(dataset, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadDataset, dataset)
	}

	return nil
}

// EnsureRunDir creates <root>/<dataset>_results if missing and returns the
// path of the next run directory, run_<n>, where n is the number of
// subdirectories already present. The run directory itself is not created.
func (d Dir) EnsureRunDir(dataset string) (string, error) {
	if err := checkDataset(dataset); err != nil {
		return "", err
	}
	results := d.ResultsDir(dataset)
	if err := os.MkdirAll(results, dirPerm); err != nil {
		return "", fmt.Errorf("runlog: create %s: %w", results, err)
	}

	entries, err := os.ReadDir(results)
	if err != nil {
		return "", fmt.Errorf("runlog: list %s: %w", results, err)
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			n++
		}
	}

	return filepath.Join(results, fmt.Sprintf("%s%d", runPrefix, n)), nil
}

// Scores is the YAML form of one direction.
type Scores struct {
	Hits map[int]float64 `yaml:"hits"`
	MRR  float64         `yaml:"mrr"`
}

// Record is what lands in metrics.yaml.
type Record struct {
	ID        string          `yaml:"id"`
	Dataset   string          `yaml:"dataset"`
	CreatedAt time.Time       `yaml:"created_at"`
	Metric    string          `yaml:"metric,omitempty"`
	Pairs     int             `yaml:"pairs"`
	Ks        []int           `yaml:"hit_top_ks"`
	Hits      map[int]float64 `yaml:"hits"`
	MRR       float64         `yaml:"mrr"`
	Forward   Scores          `yaml:"forward"`
	Backward  Scores          `yaml:"backward"`
}

// NewRecord stamps rep with a fresh UUID and the current UTC time.
func NewRecord(dataset, metric string, rep *metrics.Report) (*Record, error) {
	if rep == nil {
		return nil, ErrNilReport
	}
	if err := checkDataset(dataset); err != nil {
		return nil, err
	}

	return &Record{
		ID:        uuid.NewString(),
		Dataset:   dataset,
		CreatedAt: time.Now().UTC(),
		Metric:    metric,
		Pairs:     rep.Pairs,
		Ks:        append([]int(nil), rep.Ks...),
		Hits:      rep.Hits,
		MRR:       rep.MRR,
		Forward:   Scores{Hits: rep.Forward.Hits, MRR: rep.Forward.MRR},
		Backward:  Scores{Hits: rep.Backward.Hits, MRR: rep.Backward.MRR},
	}, nil
}

// WriteReport creates runDir and writes rec as runDir/metrics.yaml.
// It returns the file path.
func WriteReport(runDir string, rec *Record) (string, error) {
	if rec == nil {
		return "", ErrNilReport
	}
	if err := os.MkdirAll(runDir, dirPerm); err != nil {
		return "", fmt.Errorf("runlog: create %s: %w", runDir, err)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("runlog: encode report: %w", err)
	}
	path := filepath.Join(runDir, ReportFile)
	if err = os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("runlog: write %s: %w", path, err)
	}

	return path, nil
}

// ReadReport loads a metrics.yaml written by WriteReport.
func ReadReport(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runlog: read %s: %w", path, err)
	}
	var rec Record
	if err = yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("runlog: decode %s: %w", path, err)
	}

	return &rec, nil
}
