package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/campoy/unique"

	"github.com/baldhumanity/mlp-ga/ga"
)

// DefaultLabels maps the WDBC diagnosis column to class labels.
var DefaultLabels = map[string]int{"M": 1, "B": 0}

// Dataset is a labeled, row-aligned sample set with an optional fold assignment.
type Dataset struct {
	features [][]float64
	labels   []int
	ids      []string

	featureMeans []float64
	featureStds  []float64

	numFolds int
	folds    []int // sample index -> fold id; nil until folds are created
}

// New creates a dataset from row-aligned features and labels. All rows must have the
// same number of features.
func New(features [][]float64, labels []int) (*Dataset, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("%d feature rows but %d labels: %w", len(features), len(labels), ga.ErrSizeMismatch)
	}
	for i, row := range features {
		if len(row) != len(features[0]) {
			return nil, fmt.Errorf("row %d has %d features, expected %d: %w", i, len(row), len(features[0]), ga.ErrSizeMismatch)
		}
	}
	d := &Dataset{
		features: make([][]float64, len(features)),
		labels:   append([]int(nil), labels...),
		ids:      make([]string, len(features)),
	}
	for i, row := range features {
		d.features[i] = append([]float64(nil), row...)
		d.ids[i] = strconv.Itoa(i)
	}
	return d, nil
}

// LoadOptions controls CSV ingestion.
type LoadOptions struct {
	NumFeatures int            // Feature columns following the id and label columns.
	Labels      map[string]int // Label column value -> class; DefaultLabels when nil.
	Warnings    io.Writer      // Skipped rows are reported here; discarded when nil.
}

// LoadFile reads a CSV file laid out as id,label,feature1..featureN.
func LoadFile(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file '%s': %w", path, err)
	}
	defer f.Close()

	d, err := LoadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load data file '%s': %w", path, err)
	}
	return d, nil
}

// LoadCSV reads id,label,feature1..featureN records. Rows with an unknown label or an
// incomplete or unparsable feature set are skipped; extra columns are ignored.
func LoadCSV(r io.Reader, opts LoadOptions) (*Dataset, error) {
	if opts.NumFeatures < 1 {
		return nil, fmt.Errorf("number of features must be positive")
	}
	labelMap := opts.Labels
	if labelMap == nil {
		labelMap = DefaultLabels
	}
	warn := opts.Warnings
	if warn == nil {
		warn = io.Discard
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	d := &Dataset{}
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 2 {
			fmt.Fprintf(warn, "Error reading diagnosis at line %d\n", line)
			continue
		}
		label, ok := labelMap[strings.TrimSpace(record[1])]
		if !ok {
			fmt.Fprintf(warn, "Unknown diagnosis label at line %d: %s\n", line, record[1])
			continue
		}
		row, err := parseFeatures(record[2:], opts.NumFeatures)
		if err != nil {
			fmt.Fprintf(warn, "Incomplete feature set at line %d: %v\n", line, err)
			continue
		}
		d.ids = append(d.ids, strings.TrimSpace(record[0]))
		d.labels = append(d.labels, label)
		d.features = append(d.features, row)
	}

	if len(d.features) == 0 {
		return nil, fmt.Errorf("no valid samples loaded")
	}
	return d, nil
}

func parseFeatures(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("found %d features, expected %d", len(fields), n)
	}
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// NumSamples returns the number of samples.
func (d *Dataset) NumSamples() int { return len(d.features) }

// NumFeatures returns the number of features per sample.
func (d *Dataset) NumFeatures() int {
	if len(d.features) == 0 {
		return 0
	}
	return len(d.features[0])
}

// Features returns the feature rows. The slice is shared with the dataset.
func (d *Dataset) Features() [][]float64 { return d.features }

// Labels returns the labels. The slice is shared with the dataset.
func (d *Dataset) Labels() []int { return d.labels }

// IDs returns the sample identifiers.
func (d *Dataset) IDs() []string { return d.ids }

// Classes returns the distinct labels in ascending order.
func (d *Dataset) Classes() []int {
	classes := append([]int(nil), d.labels...)
	unique.Slice(&classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

// ClassCounts returns the number of samples per label.
func (d *Dataset) ClassCounts() map[int]int {
	counts := make(map[int]int)
	for _, l := range d.labels {
		counts[l]++
	}
	return counts
}

// WriteStatistics prints the sample count and class distribution.
func (d *Dataset) WriteStatistics(w io.Writer) {
	n := d.NumSamples()
	fmt.Fprintf(w, "\n===== Dataset Statistics =====\n")
	fmt.Fprintf(w, "Number of samples: %d\n", n)
	fmt.Fprintf(w, "Number of features: %d\n", d.NumFeatures())
	fmt.Fprintf(w, "Class distribution:\n")
	counts := d.ClassCounts()
	for _, c := range d.Classes() {
		fmt.Fprintf(w, "  Class %d: %d (%.2f%%)\n", c, counts[c], 100*float64(counts[c])/float64(n))
	}
	if d.featureMeans != nil {
		fmt.Fprintf(w, "Features normalized with z-score (mean ~0, std ~1)\n")
	}
	fmt.Fprintf(w, "==============================\n\n")
}
