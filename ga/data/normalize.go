package data

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/baldhumanity/mlp-ga/ga"
)

// minStd is the smallest standard deviation used for scaling; constant features are
// scaled by 1 instead.
const minStd = 1e-10

// Normalize applies z-score normalization per feature using the population standard
// deviation, and stores the statistics.
func (d *Dataset) Normalize() {
	nf := d.NumFeatures()
	if nf == 0 {
		return
	}
	means := make([]float64, nf)
	stds := make([]float64, nf)
	column := make([]float64, d.NumSamples())
	for j := 0; j < nf; j++ {
		for i, row := range d.features {
			column[i] = row[j]
		}
		means[j], stds[j] = stat.PopMeanStdDev(column, nil)
		if stds[j] < minStd {
			stds[j] = 1.0
		}
	}
	d.featureMeans = means
	d.featureStds = stds
	d.apply(means, stds)
}

// NormalizeWithStats scales the features with externally computed statistics, e.g.
// those of a training set.
func (d *Dataset) NormalizeWithStats(means, stds []float64) error {
	nf := d.NumFeatures()
	if len(means) != nf || len(stds) != nf {
		return fmt.Errorf("statistics for %d/%d features, dataset has %d: %w", len(means), len(stds), nf, ga.ErrSizeMismatch)
	}
	d.apply(means, stds)
	return nil
}

func (d *Dataset) apply(means, stds []float64) {
	for _, row := range d.features {
		for j := range row {
			row[j] = (row[j] - means[j]) / stds[j]
		}
	}
}

// FeatureMeans returns the means computed by Normalize, or nil.
func (d *Dataset) FeatureMeans() []float64 { return d.featureMeans }

// FeatureStds returns the scaling factors computed by Normalize, or nil.
func (d *Dataset) FeatureStds() []float64 { return d.featureStds }
