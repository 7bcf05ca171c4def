package data

import (
	"errors"
	"fmt"

	"github.com/baldhumanity/mlp-ga/ga"
)

// ErrInvalidFold is returned for a fold id outside [0, k).
var ErrInvalidFold = errors.New("invalid fold")

// Split is one train/test partition; rows keep their dataset order.
type Split struct {
	TrainX [][]float64
	TrainY []int
	TestX  [][]float64
	TestY  []int
}

// Splitter provides train/test partitions by fold id.
type Splitter interface {
	Split(fold int) (Split, error)
}

// CreateFolds assigns every sample to one of k folds using a stream seeded with seed.
// The same (k, seed) always yields the same assignment.
func (d *Dataset) CreateFolds(k int, seed int64) error {
	return d.CreateFoldsFrom(k, ga.NewSource(seed))
}

// CreateFoldsFrom shuffles the sample indices with rng and assigns fold id
// position mod k, giving near-equal fold sizes. Classes are not balanced.
func (d *Dataset) CreateFoldsFrom(k int, rng ga.Random) error {
	if k < 1 {
		return fmt.Errorf("number of folds must be positive, got %d", k)
	}
	n := d.NumSamples()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng.Shuffle(n, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

	folds := make([]int, n)
	for pos, idx := range indices {
		folds[idx] = pos % k
	}
	d.folds = folds
	d.numFolds = k
	return nil
}

// NumFolds returns k, or 0 before folds are created.
func (d *Dataset) NumFolds() int { return d.numFolds }

// FoldAssignment returns the fold id of every sample, or nil before folds are created.
func (d *Dataset) FoldAssignment() []int {
	if d.folds == nil {
		return nil
	}
	return append([]int(nil), d.folds...)
}

// Split returns the samples of fold as the test partition and all others as the
// training partition.
func (d *Dataset) Split(fold int) (Split, error) {
	if d.folds == nil {
		return Split{}, ga.ErrFoldsNotInitialized
	}
	if fold < 0 || fold >= d.numFolds {
		return Split{}, fmt.Errorf("fold %d not in [0, %d): %w", fold, d.numFolds, ErrInvalidFold)
	}
	var s Split
	for i, f := range d.folds {
		if f == fold {
			s.TestX = append(s.TestX, d.features[i])
			s.TestY = append(s.TestY, d.labels[i])
		} else {
			s.TrainX = append(s.TrainX, d.features[i])
			s.TrainY = append(s.TrainY, d.labels[i])
		}
	}
	return s, nil
}
