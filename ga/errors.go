package ga

import "errors"

// Precondition errors shared by the optimizer, the network and the dataset.
// Operations wrap them with context, so compare with errors.Is.
var (
	ErrInvalidTopology        = errors.New("invalid topology: at least an input and an output layer are required")
	ErrSizeMismatch           = errors.New("size mismatch")
	ErrMissingFitnessFunction = errors.New("fitness function not set")
	ErrFoldsNotInitialized    = errors.New("folds not initialized")
)
