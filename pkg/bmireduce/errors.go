package bmireduce

import "errors"

// Sentinel errors for common error conditions
var (
	// Input errors
	ErrOpenInput = errors.New("unable to open input file")
	ErrReadInput = errors.New("unable to read input file")

	// Planning errors
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")
	ErrUnknownPolicy      = errors.New("unknown partition policy")
)
