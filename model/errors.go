package model

import "github.com/pkg/errors"

// Contract violations reported by the engine. Returned errors wrap one of
// these, so match with errors.Is.
var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrOutOfBounds       = errors.New("point out of bounds")
	ErrInvalidCell       = errors.New("invalid cell value")
)
