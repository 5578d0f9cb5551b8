package model

import "github.com/pkg/errors"

// SetCells returns a copy of b with every point set to value.
// Duplicate points are allowed; the last write wins.
func SetCells(b *Board, points []Point, value Cell) (*Board, error) {
	if !value.valid() {
		return nil, errors.Wrapf(ErrInvalidCell, "[SetCells] %d", value)
	}
	for _, p := range points {
		if !b.inBounds(p.Row, p.Col) {
			return nil, errors.Wrapf(ErrOutOfBounds,
				"[SetCells] (%d, %d) on %dx%d board", p.Row, p.Col, b.width, b.height)
		}
	}

	next := b.Clone()
	for _, p := range points {
		next.cells[p.Row][p.Col] = value
	}
	return next, nil
}
