package model

import "github.com/pkg/errors"

/*
Resize returns b cropped or padded to width x height.

The top-left corner is fixed: growing appends dead columns on the right and
dead rows at the bottom, shrinking drops them from the same edges. Each axis is
handled independently. When the dimensions already match, Resize returns
(nil, false, nil) so the caller keeps its current board.

Resize does not protect live cells; clamp against MinimumAllowableDimensions
first if they must survive.
*/
func Resize(b *Board, width, height int) (*Board, bool, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, false, errors.Wrap(err, "[Resize]")
	}
	if width == b.width && height == b.height {
		return nil, false, nil
	}

	next := newBlankBoard(width, height)
	keepRows := min(height, b.height)
	for r := range keepRows {
		copy(next.cells[r], b.cells[r][:min(width, b.width)])
	}
	return next, true, nil
}
