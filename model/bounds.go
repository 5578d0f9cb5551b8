package model

/*
MinimumAllowableDimensions returns the smallest (width, height) a top-left
anchored crop can take without dropping a live cell.

That is (max live column + 1, max live row + 1), or (1, 1) for a board with
no live cells. Callers clamp the result against their own configured minimum.
*/
func MinimumAllowableDimensions(b *Board) Dimensions {
	maxCol, maxRow := -1, -1

	for r := range b.height {
		for c := range b.width {
			if b.cells[r][c] == Alive {
				maxRow = r
				maxCol = max(maxCol, c)
			}
		}
	}

	return Dimensions{
		Width:  max(maxCol+1, 1),
		Height: max(maxRow+1, 1),
	}
}
