package model

import "github.com/sheikhrachel/go-life/rules"

// Outcome is the result of Step: either Conclusion or StepResult
type Outcome interface {
	outcome()
}

// Conclusion reports that the next generation equals the current one
type Conclusion struct{}

// StepResult carries the next generation and its minimum allowable dimensions
type StepResult struct {
	Board         *Board
	MinDimensions Dimensions
}

func (Conclusion) outcome() {}
func (StepResult) outcome() {}

// countNeighbors counts living cells around (row, col). Positions off the
// board count as dead.
func (b *Board) countNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(b.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(b.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[r][c] == Alive {
				count++
			}
		}
	}

	return count
}

// nextGeneration applies the Conway rule to every cell of b
func (b *Board) nextGeneration() (next *Board, changed bool) {
	next = newBlankBoard(b.width, b.height)

	for r := range b.height {
		for c := range b.width {
			alive := b.cells[r][c] == Alive
			nextAlive := rules.ApplyConwayRules(b.countNeighbors(r, c), alive)
			if nextAlive {
				next.cells[r][c] = Alive
			}
			if nextAlive != alive {
				changed = true
			}
		}
	}

	return next, changed
}

/*
Step advances b by one generation.

It returns Conclusion when the next generation is cell-for-cell identical to b,
which includes the all-dead board. Otherwise it returns a StepResult holding a
newly allocated board and its MinimumAllowableDimensions. b is not modified.
*/
func Step(b *Board) Outcome {
	next, changed := b.nextGeneration()
	if !changed {
		return Conclusion{}
	}
	return StepResult{
		Board:         next,
		MinDimensions: MinimumAllowableDimensions(next),
	}
}
