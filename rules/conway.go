package rules

const (
	// BirthNeighbors is the live neighbor count that brings a dead cell to life
	BirthNeighbors = 3
	// SurviveNeighbors is the extra live neighbor count that keeps a live cell alive
	SurviveNeighbors = 2
)

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

B3/S23: a live cell survives with 2 or 3 live neighbors, a dead cell is born
with exactly 3, every other cell is dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == SurviveNeighbors) || neighbors == BirthNeighbors
}
