package model

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Cell is the state of a single board position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

const (
	cellAliveGlyph = '#'
	cellDeadGlyph  = '.'
)

// Dimensions is a (width, height) pair
type Dimensions struct {
	Width  int
	Height int
}

// Point addresses a cell by row and column
type Point struct {
	Row int
	Col int
}

// Board is a rectangular grid of cells indexed [row][column], row 0 at the top.
// A Board is never modified after construction; every operation that
// changes cells returns a new Board.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

type boardOptions struct {
	rng *rand.Rand
}

// BoardOption configures NewBoard
type BoardOption func(*boardOptions)

// WithRand sets the random source used to place live cells
func WithRand(rng *rand.Rand) BoardOption {
	return func(o *boardOptions) {
		o.rng = rng
	}
}

// newBlankBoard allocates an all-dead board; callers validate dimensions
func newBlankBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	return nil
}

/*
NewBoard creates a width x height board with liveCells distinct cells set alive.

Positions are drawn uniformly without replacement. A non-positive liveCells
yields a blank board, and a count above width*height is clamped.
*/
func NewBoard(width, height, liveCells int, opts ...BoardOption) (*Board, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewBoard]")
	}

	b := newBlankBoard(width, height)
	if liveCells <= 0 {
		return b, nil
	}

	o := boardOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	total := width * height
	liveCells = min(liveCells, total)

	// Partial Fisher-Yates over flat positions: the first liveCells entries
	// of the permutation are the chosen cells.
	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}
	for i := range liveCells {
		j := i + o.rng.Intn(total-i)
		positions[i], positions[j] = positions[j], positions[i]
		b.cells[positions[i]/width][positions[i]%width] = Alive
	}

	return b, nil
}

// NewBoardFromRows builds a board from a copy of rows
func NewBoardFromRows(rows [][]Cell) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[NewBoardFromRows] no rows")
	}

	width := len(rows[0])
	if err := checkDimensions(width, len(rows)); err != nil {
		return nil, errors.Wrap(err, "[NewBoardFromRows]")
	}

	b := newBlankBoard(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions,
				"[NewBoardFromRows] row %d has %d columns, want %d", r, len(row), width)
		}
		for c, v := range row {
			if !v.valid() {
				return nil, errors.Wrapf(ErrInvalidCell, "[NewBoardFromRows] %d at (%d, %d)", v, r, c)
			}
		}
		copy(b.cells[r], row)
	}
	return b, nil
}

// ParseBoard reads one row per line. '#', 'O', 'o', '*' and '1' are alive;
// '.', '0', '-', '_' and ' ' are dead. Blank lines are skipped.
func ParseBoard(s string) (*Board, error) {
	var rows [][]Cell
	for lineNo, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', 'O', 'o', '*', '1':
				row = append(row, Alive)
			case '.', '0', '-', '_', ' ':
				row = append(row, Dead)
			default:
				return nil, errors.Wrapf(ErrInvalidCell, "[ParseBoard] %q on line %d", ch, lineNo+1)
			}
		}
		rows = append(rows, row)
	}
	return NewBoardFromRows(rows)
}

func (c Cell) valid() bool {
	return c == Dead || c == Alive
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Dimensions returns the board's (width, height)
func (b *Board) Dimensions() Dimensions {
	return Dimensions{Width: b.width, Height: b.height}
}

// Get returns the cell at (row, col); positions off the board are Dead
func (b *Board) Get(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Dead
	}
	return b.cells[row][col]
}

// Alive reports whether the cell at (row, col) is alive
func (b *Board) Alive(row, col int) bool {
	return b.Get(row, col) == Alive
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Rows returns a copy of the cell grid
func (b *Board) Rows() [][]Cell {
	return b.Clone().cells
}

// Clone returns a deep copy that shares no storage with b
func (b *Board) Clone() *Board {
	next := newBlankBoard(b.width, b.height)
	for r := range b.cells {
		copy(next.cells[r], b.cells[r])
	}
	return next
}

// LiveCount returns the number of living cells
func (b *Board) LiveCount() (count int) {
	for r := range b.height {
		for c := range b.width {
			if b.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for r := range b.height {
		for c := range b.width {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the board in the format ParseBoard accepts
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for r := range b.height {
		for c := range b.width {
			if b.cells[r][c] == Alive {
				sb.WriteByte(cellAliveGlyph)
			} else {
				sb.WriteByte(cellDeadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
