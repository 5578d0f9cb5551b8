package render

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ANSI: clear screen, cursor home
	clearSequence = "\033[2J\033[H"
)

// TerminalRenderer writes boards to a terminal
type TerminalRenderer struct {
	Out  io.Writer
	pool *FramePool
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out, pool: NewFramePool()}
}

// Display renders the board, one line per row
func (r *TerminalRenderer) Display(b *model.Board) error {
	buf := r.pool.Get()
	defer r.pool.Put(buf)

	for row := range b.Height() {
		for col := range b.Width() {
			if b.Alive(row, col) {
				buf.WriteString(gridPosBlock)
			} else {
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteByte('\n')
	}

	_, err := r.Out.Write(buf.Bytes())
	return errors.Wrap(err, "[Display]")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearSequence)
	return errors.Wrap(err, "[Clear]")
}

// Status formats a one-line summary of a session state
func Status(st session.State) string {
	status := "Paused"
	switch {
	case st.Concluded:
		status = "Concluded"
	case st.Playing:
		status = "Playing"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Board: %dx%d | Min: %dx%d | Status: %s",
		st.Generation, st.Board.LiveCount(), st.Board.Width(), st.Board.Height(),
		st.MinWidth, st.MinHeight, status)
}
