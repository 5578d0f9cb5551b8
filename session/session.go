package session

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// StepStatus describes what a call to Session.Step did
type StepStatus int

const (
	// StepIgnored means the session had already concluded
	StepIgnored StepStatus = iota
	// StepAdvanced means a new generation replaced the board
	StepAdvanced
	// StepConcluded means the board reached a fixed point
	StepConcluded
)

func (s StepStatus) String() string {
	switch s {
	case StepAdvanced:
		return "advanced"
	case StepConcluded:
		return "concluded"
	default:
		return "ignored"
	}
}

// State is a point-in-time copy of a session. Board values are immutable, so
// holding on to State.Board is safe.
type State struct {
	Board      *model.Board
	Generation int
	Playing    bool
	Concluded  bool
	MinWidth   int
	MinHeight  int
	HasInitial bool
}

// Session owns the orchestration state around the engine: generation count,
// play/pause and conclusion flags, the initial-board snapshot and the
// bounds used to clamp resize requests. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cfg utils.Config
	rng *rand.Rand

	board      *model.Board
	initial    *model.Board
	generation int
	playing    bool
	concluded  bool
	minDims    model.Dimensions
}

// Option configures New
type Option func(*Session)

// WithRand sets the random source used when seeding new boards
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithBoard starts the session from b instead of a random board
func WithBoard(b *model.Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

// New creates a session from cfg. Unless WithBoard is given the first board
// is cfg.Width x cfg.Height with cfg.InitialLiveCells random live cells.
func New(cfg utils.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[session.New]")
	}

	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil && cfg.Seed != 0 {
		s.rng = rand.New(rand.NewSource(cfg.Seed))
	}

	if s.board == nil {
		b, err := s.newRandomBoard(cfg.Width, cfg.Height)
		if err != nil {
			return nil, errors.Wrap(err, "[session.New]")
		}
		s.board = b
	} else if w, h := s.board.Width(), s.board.Height(); w > cfg.MaxWidth || h > cfg.MaxHeight {
		return nil, errors.Wrapf(utils.ErrInvalidConfig,
			"[session.New] board %dx%d exceeds maximum %dx%d", w, h, cfg.MaxWidth, cfg.MaxHeight)
	}

	s.minDims = model.MinimumAllowableDimensions(s.board)
	return s, nil
}

func (s *Session) newRandomBoard(width, height int) (*model.Board, error) {
	var opts []model.BoardOption
	if s.rng != nil {
		opts = append(opts, model.WithRand(s.rng))
	}
	return model.NewBoard(width, height, s.cfg.InitialLiveCells, opts...)
}

// Config returns the configuration the session was created with
func (s *Session) Config() utils.Config {
	return s.cfg
}

// Snapshot returns the current state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	return State{
		Board:      s.board,
		Generation: s.generation,
		Playing:    s.playing,
		Concluded:  s.concluded,
		MinWidth:   s.minDims.Width,
		MinHeight:  s.minDims.Height,
		HasInitial: s.initial != nil,
	}
}

// Step advances the board by one generation. The board a run starts from is
// snapshotted on the first step so Reset can restore it.
func (s *Session) Step() StepStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.concluded {
		return StepIgnored
	}

	switch out := model.Step(s.board).(type) {
	case model.Conclusion:
		s.concluded = true
		s.playing = false
		return StepConcluded
	case model.StepResult:
		if s.generation == 0 {
			s.initial = s.board.Clone()
		}
		s.board = out.Board
		s.minDims = out.MinDimensions
		s.generation++
		return StepAdvanced
	default:
		panic(errors.Errorf("unexpected step outcome %T", out))
	}
}

// Toggle flips the cell at (row, col) and refreshes the minimum dimensions
func (s *Session) Toggle(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := model.Alive
	if s.board.Alive(row, col) {
		value = model.Dead
	}

	next, err := model.SetCells(s.board, []model.Point{{Row: row, Col: col}}, value)
	if err != nil {
		return errors.Wrap(err, "[Toggle]")
	}

	s.board = next
	s.minDims = model.MinimumAllowableDimensions(next)
	return nil
}

// ClampDimensions limits a requested size to the configured bounds and to
// the minimum that keeps every live cell on the board.
func (s *Session) ClampDimensions(width, height int) model.Dimensions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clampLocked(width, height)
}

func (s *Session) clampLocked(width, height int) model.Dimensions {
	minWidth := max(s.cfg.MinWidth, s.minDims.Width)
	minHeight := max(s.cfg.MinHeight, s.minDims.Height)
	return model.Dimensions{
		Width:  max(min(width, s.cfg.MaxWidth), minWidth),
		Height: max(min(height, s.cfg.MaxHeight), minHeight),
	}
}

// Resize clamps the requested size (see ClampDimensions) and resizes the
// board. It reports false when the clamped size equals the current one.
func (s *Session) Resize(width, height int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dims := s.clampLocked(width, height)
	next, resized, err := model.Resize(s.board, dims.Width, dims.Height)
	if err != nil {
		return false, errors.Wrap(err, "[Resize]")
	}
	if !resized {
		return false, nil
	}

	s.board = next
	return true, nil
}

// Reset restores the board the last run started from, or seeds a fresh
// random board of the current size when no run has started yet.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.initial
	if board == nil {
		b, err := s.newRandomBoard(s.board.Width(), s.board.Height())
		if err != nil {
			return errors.Wrap(err, "[Reset]")
		}
		board = b
	} else {
		board = board.Clone()
	}

	s.board = board
	s.minDims = model.MinimumAllowableDimensions(board)
	s.generation = 0
	s.playing = false
	s.concluded = false
	return nil
}

// Play starts playing; it reports false if the session has concluded
func (s *Session) Play() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.concluded {
		return false
	}
	s.playing = true
	return true
}

// Pause stops playing
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}
