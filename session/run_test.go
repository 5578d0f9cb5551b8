package session

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func newRunSession(t *testing.T, board string, mutate func(*utils.Config)) *Session {
	t.Helper()
	cfg := createTestConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, WithBoard(mustParse(t, board)))
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return s
}

func TestRunNotPlayingReturnsImmediately(t *testing.T) {
	s := newRunSession(t, blinker, nil)

	calls := 0
	if err := s.Run(context.Background(), func(State, StepStatus) { calls++ }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no steps, got %d", calls)
	}
}

func TestRunStopsOnConclusion(t *testing.T) {
	const block = `
....
.##.
.##.
....`
	s := newRunSession(t, block, nil)
	s.Play()

	var statuses []StepStatus
	err := s.Run(context.Background(), func(st State, status StepStatus) {
		statuses = append(statuses, status)
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(statuses) != 1 || statuses[0] != StepConcluded {
		t.Errorf("Expected a single concluded step, got %v", statuses)
	}
	if st := s.Snapshot(); !st.Concluded || st.Playing {
		t.Errorf("Expected concluded and paused, got %+v", st)
	}
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	s := newRunSession(t, blinker, func(cfg *utils.Config) {
		cfg.MaxGenerations = 3
	})
	s.Play()

	calls := 0
	if err := s.Run(context.Background(), func(State, StepStatus) { calls++ }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	st := s.Snapshot()
	if st.Generation != 3 || calls != 3 {
		t.Errorf("Expected 3 generations and callbacks, got %d and %d", st.Generation, calls)
	}
	if st.Playing {
		t.Error("Expected session to stop playing at the generation ceiling")
	}
	if st.Concluded {
		t.Error("Expected blinker not to conclude")
	}
}

func TestRunStopsOnPause(t *testing.T) {
	s := newRunSession(t, blinker, nil)
	s.Play()

	err := s.Run(context.Background(), func(st State, _ StepStatus) {
		if st.Generation == 2 {
			s.Pause()
		}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if gen := s.Snapshot().Generation; gen != 2 {
		t.Errorf("Expected to stop at generation 2, got %d", gen)
	}
}

func TestRunContextCancelled(t *testing.T) {
	s := newRunSession(t, blinker, func(cfg *utils.Config) {
		cfg.TickDelay = time.Hour
	})
	s.Play()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := s.Run(ctx, func(State, StepStatus) { cancel() })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}

	st := s.Snapshot()
	if st.Generation != 1 {
		t.Errorf("Expected one step before cancellation, got %d", st.Generation)
	}
	if !st.Playing {
		t.Error("Expected cancellation to leave the play flag alone")
	}
}
