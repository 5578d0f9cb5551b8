package session

import (
	"context"
	"time"
)

// canStepLocked mirrors the run-loop guard: playing, not concluded and
// below the generation ceiling (0 means no ceiling).
func (s *Session) canStepLocked() bool {
	if !s.playing || s.concluded {
		return false
	}
	return s.cfg.MaxGenerations == 0 || s.generation < s.cfg.MaxGenerations
}

/*
Run steps the session every TickDelay while it is playing.

It returns nil once the session is paused, concludes or reaches
MaxGenerations, and ctx.Err() if ctx is cancelled first. onStep, when non-nil,
is called after each step with the resulting state.
*/
func (s *Session) Run(ctx context.Context, onStep func(State, StepStatus)) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		s.mu.Lock()
		if !s.canStepLocked() {
			if !s.concluded && s.cfg.MaxGenerations > 0 && s.generation >= s.cfg.MaxGenerations {
				s.playing = false
			}
			s.mu.Unlock()
			return nil
		}
		s.mu.Unlock()

		status := s.Step()
		if onStep != nil {
			onStep(s.Snapshot(), status)
		}

		timer.Reset(s.cfg.TickDelay)
	}
}
