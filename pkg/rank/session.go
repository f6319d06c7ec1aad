package rank

import (
	"context"
	"sync"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// Status is the lifecycle of a session's current search.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSearching Status = "searching"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// State is a snapshot of a session. Entries and Err are only set for
// the succeeded and failed statuses respectively.
type State struct {
	Status   Status
	Term     string
	Entries  []vocab.RankedEntry
	Degraded bool
	Err      error
}

// Session holds the outcome of the most recent search. Starting a new
// search cancels the one in flight; a canceled search's result is
// dropped, never written over a newer one.
type Session struct {
	pipeline *Pipeline

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      State
}

// NewSession creates an idle session around pipeline.
func NewSession(pipeline *Pipeline) *Session {
	return &Session{
		pipeline: pipeline,
		state:    State{Status: StatusIdle},
	}
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Search runs a ranked search and returns the session state once it
// settles. If a newer search supersedes this one, its result is
// discarded and the newer search's state is returned instead.
func (s *Session) Search(ctx context.Context, term string) State {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = State{Status: StatusSearching, Term: term}
	s.mu.Unlock()

	res, err := s.pipeline.Run(runCtx, term)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// Superseded while running; whoever superseded us already
		// called our cancel.
		return s.state
	}
	cancel()
	s.cancel = nil

	if err != nil {
		s.state = State{Status: StatusFailed, Term: term, Err: err}
	} else {
		s.state = State{
			Status:   StatusSucceeded,
			Term:     res.Term,
			Entries:  res.Entries,
			Degraded: res.Degraded,
		}
	}
	return s.state
}

// Clear cancels any in-flight search and resets the session to idle.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = State{Status: StatusIdle}
}
