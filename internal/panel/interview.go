package panel

import (
	"log"

	"github.com/tinytelemetry/tecvac/internal/model"
)

// SessionState is the interview lifecycle state.
type SessionState int

const (
	// SessionIdle covers both "not scheduled" and "scheduled, not started";
	// the scheduling form is the idle view.
	SessionIdle SessionState = iota
	// SessionActive shows the read-only summary of a running interview.
	SessionActive
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionActive:
		return "active"
	default:
		return "unknown"
	}
}

// InterviewSession drives the simulated interview. There is no timer and no
// media; Active is purely a display flag.
type InterviewSession struct {
	state   SessionState
	request model.InterviewRequest
}

// NewInterviewSession returns an idle session with an empty request.
func NewInterviewSession() *InterviewSession {
	return &InterviewSession{request: model.NewInterviewRequest()}
}

// State returns the current lifecycle state.
func (s *InterviewSession) State() SessionState {
	return s.state
}

// Active reports whether an interview is in progress.
func (s *InterviewSession) Active() bool {
	return s.state == SessionActive
}

// Request returns a copy of the request.
func (s *InterviewSession) Request() model.InterviewRequest {
	return s.request
}

// UpdateField assigns value to field while idle. Returns false, changing
// nothing, while the session is active.
func (s *InterviewSession) UpdateField(field model.InterviewField, value string) bool {
	if s.state != SessionIdle {
		return false
	}
	s.request.Set(field, value)
	return true
}

// Start moves Idle to Active. It requires a candidate name and a position.
func (s *InterviewSession) Start() bool {
	if s.state != SessionIdle || !s.request.Startable() {
		return false
	}
	s.state = SessionActive
	log.Printf("panel: starting interview with %s for %s (%s)", s.request.CandidateName, s.request.Position, s.request.Type)
	return true
}

// End moves Active to Idle and discards the request. No-op while idle.
func (s *InterviewSession) End() bool {
	if s.state != SessionActive {
		return false
	}
	log.Printf("panel: interview with %s ended", s.request.CandidateName)
	s.Reset()
	return true
}

// Reset forces the session idle and clears the request, whatever the state.
func (s *InterviewSession) Reset() {
	s.state = SessionIdle
	s.request = model.NewInterviewRequest()
}
