package panel

import (
	"testing"

	"github.com/tinytelemetry/tecvac/internal/model"
)

func TestEnd_WhileIdleIsNoop(t *testing.T) {
	t.Parallel()

	s := NewInterviewSession()
	s.UpdateField(model.FieldCandidateName, "Alice")
	s.UpdateField(model.FieldNotes, "ask about Go")
	before := s.Request()

	if s.End() {
		t.Fatal("End reported a transition while idle")
	}
	if got := s.Request(); got != before {
		t.Fatalf("request changed: got %+v, want %+v", got, before)
	}
	if s.State() != SessionIdle {
		t.Fatalf("state = %v, want idle", s.State())
	}
}

func TestStartEnd_Cycle(t *testing.T) {
	t.Parallel()

	s := NewInterviewSession()
	for round := 0; round < 3; round++ {
		s.UpdateField(model.FieldCandidateName, "Alice")
		s.UpdateField(model.FieldInterviewPosition, "Engineer")
		s.UpdateField(model.FieldInterviewType, string(model.InterviewPhone))

		if !s.Start() {
			t.Fatalf("round %d: Start refused", round)
		}
		if s.State() != SessionActive {
			t.Fatalf("round %d: state = %v, want active", round, s.State())
		}

		if !s.End() {
			t.Fatalf("round %d: End refused", round)
		}
		req := s.Request()
		if s.State() != SessionIdle || req.CandidateName != "" || req.Position != "" {
			t.Fatalf("round %d: after End state=%v request=%+v", round, s.State(), req)
		}
		if req.Type != model.InterviewVideo {
			t.Fatalf("round %d: type = %q, want default video", round, req.Type)
		}
	}
}

func TestStart_RequiresCandidateAndPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		position  string
		want      bool
	}{
		{"both empty", "", "", false},
		{"candidate only", "Alice", "", false},
		{"position only", "", "Engineer", false},
		{"both set", "Alice", "Engineer", true},
	}

	for _, tt := range tests {
		s := NewInterviewSession()
		s.UpdateField(model.FieldCandidateName, tt.candidate)
		s.UpdateField(model.FieldInterviewPosition, tt.position)
		if got := s.Start(); got != tt.want {
			t.Fatalf("%s: Start() = %v, want %v", tt.name, got, tt.want)
		}
		if s.Active() != tt.want {
			t.Fatalf("%s: Active() = %v, want %v", tt.name, s.Active(), tt.want)
		}
	}
}

func TestUpdateField_ReadOnlyWhileActive(t *testing.T) {
	t.Parallel()

	s := NewInterviewSession()
	s.UpdateField(model.FieldCandidateName, "Alice")
	s.UpdateField(model.FieldInterviewPosition, "Engineer")
	s.Start()

	if s.UpdateField(model.FieldCandidateName, "Mallory") {
		t.Fatal("UpdateField accepted while active")
	}
	if got := s.Request().CandidateName; got != "Alice" {
		t.Fatalf("candidate = %q, want Alice", got)
	}
	if s.Start() {
		t.Fatal("Start accepted while already active")
	}
}

func TestReset_ForcesIdleFromAnyState(t *testing.T) {
	t.Parallel()

	s := NewInterviewSession()
	s.UpdateField(model.FieldCandidateName, "Alice")
	s.UpdateField(model.FieldInterviewPosition, "Engineer")
	s.Start()

	s.Reset()
	if s.State() != SessionIdle {
		t.Fatalf("state = %v, want idle", s.State())
	}
	if got, want := s.Request(), model.NewInterviewRequest(); got != want {
		t.Fatalf("request = %+v, want %+v", got, want)
	}
}
