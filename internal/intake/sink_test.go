package intake

import (
	"testing"
	"time"
)

func TestLogSink_AcceptStampsReceipt(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 2, 9, 30, 0, 0, time.FixedZone("CAT", 2*60*60))
	s := &LogSink{now: func() time.Time { return fixed }}

	r := s.Accept(sampleRecord("E-7"))
	if r.ID == "" {
		t.Fatal("receipt ID is empty")
	}
	if !r.AcceptedAt.Equal(fixed) || r.AcceptedAt.Location() != time.UTC {
		t.Fatalf("accepted at = %v, want %v in UTC", r.AcceptedAt, fixed)
	}

	if again := s.Accept(sampleRecord("E-7")); again.ID == r.ID {
		t.Fatalf("receipt IDs repeat: %q", r.ID)
	}
}
