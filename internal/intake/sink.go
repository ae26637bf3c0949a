// Package intake holds the destinations for accepted employee records.
package intake

import (
	"log"
	"time"

	"github.com/rs/xid"

	"github.com/tinytelemetry/tecvac/internal/model"
)

// LogSink acknowledges every record and writes one log line for it. It
// keeps nothing.
type LogSink struct {
	now func() time.Time
}

// NewLogSink returns a sink stamped with the wall clock.
func NewLogSink() *LogSink {
	return &LogSink{now: time.Now}
}

// Accept logs record and returns a fresh receipt.
func (s *LogSink) Accept(record model.EmployeeRecord) model.Receipt {
	receipt := newReceipt(s.now)
	log.Printf("intake: adding new employee %s (%s, %s) receipt=%s",
		record.FullName(), record.EmployeeID, record.Department.Label(), receipt.ID)
	return receipt
}

func newReceipt(now func() time.Time) model.Receipt {
	if now == nil {
		now = time.Now
	}
	return model.Receipt{ID: xid.New().String(), AcceptedAt: now().UTC()}
}
