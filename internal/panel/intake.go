package panel

import (
	"log"

	"github.com/tinytelemetry/tecvac/internal/model"
)

// IntakeForm holds the employee record being entered in the intake tab.
type IntakeForm struct {
	record model.EmployeeRecord
	sink   model.IntakeSink
}

// NewIntakeForm returns an empty form that hands accepted records to sink.
// A nil sink only logs.
func NewIntakeForm(sink model.IntakeSink) *IntakeForm {
	return &IntakeForm{sink: sink}
}

// Record returns a copy of the record as currently entered.
func (f *IntakeForm) Record() model.EmployeeRecord {
	return f.record
}

// UpdateField assigns value to field. No cross-field validation is done.
func (f *IntakeForm) UpdateField(field model.EmployeeField, value string) {
	f.record.Set(field, value)
}

// Missing returns the required fields that are still empty.
func (f *IntakeForm) Missing() []model.EmployeeField {
	return f.record.Missing()
}

// Submit hands the record to the sink and clears the form. It refuses, and
// leaves the record untouched, while any required field is empty.
func (f *IntakeForm) Submit() (model.Receipt, bool) {
	if !f.record.Complete() {
		return model.Receipt{}, false
	}

	var receipt model.Receipt
	if f.sink != nil {
		receipt = f.sink.Accept(f.record)
	} else {
		log.Printf("panel: adding new employee %s (%s)", f.record.FullName(), f.record.EmployeeID)
	}
	f.Reset()
	return receipt, true
}

// Reset clears every field.
func (f *IntakeForm) Reset() {
	f.record = model.EmployeeRecord{}
}
