package model

// InterviewType is how the interview is conducted.
type InterviewType string

const (
	InterviewVideo    InterviewType = "video"
	InterviewPhone    InterviewType = "phone"
	InterviewInPerson InterviewType = "in-person"
)

// InterviewTypes lists the interview types in display order.
var InterviewTypes = []InterviewType{InterviewVideo, InterviewPhone, InterviewInPerson}

// Label returns the option text shown in the interview type select.
func (t InterviewType) Label() string {
	switch t {
	case InterviewVideo:
		return "Video Conference"
	case InterviewPhone:
		return "Phone Call"
	case InterviewInPerson:
		return "In Person"
	default:
		return string(t)
	}
}

// InterviewField names one field of an InterviewRequest.
type InterviewField int

const (
	FieldCandidateName InterviewField = iota
	FieldInterviewPosition
	FieldInterviewDate
	FieldInterviewTime
	FieldInterviewType
	FieldNotes
)

// InterviewFields lists every field in form order.
var InterviewFields = []InterviewField{
	FieldCandidateName,
	FieldInterviewPosition,
	FieldInterviewDate,
	FieldInterviewTime,
	FieldInterviewType,
	FieldNotes,
}

func (f InterviewField) String() string {
	switch f {
	case FieldCandidateName:
		return "candidateName"
	case FieldInterviewPosition:
		return "position"
	case FieldInterviewDate:
		return "date"
	case FieldInterviewTime:
		return "time"
	case FieldInterviewType:
		return "type"
	case FieldNotes:
		return "notes"
	default:
		return "unknown"
	}
}

// Label returns the form label for the field.
func (f InterviewField) Label() string {
	switch f {
	case FieldCandidateName:
		return "Candidate Name"
	case FieldInterviewPosition:
		return "Position"
	case FieldInterviewDate:
		return "Interview Date"
	case FieldInterviewTime:
		return "Interview Time"
	case FieldInterviewType:
		return "Interview Type"
	case FieldNotes:
		return "Notes"
	default:
		return ""
	}
}

// InterviewRequest describes the interview being scheduled or run.
type InterviewRequest struct {
	CandidateName string        `json:"candidateName"`
	Position      string        `json:"position"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Type          InterviewType `json:"type"`
	Notes         string        `json:"notes"`
}

// NewInterviewRequest returns the empty request the scheduling form starts
// from. Video is preselected.
func NewInterviewRequest() InterviewRequest {
	return InterviewRequest{Type: InterviewVideo}
}

// Get returns the value of field f.
func (r InterviewRequest) Get(f InterviewField) string {
	switch f {
	case FieldCandidateName:
		return r.CandidateName
	case FieldInterviewPosition:
		return r.Position
	case FieldInterviewDate:
		return r.Date
	case FieldInterviewTime:
		return r.Time
	case FieldInterviewType:
		return string(r.Type)
	case FieldNotes:
		return r.Notes
	default:
		return ""
	}
}

// Set assigns value to field f. Unknown fields are ignored.
func (r *InterviewRequest) Set(f InterviewField, value string) {
	switch f {
	case FieldCandidateName:
		r.CandidateName = value
	case FieldInterviewPosition:
		r.Position = value
	case FieldInterviewDate:
		r.Date = value
	case FieldInterviewTime:
		r.Time = value
	case FieldInterviewType:
		r.Type = InterviewType(value)
	case FieldNotes:
		r.Notes = value
	}
}

// Startable reports whether the request carries enough to start a session.
func (r InterviewRequest) Startable() bool {
	return r.CandidateName != "" && r.Position != ""
}
