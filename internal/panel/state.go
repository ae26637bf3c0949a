package panel

// Tab selects the workflow modal's content.
type Tab int

const (
	TabIntake Tab = iota
	TabInterview
)

func (t Tab) String() string {
	switch t {
	case TabIntake:
		return "intake"
	case TabInterview:
		return "interview"
	default:
		return "unknown"
	}
}

// Title returns the tab header text.
func (t Tab) Title() string {
	switch t {
	case TabIntake:
		return "Add New Employee"
	case TabInterview:
		return "Online Interview"
	default:
		return ""
	}
}

// State is a snapshot of the panel's display flags.
//
// AccountExpanded implies !Collapsed.
type State struct {
	Collapsed       bool
	AccountExpanded bool
	ModalOpen       bool
	ActiveTab       Tab
}
