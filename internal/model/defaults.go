package model

// Shared defaults used by the CLI and the TUI.
const (
	DefaultSkin      = "teal"
	DefaultRoute     = Route("/dashboard")
	DefaultUserName  = "Evan Chimwaza"
	DefaultUserTitle = "HR Manager"
)
