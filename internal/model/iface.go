package model

// Router is the navigation collaborator the panel talks to. The panel never
// keeps its own notion of the current route.
type Router interface {
	CurrentRoute() Route
	Navigate(route Route)
}

// IntakeSink accepts submitted employee records. There is no backend, so
// implementations log and acknowledge; Accept never reports failure to the
// caller.
type IntakeSink interface {
	Accept(record EmployeeRecord) Receipt
}
