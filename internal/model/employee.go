package model

// Department is the closed set of departments an employee can join.
// The zero value means "not selected yet".
type Department string

const (
	DepartmentUnset       Department = ""
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
)

// Departments lists the selectable departments in display order.
var Departments = []Department{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
}

// Label returns the human readable name shown in the department select.
func (d Department) Label() string {
	switch d {
	case DepartmentUnset:
		return "Select department"
	case DepartmentHR:
		return "Human Resources"
	default:
		return string(d)
	}
}

// EmployeeField names one field of an EmployeeRecord.
type EmployeeField int

const (
	FieldFirstName EmployeeField = iota
	FieldLastName
	FieldEmail
	FieldPhone
	FieldPosition
	FieldDepartment
	FieldEmployeeID
	FieldStartDate
	FieldAddress
)

// EmployeeFields lists every field in form order.
var EmployeeFields = []EmployeeField{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldPosition,
	FieldDepartment,
	FieldEmployeeID,
	FieldStartDate,
	FieldAddress,
}

func (f EmployeeField) String() string {
	switch f {
	case FieldFirstName:
		return "firstName"
	case FieldLastName:
		return "lastName"
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "phone"
	case FieldPosition:
		return "position"
	case FieldDepartment:
		return "department"
	case FieldEmployeeID:
		return "employeeId"
	case FieldStartDate:
		return "startDate"
	case FieldAddress:
		return "address"
	default:
		return "unknown"
	}
}

// Label returns the form label for the field.
func (f EmployeeField) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldEmail:
		return "Email Address"
	case FieldPhone:
		return "Phone Number"
	case FieldPosition:
		return "Position"
	case FieldDepartment:
		return "Department"
	case FieldEmployeeID:
		return "Employee ID"
	case FieldStartDate:
		return "Start Date"
	case FieldAddress:
		return "Address"
	default:
		return ""
	}
}

// Required reports whether the field must be filled before submission.
// Address is the only optional field.
func (f EmployeeField) Required() bool {
	return f != FieldAddress
}

// EmployeeRecord is a new employee being entered through the intake form.
// All values are kept as entered; no format validation is applied.
type EmployeeRecord struct {
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Position   string     `json:"position"`
	Department Department `json:"department"`
	StartDate  string     `json:"startDate"`
	Address    string     `json:"address,omitempty"`
	EmployeeID string     `json:"employeeId"`
}

// Get returns the value of field f.
func (r EmployeeRecord) Get(f EmployeeField) string {
	switch f {
	case FieldFirstName:
		return r.FirstName
	case FieldLastName:
		return r.LastName
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldPosition:
		return r.Position
	case FieldDepartment:
		return string(r.Department)
	case FieldEmployeeID:
		return r.EmployeeID
	case FieldStartDate:
		return r.StartDate
	case FieldAddress:
		return r.Address
	default:
		return ""
	}
}

// Set assigns value to field f. Unknown fields are ignored.
func (r *EmployeeRecord) Set(f EmployeeField, value string) {
	switch f {
	case FieldFirstName:
		r.FirstName = value
	case FieldLastName:
		r.LastName = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldPosition:
		r.Position = value
	case FieldDepartment:
		r.Department = Department(value)
	case FieldEmployeeID:
		r.EmployeeID = value
	case FieldStartDate:
		r.StartDate = value
	case FieldAddress:
		r.Address = value
	}
}

// Missing returns the required fields that are still empty, in form order.
func (r EmployeeRecord) Missing() []EmployeeField {
	var missing []EmployeeField
	for _, f := range EmployeeFields {
		if f.Required() && r.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every required field is non-empty.
func (r EmployeeRecord) Complete() bool {
	return len(r.Missing()) == 0
}

// FullName joins first and last name.
func (r EmployeeRecord) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}
