package types

// Table names accepted by Store.ExportTable.
const (
	StudentsTable      = "students"
	InstructorsTable   = "instructors"
	CoursesTable       = "courses"
	RegistrationsTable = "registrations"
)

// StandardTableNames lists all exportable table names for enumeration.
var StandardTableNames = []string{
	StudentsTable,
	InstructorsTable,
	CoursesTable,
	RegistrationsTable,
}
