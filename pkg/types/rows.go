package types

import "time"

// Entity kinds for search projections.
const (
	KindStudent    = "student"
	KindInstructor = "instructor"
	KindCourse     = "course"
)

// SearchRow is one read-only result of a cross-entity search.
type SearchRow struct {
	Kind        string // student, instructor, or course
	DisplayName string
	ID          string
	Detail      string // age/email for people, instructor name for courses
}

// CourseRow is a course joined with its instructor's display name, used by
// listings, search, and the courses export.
type CourseRow struct {
	CourseID       string
	Name           string
	InstructorID   string // empty when the course has no instructor
	InstructorName string
}

// Registration is one student/course enrollment fact. It is a first-class
// row in the store; the graph representation implies it from list
// membership instead.
type Registration struct {
	ID           int64
	StudentID    string
	CourseID     string
	RegisteredAt time.Time
}

// CourseEnrollment pairs a course with its enrollment count.
type CourseEnrollment struct {
	CourseID string
	Name     string
	Enrolled int
}

// Statistics summarizes store contents: row counts for the four tables and
// the top five courses by enrollment.
type Statistics struct {
	Students       int
	Instructors    int
	Courses        int
	Registrations  int
	PopularCourses []CourseEnrollment
}

// TableDump is one exported table: a header row and the data rows, every
// value already rendered as a string. Rendering to CSV or elsewhere is the
// caller's concern.
type TableDump struct {
	Table   string
	Columns []string
	Rows    [][]string
}
