package types

import "time"

// Course is a taught unit with at most one instructor.
//
// InstructorID is a non-owning back-reference; empty means no instructor.
// EnrolledStudents holds student ids in enrollment order. Both fields are
// maintained by school.System so that every edge stays symmetric with the
// other side's list.
type Course struct {
	CourseID         string
	Name             string
	InstructorID     string
	EnrolledStudents []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCourse validates id and name and returns a Course with no instructor
// and no enrollments. instructorID may be empty.
func NewCourse(courseID, name, instructorID string) (*Course, error) {
	if err := validateID("course id", courseID); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Course{
		CourseID:     courseID,
		Name:         name,
		InstructorID: instructorID,
	}, nil
}

// HasStudent reports whether the student is enrolled in the course.
func (c *Course) HasStudent(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}
