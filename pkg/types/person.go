package types

import (
	"regexp"
	"strings"
	"time"
)

// emailPattern accepts local@domain.tld with an ASCII local part, a dotted
// domain, and a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validateName rejects empty or blank names.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must be a non-empty string"}
	}
	return nil
}

// validateAge rejects negative ages.
func validateAge(age int) error {
	if age < 0 {
		return &ValidationError{Field: "age", Reason: "must be a non-negative integer"}
	}
	return nil
}

// validateEmail rejects addresses that do not match local@domain.tld.
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "must match local@domain.tld"}
	}
	return nil
}

// ValidateEmail checks an address against the same rule entity construction
// uses. The store applies it to email updates so a later rehydrate cannot
// fail on a row that was written through the public surface.
func ValidateEmail(email string) error { return validateEmail(email) }

// validateID rejects empty or blank entity identifiers.
func validateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: field, Reason: "must be a non-empty string"}
	}
	return nil
}

// Student is a person enrolled in zero or more courses.
//
// RegisteredCourses holds course ids in registration order and is maintained
// by school.System; entities never hold object references, so the
// student/course/instructor cycle exists only as id lookups.
type Student struct {
	StudentID         string
	Name              string
	Age               int
	email             string
	RegisteredCourses []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewStudent validates every field and returns a Student with no course
// registrations. A *ValidationError names the first field that failed.
func NewStudent(name string, age int, email, studentID string) (*Student, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateAge(age); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateID("student id", studentID); err != nil {
		return nil, err
	}
	return &Student{
		StudentID: studentID,
		Name:      name,
		Age:       age,
		email:     email,
	}, nil
}

// Email returns the student's email address.
func (s *Student) Email() string { return s.email }

// SetEmail replaces the email address, re-validating with the same rule as
// construction. The current address is kept on failure.
func (s *Student) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	s.email = email
	return nil
}

// IsRegistered reports whether the student is registered to the course.
func (s *Student) IsRegistered(courseID string) bool {
	for _, id := range s.RegisteredCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Instructor is a person assigned to teach zero or more courses.
//
// AssignedCourses holds course ids in assignment order and is maintained by
// school.System.
type Instructor struct {
	InstructorID    string
	Name            string
	Age             int
	email           string
	AssignedCourses []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewInstructor validates every field and returns an Instructor with no
// course assignments.
func NewInstructor(name string, age int, email, instructorID string) (*Instructor, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateAge(age); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateID("instructor id", instructorID); err != nil {
		return nil, err
	}
	return &Instructor{
		InstructorID: instructorID,
		Name:         name,
		Age:          age,
		email:        email,
	}, nil
}

// Email returns the instructor's email address.
func (i *Instructor) Email() string { return i.email }

// SetEmail replaces the email address, re-validating with the same rule as
// construction.
func (i *Instructor) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	i.email = email
	return nil
}

// IsAssigned reports whether the instructor is assigned to the course.
func (i *Instructor) IsAssigned(courseID string) bool {
	for _, id := range i.AssignedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
