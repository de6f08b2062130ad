package school

import (
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// System is the single in-memory source of truth for one session's object
// graph. It owns every entity it holds; the id lists inside entities are
// non-owning back-references that System alone mutates, so invariant repair
// stays in one place.
//
// Entities are stored in insertion order and looked up by linear scan.
type System struct {
	students    []*types.Student
	instructors []*types.Instructor
	courses     []*types.Course
}

// NewSystem returns an empty graph.
func NewSystem() *System {
	return &System{}
}

// Students returns the student collection in insertion order.
// The slice is shared; callers must not mutate it.
func (s *System) Students() []*types.Student { return s.students }

// Instructors returns the instructor collection in insertion order.
func (s *System) Instructors() []*types.Instructor { return s.instructors }

// Courses returns the course collection in insertion order.
func (s *System) Courses() []*types.Course { return s.courses }

// AddStudent adds a validated student. Returns false if a student with the
// same id already exists; the existing entity is left untouched.
func (s *System) AddStudent(st *types.Student) bool {
	if _, ok := s.FindStudentByID(st.StudentID); ok {
		return false
	}
	s.students = append(s.students, st)
	return true
}

// AddInstructor adds a validated instructor. Returns false on duplicate id.
func (s *System) AddInstructor(in *types.Instructor) bool {
	if _, ok := s.FindInstructorByID(in.InstructorID); ok {
		return false
	}
	s.instructors = append(s.instructors, in)
	return true
}

// AddCourse adds a validated course. Returns false on duplicate id.
// If the course names an instructor known to the graph, the assignment edge
// is linked on both sides.
func (s *System) AddCourse(c *types.Course) bool {
	if _, ok := s.FindCourseByID(c.CourseID); ok {
		return false
	}
	s.courses = append(s.courses, c)
	if c.InstructorID != "" {
		if in, ok := s.FindInstructorByID(c.InstructorID); ok {
			if !in.IsAssigned(c.CourseID) {
				in.AssignedCourses = append(in.AssignedCourses, c.CourseID)
			}
		}
	}
	return true
}

// FindStudentByID returns the first student with the given id.
func (s *System) FindStudentByID(id string) (*types.Student, bool) {
	for _, st := range s.students {
		if st.StudentID == id {
			return st, true
		}
	}
	return nil, false
}

// FindInstructorByID returns the first instructor with the given id.
func (s *System) FindInstructorByID(id string) (*types.Instructor, bool) {
	for _, in := range s.instructors {
		if in.InstructorID == id {
			return in, true
		}
	}
	return nil, false
}

// FindCourseByID returns the first course with the given id.
func (s *System) FindCourseByID(id string) (*types.Course, bool) {
	for _, c := range s.courses {
		if c.CourseID == id {
			return c, true
		}
	}
	return nil, false
}

// RegisterStudentToCourse links the enrollment edge on both sides.
// Returns false if either id is unknown or the pair is already registered.
func (s *System) RegisterStudentToCourse(studentID, courseID string) bool {
	st, ok := s.FindStudentByID(studentID)
	if !ok {
		return false
	}
	c, ok := s.FindCourseByID(courseID)
	if !ok {
		return false
	}
	if st.IsRegistered(courseID) || c.HasStudent(studentID) {
		return false
	}
	st.RegisteredCourses = append(st.RegisteredCourses, courseID)
	c.EnrolledStudents = append(c.EnrolledStudents, studentID)
	return true
}

// UnregisterStudentFromCourse removes the enrollment edge from both sides.
// Returns false if either id is unknown or the pair is not registered.
func (s *System) UnregisterStudentFromCourse(studentID, courseID string) bool {
	st, ok := s.FindStudentByID(studentID)
	if !ok {
		return false
	}
	c, ok := s.FindCourseByID(courseID)
	if !ok {
		return false
	}
	if !st.IsRegistered(courseID) {
		return false
	}
	st.RegisteredCourses = removeID(st.RegisteredCourses, courseID)
	c.EnrolledStudents = removeID(c.EnrolledStudents, studentID)
	return true
}

// AssignInstructorToCourse links the assignment edge on both sides.
// Reassignment is atomic: when the course already has a different
// instructor, that instructor's list is repaired before the new link is
// made, so no stale course id survives. Returns false if either id is
// unknown or the instructor already teaches the course.
func (s *System) AssignInstructorToCourse(instructorID, courseID string) bool {
	in, ok := s.FindInstructorByID(instructorID)
	if !ok {
		return false
	}
	c, ok := s.FindCourseByID(courseID)
	if !ok {
		return false
	}
	if c.InstructorID == instructorID && in.IsAssigned(courseID) {
		return false
	}
	if c.InstructorID != "" && c.InstructorID != instructorID {
		if old, ok := s.FindInstructorByID(c.InstructorID); ok {
			old.AssignedCourses = removeID(old.AssignedCourses, courseID)
		}
	}
	c.InstructorID = instructorID
	if !in.IsAssigned(courseID) {
		in.AssignedCourses = append(in.AssignedCourses, courseID)
	}
	return true
}

// RemoveStudent deletes a student after removing it from every course's
// enrollment list. Returns false if the id is unknown.
func (s *System) RemoveStudent(id string) bool {
	st, ok := s.FindStudentByID(id)
	if !ok {
		return false
	}
	// Repair related lists before touching the primary collection.
	for _, courseID := range st.RegisteredCourses {
		if c, ok := s.FindCourseByID(courseID); ok {
			c.EnrolledStudents = removeID(c.EnrolledStudents, id)
		}
	}
	s.students = removeStudent(s.students, id)
	return true
}

// RemoveInstructor deletes an instructor. Courses survive: each one taught
// by the instructor has its back-reference cleared. Returns false if the id
// is unknown.
func (s *System) RemoveInstructor(id string) bool {
	in, ok := s.FindInstructorByID(id)
	if !ok {
		return false
	}
	for _, courseID := range in.AssignedCourses {
		if c, ok := s.FindCourseByID(courseID); ok {
			c.InstructorID = ""
		}
	}
	s.instructors = removeInstructor(s.instructors, id)
	return true
}

// RemoveCourse deletes a course after removing it from every enrolled
// student's list and from its instructor's list. Returns false if the id is
// unknown.
func (s *System) RemoveCourse(id string) bool {
	c, ok := s.FindCourseByID(id)
	if !ok {
		return false
	}
	for _, studentID := range c.EnrolledStudents {
		if st, ok := s.FindStudentByID(studentID); ok {
			st.RegisteredCourses = removeID(st.RegisteredCourses, id)
		}
	}
	if c.InstructorID != "" {
		if in, ok := s.FindInstructorByID(c.InstructorID); ok {
			in.AssignedCourses = removeID(in.AssignedCourses, id)
		}
	}
	s.courses = removeCourse(s.courses, id)
	return true
}

// removeID removes the first occurrence of id, preserving order.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func removeStudent(list []*types.Student, id string) []*types.Student {
	for i, st := range list {
		if st.StudentID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeInstructor(list []*types.Instructor, id string) []*types.Instructor {
	for i, in := range list {
		if in.InstructorID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeCourse(list []*types.Course, id string) []*types.Course {
	for i, c := range list {
		if c.CourseID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
