package school

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// JSON interchange records. Relationship edges appear on both sides of the
// document (registered_courses and enrolled_students); loading links from
// the student side, so the student lists are authoritative on import.

type studentJSON struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Email             string   `json:"email"`
	StudentID         string   `json:"student_id"`
	RegisteredCourses []string `json:"registered_courses"`
}

type instructorJSON struct {
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Email           string   `json:"email"`
	InstructorID    string   `json:"instructor_id"`
	AssignedCourses []string `json:"assigned_courses"`
}

type courseJSON struct {
	CourseID         string   `json:"course_id"`
	CourseName       string   `json:"course_name"`
	InstructorID     *string  `json:"instructor_id"`
	EnrolledStudents []string `json:"enrolled_students"`
}

type graphJSON struct {
	Students    []studentJSON    `json:"students"`
	Instructors []instructorJSON `json:"instructors"`
	Courses     []courseJSON     `json:"courses"`
}

// MarshalJSON renders the graph in the interchange format.
func (s *System) MarshalJSON() ([]byte, error) {
	doc := graphJSON{
		Students:    []studentJSON{},
		Instructors: []instructorJSON{},
		Courses:     []courseJSON{},
	}
	for _, st := range s.students {
		doc.Students = append(doc.Students, studentJSON{
			Name:              st.Name,
			Age:               st.Age,
			Email:             st.Email(),
			StudentID:         st.StudentID,
			RegisteredCourses: append([]string{}, st.RegisteredCourses...),
		})
	}
	for _, in := range s.instructors {
		doc.Instructors = append(doc.Instructors, instructorJSON{
			Name:            in.Name,
			Age:             in.Age,
			Email:           in.Email(),
			InstructorID:    in.InstructorID,
			AssignedCourses: append([]string{}, in.AssignedCourses...),
		})
	}
	for _, c := range s.courses {
		var instructorID *string
		if c.InstructorID != "" {
			id := c.InstructorID
			instructorID = &id
		}
		doc.Courses = append(doc.Courses, courseJSON{
			CourseID:         c.CourseID,
			CourseName:       c.Name,
			InstructorID:     instructorID,
			EnrolledStudents: append([]string{}, c.EnrolledStudents...),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SaveJSON writes the graph to path atomically using the temp-file, fsync,
// rename pattern. File failures surface as *types.IOError.
func (s *System) SaveJSON(path string) error {
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".graph-*.tmp")
	if err != nil {
		return &types.IOError{Op: "save graph", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.IOError{Op: "save graph", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.IOError{Op: "save graph", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "save graph", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "save graph", Path: path, Err: err}
	}
	return nil
}

// LoadJSON builds a fresh graph from an interchange document. Load order
// matches rehydration: instructors first, then courses resolving their
// instructor against the loaded set, then students with their
// registrations linked against the loaded courses. Registrations naming an
// unknown course are skipped.
func LoadJSON(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.IOError{Op: "load graph", Path: path, Err: err}
	}

	var doc graphJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph document: %w", err)
	}

	sys := NewSystem()
	for _, rec := range doc.Instructors {
		in, err := types.NewInstructor(rec.Name, rec.Age, rec.Email, rec.InstructorID)
		if err != nil {
			return nil, fmt.Errorf("instructor %s: %w", rec.InstructorID, err)
		}
		sys.AddInstructor(in)
	}
	for _, rec := range doc.Courses {
		instructorID := ""
		if rec.InstructorID != nil {
			if _, ok := sys.FindInstructorByID(*rec.InstructorID); ok {
				instructorID = *rec.InstructorID
			}
		}
		c, err := types.NewCourse(rec.CourseID, rec.CourseName, instructorID)
		if err != nil {
			return nil, fmt.Errorf("course %s: %w", rec.CourseID, err)
		}
		sys.AddCourse(c)
	}
	for _, rec := range doc.Students {
		st, err := types.NewStudent(rec.Name, rec.Age, rec.Email, rec.StudentID)
		if err != nil {
			return nil, fmt.Errorf("student %s: %w", rec.StudentID, err)
		}
		sys.AddStudent(st)
		for _, courseID := range rec.RegisteredCourses {
			sys.RegisterStudentToCourse(rec.StudentID, courseID)
		}
	}
	return sys, nil
}
