package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Search runs the case-insensitive substring query over every entity kind
// and returns read-only projection rows. Order follows the underlying
// listings (alphabetical by name within a kind) with kinds concatenated as
// students, instructors, courses. Passing kinds narrows the set; no kinds
// means all three.
func (s *Store) Search(term string, kinds ...string) ([]types.SearchRow, error) {
	want := map[string]bool{}
	if len(kinds) == 0 {
		want[types.KindStudent] = true
		want[types.KindInstructor] = true
		want[types.KindCourse] = true
	}
	for _, k := range kinds {
		switch k {
		case types.KindStudent, types.KindInstructor, types.KindCourse:
			want[k] = true
		default:
			return nil, fmt.Errorf("unknown search kind %q", k)
		}
	}

	results := []types.SearchRow{}

	if want[types.KindStudent] {
		students, err := s.SearchStudents(term)
		if err != nil {
			return nil, err
		}
		for _, st := range students {
			results = append(results, types.SearchRow{
				Kind:        types.KindStudent,
				DisplayName: st.Name,
				ID:          st.StudentID,
				Detail:      fmt.Sprintf("age %d, %s", st.Age, st.Email()),
			})
		}
	}

	if want[types.KindInstructor] {
		instructors, err := s.SearchInstructors(term)
		if err != nil {
			return nil, err
		}
		for _, in := range instructors {
			results = append(results, types.SearchRow{
				Kind:        types.KindInstructor,
				DisplayName: in.Name,
				ID:          in.InstructorID,
				Detail:      fmt.Sprintf("age %d, %s", in.Age, in.Email()),
			})
		}
	}

	if want[types.KindCourse] {
		courses, err := s.SearchCourses(term)
		if err != nil {
			return nil, err
		}
		for _, cr := range courses {
			detail := "no instructor"
			if cr.InstructorID != "" {
				detail = "instructor: " + cr.InstructorName
			}
			results = append(results, types.SearchRow{
				Kind:        types.KindCourse,
				DisplayName: cr.Name,
				ID:          cr.CourseID,
				Detail:      detail,
			})
		}
	}

	return results, nil
}
