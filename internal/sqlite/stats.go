package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Statistics returns row counts for the four tables and the top five
// courses by enrollment. Ties break on rowid, the store's natural row
// order.
func (s *Store) Statistics() (types.Statistics, error) {
	if s.db == nil {
		return types.Statistics{}, types.ErrStoreClosed
	}
	var stats types.Statistics

	counts := []struct {
		table string
		dst   *int
	}{
		{"students", &stats.Students},
		{"instructors", &stats.Instructors},
		{"courses", &stats.Courses},
		{"registrations", &stats.Registrations},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dst); err != nil {
			return types.Statistics{}, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}

	rows, err := s.db.Query(
		"SELECT c.course_id, c.course_name, COUNT(r.student_id) AS enrolled " +
			"FROM courses c LEFT JOIN registrations r ON c.course_id = r.course_id " +
			"GROUP BY c.course_id, c.course_name " +
			"ORDER BY enrolled DESC, c.rowid ASC LIMIT 5",
	)
	if err != nil {
		return types.Statistics{}, fmt.Errorf("querying popular courses: %w", err)
	}
	defer rows.Close()

	stats.PopularCourses = []types.CourseEnrollment{}
	for rows.Next() {
		var ce types.CourseEnrollment
		if err := rows.Scan(&ce.CourseID, &ce.Name, &ce.Enrolled); err != nil {
			return types.Statistics{}, fmt.Errorf("scanning popular course: %w", err)
		}
		stats.PopularCourses = append(stats.PopularCourses, ce)
	}
	if err := rows.Err(); err != nil {
		return types.Statistics{}, fmt.Errorf("iterating popular courses: %w", err)
	}

	return stats, nil
}
