package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// RegisterStudentToCourse inserts one enrollment fact. A duplicate pair or
// an unknown student/course id surfaces as *types.IntegrityError (UNIQUE
// and FOREIGN KEY respectively); re-registering is never silently dropped.
func (s *Store) RegisterStudentToCourse(studentID, courseID string) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	_, err := s.db.Exec(
		"INSERT INTO registrations (student_id, course_id, registered_at) VALUES (?, ?, ?)",
		studentID, courseID, timestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("registering %s to %s: %w", studentID, courseID, integrityError(err))
	}
	return nil
}

// UnregisterStudentFromCourse deletes one enrollment fact. Returns
// types.ErrNotFound when the pair was not registered.
func (s *Store) UnregisterStudentFromCourse(studentID, courseID string) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	res, err := s.db.Exec(
		"DELETE FROM registrations WHERE student_id = ? AND course_id = ?",
		studentID, courseID,
	)
	if err != nil {
		return fmt.Errorf("unregistering %s from %s: %w", studentID, courseID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unregistering %s from %s: %w", studentID, courseID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListRegistrations returns every enrollment fact in row order.
func (s *Store) ListRegistrations() ([]types.Registration, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(
		"SELECT id, student_id, course_id, registered_at FROM registrations ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying registrations: %w", err)
	}
	defer rows.Close()

	results := []types.Registration{}
	for rows.Next() {
		var r types.Registration
		var registeredAt string
		if err := rows.Scan(&r.ID, &r.StudentID, &r.CourseID, &registeredAt); err != nil {
			return nil, fmt.Errorf("scanning registration: %w", err)
		}
		if r.RegisteredAt, err = parseTimestamp(registeredAt); err != nil {
			return nil, fmt.Errorf("parsing registered_at: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating registrations: %w", err)
	}
	return results, nil
}

// StudentCourses returns the courses one student is registered to, ordered
// by course name.
func (s *Store) StudentCourses(studentID string) ([]types.CourseRow, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(
		"SELECT c.course_id, c.course_name "+
			"FROM courses c JOIN registrations r ON c.course_id = r.course_id "+
			"WHERE r.student_id = ? ORDER BY c.course_name",
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying student courses: %w", err)
	}
	defer rows.Close()

	results := []types.CourseRow{}
	for rows.Next() {
		var cr types.CourseRow
		if err := rows.Scan(&cr.CourseID, &cr.Name); err != nil {
			return nil, fmt.Errorf("scanning student course: %w", err)
		}
		results = append(results, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating student courses: %w", err)
	}
	return results, nil
}

// CourseStudents returns the students enrolled in one course, ordered by
// name.
func (s *Store) CourseStudents(courseID string) ([]*types.Student, error) {
	return s.queryStudents(
		"SELECT s.student_id, s.name, s.age, s.email, s.created_at, s.updated_at "+
			"FROM students s JOIN registrations r ON s.student_id = r.student_id "+
			"WHERE r.course_id = ? ORDER BY s.name",
		courseID,
	)
}
