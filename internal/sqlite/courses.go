package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// InsertCourse adds one courses row. An empty InstructorID stores NULL; a
// non-empty one must reference an existing instructor or the insert fails
// with *types.IntegrityError.
func (s *Store) InsertCourse(c *types.Course) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	now := timestamp(time.Now())
	var instructorID sql.NullString
	if c.InstructorID != "" {
		instructorID = sql.NullString{String: c.InstructorID, Valid: true}
	}
	_, err := s.db.Exec(
		"INSERT INTO courses (course_id, course_name, instructor_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		c.CourseID, c.Name, instructorID, now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting course %s: %w", c.CourseID, integrityError(err))
	}
	return nil
}

// GetCourse retrieves one course by id. Returns types.ErrNotFound if the
// row does not exist. EnrolledStudents is not populated; use CourseStudents
// or Rehydrate for relationship data.
func (s *Store) GetCourse(id string) (*types.Course, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	row := s.db.QueryRow(
		"SELECT course_id, course_name, instructor_id, created_at, updated_at FROM courses WHERE course_id = ?",
		id,
	)
	c, err := hydrateCourse(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting course %s: %w", id, err)
	}
	return c, nil
}

// ListCourses returns all courses ordered by course name.
func (s *Store) ListCourses() ([]*types.Course, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(
		"SELECT course_id, course_name, instructor_id, created_at, updated_at FROM courses ORDER BY course_name",
	)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	results := []*types.Course{}
	for rows.Next() {
		c, err := hydrateCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating course: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return results, nil
}

// ListCourseRows returns all courses joined with their instructor's display
// name, ordered by course name.
func (s *Store) ListCourseRows() ([]types.CourseRow, error) {
	return s.queryCourseRows(
		"SELECT c.course_id, c.course_name, i.instructor_id, i.name " +
			"FROM courses c LEFT JOIN instructors i ON c.instructor_id = i.instructor_id " +
			"ORDER BY c.course_name",
	)
}

// SearchCourses returns courses whose name or id contains term as a
// case-insensitive substring, joined with instructor names and ordered by
// course name.
func (s *Store) SearchCourses(term string) ([]types.CourseRow, error) {
	pattern := "%" + term + "%"
	return s.queryCourseRows(
		"SELECT c.course_id, c.course_name, i.instructor_id, i.name "+
			"FROM courses c LEFT JOIN instructors i ON c.instructor_id = i.instructor_id "+
			"WHERE c.course_name LIKE ? OR c.course_id LIKE ? ORDER BY c.course_name",
		pattern, pattern,
	)
}

// UpdateCourse applies a partial update. upd.Instructor distinguishes
// "leave unchanged" (nil), "assign" (Set), and "clear to NULL" (Null);
// assigning an unknown instructor fails with *types.IntegrityError.
func (s *Store) UpdateCourse(id string, upd types.CourseUpdate) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if upd.IsZero() {
		return nil
	}

	var columns []string
	var args []any
	if upd.Name != nil {
		columns = append(columns, "course_name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Instructor != nil {
		columns = append(columns, "instructor_id = ?")
		if upd.Instructor.Clear {
			args = append(args, nil)
		} else {
			args = append(args, upd.Instructor.ID)
		}
	}
	args = append(args, id)

	res, err := s.db.Exec(
		"UPDATE courses SET "+strings.Join(columns, ", ")+" WHERE course_id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("updating course %s: %w", id, integrityError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating course %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteCourse removes one course; the registrations cascade deletes every
// enrollment row referencing it. Returns types.ErrNotFound when no row
// matched.
func (s *Store) DeleteCourse(id string) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	res, err := s.db.Exec("DELETE FROM courses WHERE course_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting course %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting course %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (s *Store) queryCourseRows(query string, args ...any) ([]types.CourseRow, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying course rows: %w", err)
	}
	defer rows.Close()

	results := []types.CourseRow{}
	for rows.Next() {
		var cr types.CourseRow
		var instructorID, instructorName sql.NullString
		if err := rows.Scan(&cr.CourseID, &cr.Name, &instructorID, &instructorName); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		cr.InstructorID = instructorID.String
		cr.InstructorName = instructorName.String
		results = append(results, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course rows: %w", err)
	}
	return results, nil
}

// hydrateCourse converts one row into a validated *types.Course.
func hydrateCourse(scan func(...any) error) (*types.Course, error) {
	var id, name, createdAt, updatedAt string
	var instructorID sql.NullString
	if err := scan(&id, &name, &instructorID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c, err := types.NewCourse(id, name, instructorID.String)
	if err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return c, nil
}
