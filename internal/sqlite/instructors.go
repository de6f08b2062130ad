package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// InsertInstructor adds one instructors row. Duplicate id or email surfaces
// as *types.IntegrityError. Instructor emails are unique among instructors
// only; a student may share the address.
func (s *Store) InsertInstructor(in *types.Instructor) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	now := timestamp(time.Now())
	_, err := s.db.Exec(
		"INSERT INTO instructors (instructor_id, name, age, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		in.InstructorID, in.Name, in.Age, in.Email(), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting instructor %s: %w", in.InstructorID, integrityError(err))
	}
	return nil
}

// GetInstructor retrieves one instructor by id.
// Returns types.ErrNotFound if the row does not exist.
func (s *Store) GetInstructor(id string) (*types.Instructor, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	row := s.db.QueryRow(
		"SELECT instructor_id, name, age, email, created_at, updated_at FROM instructors WHERE instructor_id = ?",
		id,
	)
	in, err := hydrateInstructor(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting instructor %s: %w", id, err)
	}
	return in, nil
}

// ListInstructors returns all instructors ordered by name.
func (s *Store) ListInstructors() ([]*types.Instructor, error) {
	return s.queryInstructors(
		"SELECT instructor_id, name, age, email, created_at, updated_at FROM instructors ORDER BY name",
	)
}

// SearchInstructors returns instructors whose name, id, or email contains
// term as a case-insensitive substring, ordered by name.
func (s *Store) SearchInstructors(term string) ([]*types.Instructor, error) {
	pattern := "%" + term + "%"
	return s.queryInstructors(
		"SELECT instructor_id, name, age, email, created_at, updated_at FROM instructors "+
			"WHERE name LIKE ? OR instructor_id LIKE ? OR email LIKE ? ORDER BY name",
		pattern, pattern, pattern,
	)
}

// UpdateInstructor applies a partial update; see UpdateStudent for the
// result semantics.
func (s *Store) UpdateInstructor(id string, upd types.InstructorUpdate) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if upd.IsZero() {
		return nil
	}

	var columns []string
	var args []any
	if upd.Name != nil {
		columns = append(columns, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Age != nil {
		columns = append(columns, "age = ?")
		args = append(args, *upd.Age)
	}
	if upd.Email != nil {
		if err := types.ValidateEmail(*upd.Email); err != nil {
			return err
		}
		columns = append(columns, "email = ?")
		args = append(args, *upd.Email)
	}
	args = append(args, id)

	res, err := s.db.Exec(
		"UPDATE instructors SET "+strings.Join(columns, ", ")+" WHERE instructor_id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("updating instructor %s: %w", id, integrityError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating instructor %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteInstructor removes one instructor. Courses survive: the schema's
// ON DELETE SET NULL clears their instructor reference. Returns
// types.ErrNotFound when no row matched.
func (s *Store) DeleteInstructor(id string) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	res, err := s.db.Exec("DELETE FROM instructors WHERE instructor_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting instructor %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting instructor %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// InstructorCourses returns the courses assigned to one instructor, ordered
// by course name.
func (s *Store) InstructorCourses(instructorID string) ([]types.CourseRow, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(
		"SELECT course_id, course_name FROM courses WHERE instructor_id = ? ORDER BY course_name",
		instructorID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying instructor courses: %w", err)
	}
	defer rows.Close()

	results := []types.CourseRow{}
	for rows.Next() {
		var cr types.CourseRow
		if err := rows.Scan(&cr.CourseID, &cr.Name); err != nil {
			return nil, fmt.Errorf("scanning instructor course: %w", err)
		}
		cr.InstructorID = instructorID
		results = append(results, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating instructor courses: %w", err)
	}
	return results, nil
}

func (s *Store) queryInstructors(query string, args ...any) ([]*types.Instructor, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying instructors: %w", err)
	}
	defer rows.Close()

	results := []*types.Instructor{}
	for rows.Next() {
		in, err := hydrateInstructor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating instructor: %w", err)
		}
		results = append(results, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating instructors: %w", err)
	}
	return results, nil
}

// hydrateInstructor converts one row into a validated *types.Instructor.
func hydrateInstructor(scan func(...any) error) (*types.Instructor, error) {
	var id, name, email, createdAt, updatedAt string
	var age int
	if err := scan(&id, &name, &age, &email, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	in, err := types.NewInstructor(name, age, email, id)
	if err != nil {
		return nil, err
	}
	if in.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if in.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return in, nil
}
