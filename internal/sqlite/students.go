package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// InsertStudent adds one students row. Duplicate id or email surfaces as
// *types.IntegrityError; the store is left unchanged on failure.
func (s *Store) InsertStudent(st *types.Student) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	now := timestamp(time.Now())
	_, err := s.db.Exec(
		"INSERT INTO students (student_id, name, age, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		st.StudentID, st.Name, st.Age, st.Email(), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting student %s: %w", st.StudentID, integrityError(err))
	}
	return nil
}

// GetStudent retrieves one student by id. Returns types.ErrNotFound if the
// row does not exist. The RegisteredCourses list is not populated; use
// StudentCourses or Rehydrate for relationship data.
func (s *Store) GetStudent(id string) (*types.Student, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	row := s.db.QueryRow(
		"SELECT student_id, name, age, email, created_at, updated_at FROM students WHERE student_id = ?",
		id,
	)
	st, err := hydrateStudent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting student %s: %w", id, err)
	}
	return st, nil
}

// ListStudents returns all students ordered by name.
func (s *Store) ListStudents() ([]*types.Student, error) {
	return s.queryStudents(
		"SELECT student_id, name, age, email, created_at, updated_at FROM students ORDER BY name",
	)
}

// SearchStudents returns students whose name, id, or email contains term as
// a case-insensitive substring, ordered by name.
func (s *Store) SearchStudents(term string) ([]*types.Student, error) {
	pattern := "%" + term + "%"
	return s.queryStudents(
		"SELECT student_id, name, age, email, created_at, updated_at FROM students "+
			"WHERE name LIKE ? OR student_id LIKE ? OR email LIKE ? ORDER BY name",
		pattern, pattern, pattern,
	)
}

// UpdateStudent applies a partial update: only fields supplied in upd
// change, and the trigger refreshes updated_at. Returns types.ErrNotFound
// when no row has the id, *types.IntegrityError on a uniqueness violation.
// An empty request is a no-op.
func (s *Store) UpdateStudent(id string, upd types.StudentUpdate) error {
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
		"UPDATE students SET "+strings.Join(columns, ", ")+" WHERE student_id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("updating student %s: %w", id, integrityError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating student %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteStudent removes one student; the registrations cascade deletes the
// student's enrollment rows. Returns types.ErrNotFound when no row matched.
func (s *Store) DeleteStudent(id string) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	res, err := s.db.Exec("DELETE FROM students WHERE student_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting student %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting student %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (s *Store) queryStudents(query string, args ...any) ([]*types.Student, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	results := []*types.Student{}
	for rows.Next() {
		st, err := hydrateStudent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating student: %w", err)
		}
		results = append(results, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return results, nil
}

// hydrateStudent converts one row into a validated *types.Student.
func hydrateStudent(scan func(...any) error) (*types.Student, error) {
	var id, name, email, createdAt, updatedAt string
	var age int
	if err := scan(&id, &name, &age, &email, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	st, err := types.NewStudent(name, age, email, id)
	if err != nil {
		return nil, err
	}
	if st.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if st.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return st, nil
}
