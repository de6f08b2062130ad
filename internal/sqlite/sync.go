package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/registrar/pkg/school"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Rehydrate reconstructs a fresh relationship graph from the store's
// current rows. Load order is load-bearing: instructors first, then courses
// resolving their instructor against the loaded set, then students with
// their registrations linked against the loaded courses. Reversing any step
// would leave references unresolvable.
func (s *Store) Rehydrate() (*school.System, error) {
	sys := school.NewSystem()

	instructors, err := s.ListInstructors()
	if err != nil {
		return nil, fmt.Errorf("rehydrating instructors: %w", err)
	}
	for _, in := range instructors {
		sys.AddInstructor(in)
	}

	courses, err := s.ListCourses()
	if err != nil {
		return nil, fmt.Errorf("rehydrating courses: %w", err)
	}
	for _, c := range courses {
		// AddCourse links the assignment edge on the instructor side.
		sys.AddCourse(c)
	}

	students, err := s.ListStudents()
	if err != nil {
		return nil, fmt.Errorf("rehydrating students: %w", err)
	}
	for _, st := range students {
		sys.AddStudent(st)
		courseIDs, err := s.studentCourseIDs(st.StudentID)
		if err != nil {
			return nil, fmt.Errorf("rehydrating registrations for %s: %w", st.StudentID, err)
		}
		for _, courseID := range courseIDs {
			sys.RegisterStudentToCourse(st.StudentID, courseID)
		}
	}

	return sys, nil
}

// studentCourseIDs returns one student's registered course ids in
// registration order.
func (s *Store) studentCourseIDs(studentID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT course_id FROM registrations WHERE student_id = ? ORDER BY id",
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Dehydrate replaces the store's entire contents with the graph's. The
// whole delete+insert sequence runs in one transaction, so a failure
// partway leaves the prior contents untouched. Deletes run children before
// parents and inserts parents before children to satisfy foreign keys at
// every intermediate point. Prior rows not present in the graph are
// permanently lost.
func (s *Store) Dehydrate(sys *school.System) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning dehydrate: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"registrations", "courses", "instructors", "students"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	now := timestamp(time.Now())

	for _, st := range sys.Students() {
		_, err := tx.Exec(
			"INSERT INTO students (student_id, name, age, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			st.StudentID, st.Name, st.Age, st.Email(), entityTimestamp(st.CreatedAt, now), now,
		)
		if err != nil {
			return fmt.Errorf("dehydrating student %s: %w", st.StudentID, integrityError(err))
		}
	}

	for _, in := range sys.Instructors() {
		_, err := tx.Exec(
			"INSERT INTO instructors (instructor_id, name, age, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			in.InstructorID, in.Name, in.Age, in.Email(), entityTimestamp(in.CreatedAt, now), now,
		)
		if err != nil {
			return fmt.Errorf("dehydrating instructor %s: %w", in.InstructorID, integrityError(err))
		}
	}

	for _, c := range sys.Courses() {
		var instructorID sql.NullString
		if c.InstructorID != "" {
			instructorID = sql.NullString{String: c.InstructorID, Valid: true}
		}
		_, err := tx.Exec(
			"INSERT INTO courses (course_id, course_name, instructor_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			c.CourseID, c.Name, instructorID, entityTimestamp(c.CreatedAt, now), now,
		)
		if err != nil {
			return fmt.Errorf("dehydrating course %s: %w", c.CourseID, integrityError(err))
		}
	}

	for _, st := range sys.Students() {
		for _, courseID := range st.RegisteredCourses {
			_, err := tx.Exec(
				"INSERT INTO registrations (student_id, course_id, registered_at) VALUES (?, ?, ?)",
				st.StudentID, courseID, now,
			)
			if err != nil {
				return fmt.Errorf("dehydrating registration %s/%s: %w", st.StudentID, courseID, integrityError(err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dehydrate: %w", err)
	}
	return nil
}

// entityTimestamp keeps an entity's creation time when it has one and falls
// back to now for entities built in memory.
func entityTimestamp(t time.Time, now string) string {
	if t.IsZero() {
		return now
	}
	return timestamp(t)
}
