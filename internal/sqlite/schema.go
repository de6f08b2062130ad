// Package sqlite implements the relational store for the registrar system:
// four tables mirroring the relationship graph, referential actions that
// keep deletes consistent, and triggers that refresh updated_at on every
// row change.
package sqlite

// Schema DDL. Timestamps are RFC3339 TEXT in UTC; created_at and updated_at
// are written by Go on insert and updated_at is refreshed by trigger on
// update, so the behavior holds for any writer.
const (
	createStudents = `CREATE TABLE IF NOT EXISTS students (
    student_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL CHECK (age >= 0),
    email TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createInstructors = `CREATE TABLE IF NOT EXISTS instructors (
    instructor_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL CHECK (age >= 0),
    email TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCourses = `CREATE TABLE IF NOT EXISTS courses (
    course_id TEXT PRIMARY KEY,
    course_name TEXT NOT NULL,
    instructor_id TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (instructor_id) REFERENCES instructors (instructor_id)
        ON DELETE SET NULL ON UPDATE CASCADE
);`

	createRegistrations = `CREATE TABLE IF NOT EXISTS registrations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id TEXT NOT NULL,
    course_id TEXT NOT NULL,
    registered_at TEXT NOT NULL,
    FOREIGN KEY (student_id) REFERENCES students (student_id)
        ON DELETE CASCADE ON UPDATE CASCADE,
    FOREIGN KEY (course_id) REFERENCES courses (course_id)
        ON DELETE CASCADE ON UPDATE CASCADE,
    UNIQUE (student_id, course_id)
);`
)

// Trigger DDL. SQLite runs these with recursive triggers disabled, so the
// inner UPDATE does not re-fire the trigger.
const (
	triggerStudentsUpdatedAt = `CREATE TRIGGER IF NOT EXISTS students_updated_at
AFTER UPDATE ON students
FOR EACH ROW
BEGIN
    UPDATE students SET updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
    WHERE student_id = NEW.student_id;
END;`

	triggerInstructorsUpdatedAt = `CREATE TRIGGER IF NOT EXISTS instructors_updated_at
AFTER UPDATE ON instructors
FOR EACH ROW
BEGIN
    UPDATE instructors SET updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
    WHERE instructor_id = NEW.instructor_id;
END;`

	triggerCoursesUpdatedAt = `CREATE TRIGGER IF NOT EXISTS courses_updated_at
AFTER UPDATE ON courses
FOR EACH ROW
BEGIN
    UPDATE courses SET updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
    WHERE course_id = NEW.course_id;
END;`
)

// Index DDL for the lookups the store issues most.
const (
	idxCoursesInstructor    = `CREATE INDEX IF NOT EXISTS idx_courses_instructor ON courses (instructor_id);`
	idxRegistrationsStudent = `CREATE INDEX IF NOT EXISTS idx_registrations_student ON registrations (student_id);`
	idxRegistrationsCourse  = `CREATE INDEX IF NOT EXISTS idx_registrations_course ON registrations (course_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createStudents,
	createInstructors,
	createCourses,
	createRegistrations,
}

// triggerDDL lists all CREATE TRIGGER statements.
var triggerDDL = []string{
	triggerStudentsUpdatedAt,
	triggerInstructorsUpdatedAt,
	triggerCoursesUpdatedAt,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCoursesInstructor,
	idxRegistrationsStudent,
	idxRegistrationsCourse,
}
