package sqlite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

func TestExportStudents(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	dump, err := store.ExportTable(types.StudentsTable)
	if err != nil {
		t.Fatalf("exporting: %v", err)
	}
	want := []string{"student_id", "name", "age", "email", "created_at", "updated_at"}
	if fmt.Sprint(dump.Columns) != fmt.Sprint(want) {
		t.Errorf("columns = %v, want %v", dump.Columns, want)
	}
	if len(dump.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(dump.Rows))
	}
	// Integers render as decimal strings.
	if dump.Rows[0][2] != "20" && dump.Rows[0][2] != "22" {
		t.Errorf("age cell = %q", dump.Rows[0][2])
	}
}

func TestExportCoursesJoinsInstructorName(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	dump, err := store.ExportTable(types.CoursesTable)
	if err != nil {
		t.Fatalf("exporting: %v", err)
	}
	last := len(dump.Columns) - 1
	if dump.Columns[last] != "instructor_name" {
		t.Fatalf("columns = %v", dump.Columns)
	}

	byID := map[string][]string{}
	for _, row := range dump.Rows {
		byID[row[0]] = row
	}
	if got := byID["C1"][last]; got != "Ada Lovelace" {
		t.Errorf("C1 instructor_name = %q", got)
	}
	// Unassigned course renders NULLs empty.
	if got := byID["C2"][2]; got != "" {
		t.Errorf("C2 instructor_id = %q, want empty", got)
	}
	if got := byID["C2"][last]; got != "" {
		t.Errorf("C2 instructor_name = %q, want empty", got)
	}
}

func TestExportRegistrationsJoinsNames(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	dump, err := store.ExportTable(types.RegistrationsTable)
	if err != nil {
		t.Fatalf("exporting: %v", err)
	}
	want := []string{"id", "student_id", "course_id", "registered_at", "student_name", "course_name"}
	if fmt.Sprint(dump.Columns) != fmt.Sprint(want) {
		t.Errorf("columns = %v, want %v", dump.Columns, want)
	}
	if len(dump.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(dump.Rows))
	}
	if dump.Rows[0][4] != "John Doe" || dump.Rows[0][5] != "Algorithms" {
		t.Errorf("first row = %v", dump.Rows[0])
	}
}

func TestExportUnknownTable(t *testing.T) {
	store := newTestStore(t)
	_, err := store.ExportTable("buildings")
	if !errors.Is(err, types.ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestExportEmptyTable(t *testing.T) {
	store := newTestStore(t)
	dump, err := store.ExportTable(types.InstructorsTable)
	if err != nil {
		t.Fatalf("exporting: %v", err)
	}
	if len(dump.Columns) == 0 {
		t.Error("header missing for empty table")
	}
	if len(dump.Rows) != 0 {
		t.Errorf("rows = %v, want none", dump.Rows)
	}
}

func TestStatisticsCounts(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	stats, err := store.Statistics()
	if err != nil {
		t.Fatalf("computing: %v", err)
	}
	if stats.Students != 2 || stats.Instructors != 1 || stats.Courses != 2 || stats.Registrations != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStatisticsPopularCourses(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	stats, err := store.Statistics()
	if err != nil {
		t.Fatalf("computing: %v", err)
	}
	if len(stats.PopularCourses) != 2 {
		t.Fatalf("popular = %+v", stats.PopularCourses)
	}
	// C1 has two enrollments, C2 one.
	if stats.PopularCourses[0].CourseID != "C1" || stats.PopularCourses[0].Enrolled != 2 {
		t.Errorf("top course = %+v", stats.PopularCourses[0])
	}
	if stats.PopularCourses[1].CourseID != "C2" || stats.PopularCourses[1].Enrolled != 1 {
		t.Errorf("second course = %+v", stats.PopularCourses[1])
	}
}

func TestStatisticsTieBreaksOnInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	for _, c := range []*types.Course{
		testCourse(t, "CB", "Beta", ""),
		testCourse(t, "CA", "Alpha", ""),
	} {
		if err := store.InsertCourse(c); err != nil {
			t.Fatalf("inserting %s: %v", c.CourseID, err)
		}
	}

	stats, err := store.Statistics()
	if err != nil {
		t.Fatalf("computing: %v", err)
	}
	// Both courses have zero enrollments; the earlier row wins.
	if len(stats.PopularCourses) != 2 || stats.PopularCourses[0].CourseID != "CB" {
		t.Errorf("popular = %+v", stats.PopularCourses)
	}
}

func TestStatisticsLimitsToFive(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("C%d", i)
		if err := store.InsertCourse(testCourse(t, id, "Course "+id, "")); err != nil {
			t.Fatalf("inserting %s: %v", id, err)
		}
	}

	stats, err := store.Statistics()
	if err != nil {
		t.Fatalf("computing: %v", err)
	}
	if len(stats.PopularCourses) != 5 {
		t.Errorf("got %d popular courses, want 5", len(stats.PopularCourses))
	}
}

func TestStatisticsEmptyStore(t *testing.T) {
	store := newTestStore(t)
	stats, err := store.Statistics()
	if err != nil {
		t.Fatalf("computing: %v", err)
	}
	if stats.Students != 0 || len(stats.PopularCourses) != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
