package sqlite

import (
	"testing"

	"github.com/mesh-intelligence/registrar/pkg/school"
)

func TestRehydrateBuildsLinkedGraph(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	sys, err := store.Rehydrate()
	if err != nil {
		t.Fatalf("rehydrating: %v", err)
	}

	if len(sys.Students()) != 2 || len(sys.Instructors()) != 1 || len(sys.Courses()) != 2 {
		t.Fatalf("sizes: %d students, %d instructors, %d courses",
			len(sys.Students()), len(sys.Instructors()), len(sys.Courses()))
	}

	s1, ok := sys.FindStudentByID("S1")
	if !ok {
		t.Fatal("S1 missing")
	}
	if len(s1.RegisteredCourses) != 2 {
		t.Errorf("S1 courses = %v", s1.RegisteredCourses)
	}

	c1, ok := sys.FindCourseByID("C1")
	if !ok {
		t.Fatal("C1 missing")
	}
	if c1.InstructorID != "I1" {
		t.Errorf("C1 instructor = %q", c1.InstructorID)
	}
	if !c1.HasStudent("S1") || !c1.HasStudent("S2") {
		t.Errorf("C1 students = %v", c1.EnrolledStudents)
	}

	in, ok := sys.FindInstructorByID("I1")
	if !ok {
		t.Fatal("I1 missing")
	}
	if !in.IsAssigned("C1") {
		t.Errorf("I1 courses = %v", in.AssignedCourses)
	}
}

func TestRehydrateEmptyStore(t *testing.T) {
	store := newTestStore(t)

	sys, err := store.Rehydrate()
	if err != nil {
		t.Fatalf("rehydrating: %v", err)
	}
	if len(sys.Students())+len(sys.Instructors())+len(sys.Courses()) != 0 {
		t.Error("empty store produced a non-empty graph")
	}
}

func TestDehydrateReplacesContents(t *testing.T) {
	store := newTestStore(t)
	// Prior rows that the incoming graph does not contain.
	if err := store.InsertStudent(testStudent(t, "Old Row", 30, "old@x.com", "OLD")); err != nil {
		t.Fatalf("seeding prior row: %v", err)
	}

	sys := school.NewSystem()
	sys.AddInstructor(testInstructor(t, "Ada Lovelace", 40, "ada@x.com", "I1"))
	sys.AddCourse(testCourse(t, "C1", "Algorithms", "I1"))
	sys.AddStudent(testStudent(t, "John Doe", 20, "doe@x.com", "S1"))
	sys.RegisterStudentToCourse("S1", "C1")

	if err := store.Dehydrate(sys); err != nil {
		t.Fatalf("dehydrating: %v", err)
	}

	students, err := store.ListStudents()
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(students) != 1 || students[0].StudentID != "S1" {
		t.Errorf("students after dehydrate = %+v", students)
	}

	regs, err := store.ListRegistrations()
	if err != nil {
		t.Fatalf("listing registrations: %v", err)
	}
	if len(regs) != 1 || regs[0].StudentID != "S1" || regs[0].CourseID != "C1" {
		t.Errorf("registrations after dehydrate = %+v", regs)
	}
}

func TestDehydrateEmptyGraphClearsStore(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	if err := store.Dehydrate(school.NewSystem()); err != nil {
		t.Fatalf("dehydrating: %v", err)
	}

	stats, err := store.Statistics()
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if stats.Students+stats.Instructors+stats.Courses+stats.Registrations != 0 {
		t.Errorf("store not empty: %+v", stats)
	}
}

func TestDehydrateFailureLeavesStoreUntouched(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	// Two students sharing an email violate the UNIQUE constraint midway
	// through the insert phase.
	sys := school.NewSystem()
	sys.AddStudent(testStudent(t, "First", 20, "same@x.com", "A1"))
	sys.AddStudent(testStudent(t, "Second", 21, "same@x.com", "A2"))

	if err := store.Dehydrate(sys); err == nil {
		t.Fatal("expected dehydrate to fail")
	}

	// The transaction rolled back; the seeded rows survive.
	students, err := store.ListStudents()
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("got %d students, want the 2 seeded", len(students))
	}
	regs, _ := store.ListRegistrations()
	if len(regs) != 3 {
		t.Errorf("got %d registrations, want the 3 seeded", len(regs))
	}
}

func TestRoundTripIsomorphism(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	first, err := store.Rehydrate()
	if err != nil {
		t.Fatalf("first rehydrate: %v", err)
	}
	if err := store.Dehydrate(first); err != nil {
		t.Fatalf("dehydrating: %v", err)
	}
	second, err := store.Rehydrate()
	if err != nil {
		t.Fatalf("second rehydrate: %v", err)
	}

	if len(second.Students()) != len(first.Students()) ||
		len(second.Instructors()) != len(first.Instructors()) ||
		len(second.Courses()) != len(first.Courses()) {
		t.Fatal("entity counts changed across round trip")
	}

	for _, st := range first.Students() {
		got, ok := second.FindStudentByID(st.StudentID)
		if !ok {
			t.Fatalf("student %s lost", st.StudentID)
		}
		if got.Name != st.Name || got.Age != st.Age || got.Email() != st.Email() {
			t.Errorf("student %s changed: %+v vs %+v", st.StudentID, got, st)
		}
		if len(got.RegisteredCourses) != len(st.RegisteredCourses) {
			t.Errorf("student %s registrations changed: %v vs %v",
				st.StudentID, got.RegisteredCourses, st.RegisteredCourses)
		}
	}
	for _, c := range first.Courses() {
		got, ok := second.FindCourseByID(c.CourseID)
		if !ok {
			t.Fatalf("course %s lost", c.CourseID)
		}
		if got.InstructorID != c.InstructorID {
			t.Errorf("course %s instructor changed: %q vs %q",
				c.CourseID, got.InstructorID, c.InstructorID)
		}
	}
}

func TestDehydratePreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)
	seedEnrollment(t, store)

	sys, err := store.Rehydrate()
	if err != nil {
		t.Fatalf("rehydrating: %v", err)
	}
	s1, _ := sys.FindStudentByID("S1")
	created := s1.CreatedAt

	if err := store.Dehydrate(sys); err != nil {
		t.Fatalf("dehydrating: %v", err)
	}

	got, err := store.GetStudent("S1")
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at changed: %v vs %v", got.CreatedAt, created)
	}
}
