package school

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

func buildSampleGraph(t *testing.T) *System {
	t.Helper()
	sys := NewSystem()
	sys.AddInstructor(mustInstructor(t, "Ada Lovelace", 40, "ada@x.com", "I1"))
	sys.AddCourse(mustCourse(t, "C1", "Algorithms", "I1"))
	sys.AddCourse(mustCourse(t, "C2", "Databases", ""))
	sys.AddStudent(mustStudent(t, "John Doe", 20, "doe@x.com", "S1"))
	sys.AddStudent(mustStudent(t, "Jane Roe", 22, "roe@x.com", "S2"))
	sys.RegisterStudentToCourse("S1", "C1")
	sys.RegisterStudentToCourse("S1", "C2")
	sys.RegisterStudentToCourse("S2", "C1")
	return sys
}

func TestSaveLoadRoundTrip(t *testing.T) {
	sys := buildSampleGraph(t)
	path := filepath.Join(t.TempDir(), "graph.json")

	require.NoError(t, sys.SaveJSON(path))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	assertConsistent(t, loaded)

	assert.Len(t, loaded.Students(), 2)
	assert.Len(t, loaded.Instructors(), 1)
	assert.Len(t, loaded.Courses(), 2)

	s1, ok := loaded.FindStudentByID("S1")
	require.True(t, ok)
	assert.Equal(t, []string{"C1", "C2"}, s1.RegisteredCourses)
	assert.Equal(t, "doe@x.com", s1.Email())

	c1, ok := loaded.FindCourseByID("C1")
	require.True(t, ok)
	assert.Equal(t, "I1", c1.InstructorID)
	assert.ElementsMatch(t, []string{"S1", "S2"}, c1.EnrolledStudents)

	c2, ok := loaded.FindCourseByID("C2")
	require.True(t, ok)
	assert.Empty(t, c2.InstructorID)
}

func TestMarshalFormat(t *testing.T) {
	sys := buildSampleGraph(t)

	data, err := sys.MarshalJSON()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "students")
	assert.Contains(t, doc, "instructors")
	assert.Contains(t, doc, "courses")

	var courses []map[string]any
	require.NoError(t, json.Unmarshal(doc["courses"], &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, "I1", courses[0]["instructor_id"])
	assert.Nil(t, courses[1]["instructor_id"], "unassigned course serializes null")
}

func TestMarshalEmptyGraph(t *testing.T) {
	data, err := NewSystem().MarshalJSON()
	require.NoError(t, err)

	// Empty collections serialize as [], not null.
	var doc struct {
		Students    []json.RawMessage `json:"students"`
		Instructors []json.RawMessage `json:"instructors"`
		Courses     []json.RawMessage `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotNil(t, doc.Students)
	assert.NotNil(t, doc.Instructors)
	assert.NotNil(t, doc.Courses)
	assert.Contains(t, string(data), `"students": []`)
}

func TestLoadSkipsUnknownCourseRegistrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	doc := `{
  "students": [
    {"name": "John Doe", "age": 20, "email": "doe@x.com", "student_id": "S1",
     "registered_courses": ["C1", "GHOST"]}
  ],
  "instructors": [],
  "courses": [
    {"course_id": "C1", "course_name": "Algorithms", "instructor_id": null,
     "enrolled_students": []}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	st, ok := loaded.FindStudentByID("S1")
	require.True(t, ok)
	assert.Equal(t, []string{"C1"}, st.RegisteredCourses, "unknown course id dropped")
	assertConsistent(t, loaded)
}

func TestLoadUnknownInstructorDetaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	doc := `{
  "students": [],
  "instructors": [],
  "courses": [
    {"course_id": "C1", "course_name": "Algorithms", "instructor_id": "GHOST",
     "enrolled_students": []}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	c, ok := loaded.FindCourseByID("C1")
	require.True(t, ok)
	assert.Empty(t, c.InstructorID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"))
	var ioe *types.IOError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "load graph", ioe.Op)
}

func TestLoadInvalidEntity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	doc := `{
  "students": [
    {"name": "", "age": 20, "email": "doe@x.com", "student_id": "S1",
     "registered_courses": []}
  ],
  "instructors": [],
  "courses": []
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadJSON(path)
	assert.True(t, types.IsValidation(err))
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	sys := buildSampleGraph(t)
	require.NoError(t, sys.SaveJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	// No leftover temp files from the write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
