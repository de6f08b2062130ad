package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourseValidation(t *testing.T) {
	c, err := NewCourse("C1", "Algorithms", "I1")
	require.NoError(t, err)
	assert.Equal(t, "C1", c.CourseID)
	assert.Equal(t, "I1", c.InstructorID)
	assert.Empty(t, c.EnrolledStudents)

	c, err = NewCourse("C2", "Databases", "")
	require.NoError(t, err)
	assert.Empty(t, c.InstructorID, "instructor is optional")

	_, err = NewCourse("", "Algorithms", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "course id", ve.Field)

	_, err = NewCourse("C1", "  ", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestCourseHasStudent(t *testing.T) {
	c, _ := NewCourse("C1", "Algorithms", "")
	c.EnrolledStudents = []string{"S1"}
	assert.True(t, c.HasStudent("S1"))
	assert.False(t, c.HasStudent("S2"))
}

func TestUpdateRequestsIsZero(t *testing.T) {
	assert.True(t, StudentUpdate{}.IsZero())
	name := "x"
	assert.False(t, StudentUpdate{Name: &name}.IsZero())

	assert.True(t, CourseUpdate{}.IsZero())
	assert.False(t, CourseUpdate{Instructor: Null()}.IsZero())
	assert.False(t, CourseUpdate{Instructor: Set("I1")}.IsZero())
}
