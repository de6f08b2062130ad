package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentValidation(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		age       int
		email     string
		id        string
		wantField string
	}{
		{
			name:   "valid student",
			inName: "John Doe",
			age:    20,
			email:  "doe@x.com",
			id:     "S1",
		},
		{
			name:   "zero age is valid",
			inName: "Newborn",
			age:    0,
			email:  "n@x.com",
			id:     "S2",
		},
		{
			name:      "empty name rejected",
			inName:    "",
			age:       20,
			email:     "doe@x.com",
			id:        "S1",
			wantField: "name",
		},
		{
			name:      "blank name rejected",
			inName:    "   ",
			age:       20,
			email:     "doe@x.com",
			id:        "S1",
			wantField: "name",
		},
		{
			name:      "negative age rejected",
			inName:    "John Doe",
			age:       -1,
			email:     "doe@x.com",
			id:        "S1",
			wantField: "age",
		},
		{
			name:      "email without at sign rejected",
			inName:    "John Doe",
			age:       20,
			email:     "doe.x.com",
			id:        "S1",
			wantField: "email",
		},
		{
			name:      "email without domain dot rejected",
			inName:    "John Doe",
			age:       20,
			email:     "doe@xcom",
			id:        "S1",
			wantField: "email",
		},
		{
			name:      "single letter tld rejected",
			inName:    "John Doe",
			age:       20,
			email:     "doe@x.c",
			id:        "S1",
			wantField: "email",
		},
		{
			name:      "empty id rejected",
			inName:    "John Doe",
			age:       20,
			email:     "doe@x.com",
			id:        "",
			wantField: "student id",
		},
		{
			name:      "blank id rejected",
			inName:    "John Doe",
			age:       20,
			email:     "doe@x.com",
			id:        "  ",
			wantField: "student id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewStudent(tt.inName, tt.age, tt.email, tt.id)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.id, st.StudentID)
				assert.Equal(t, tt.email, st.Email())
				assert.Empty(t, st.RegisteredCourses)
				return
			}
			require.Error(t, err)
			assert.Nil(t, st, "no partially built entity on failure")
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewInstructorValidation(t *testing.T) {
	in, err := NewInstructor("Ada", 40, "ada@x.com", "I1")
	require.NoError(t, err)
	assert.Equal(t, "I1", in.InstructorID)
	assert.Empty(t, in.AssignedCourses)

	_, err = NewInstructor("Ada", 40, "ada@x.com", " ")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "instructor id", ve.Field)
}

func TestSetEmailRevalidates(t *testing.T) {
	st, err := NewStudent("John Doe", 20, "doe@x.com", "S1")
	require.NoError(t, err)

	require.NoError(t, st.SetEmail("john.doe@example.org"))
	assert.Equal(t, "john.doe@example.org", st.Email())

	err = st.SetEmail("not-an-email")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "john.doe@example.org", st.Email(), "address kept on failure")
}

func TestMembershipHelpers(t *testing.T) {
	st, _ := NewStudent("John Doe", 20, "doe@x.com", "S1")
	st.RegisteredCourses = []string{"C1", "C2"}
	assert.True(t, st.IsRegistered("C1"))
	assert.False(t, st.IsRegistered("C3"))

	in, _ := NewInstructor("Ada", 40, "ada@x.com", "I1")
	in.AssignedCourses = []string{"C1"}
	assert.True(t, in.IsAssigned("C1"))
	assert.False(t, in.IsAssigned("C2"))
}
