package types

// Update requests use pointer fields: nil means "leave unchanged", non-nil
// means "set to this value". The store turns a request into a column list,
// so only supplied fields are touched and updated_at refreshes via trigger.

// StudentUpdate is a partial update of one students row.
type StudentUpdate struct {
	Name  *string
	Age   *int
	Email *string
}

// IsZero reports whether the request changes nothing.
func (u StudentUpdate) IsZero() bool {
	return u.Name == nil && u.Age == nil && u.Email == nil
}

// InstructorUpdate is a partial update of one instructors row.
type InstructorUpdate struct {
	Name  *string
	Age   *int
	Email *string
}

// IsZero reports whether the request changes nothing.
func (u InstructorUpdate) IsZero() bool {
	return u.Name == nil && u.Age == nil && u.Email == nil
}

// OptionalID expresses the three-way intent for a nullable foreign key:
// leave unchanged (nil pointer in the enclosing request), set to an id, or
// clear to NULL.
type OptionalID struct {
	ID    string
	Clear bool // set the column to NULL; ID is ignored
}

// Set returns an OptionalID that assigns the given id.
func Set(id string) *OptionalID { return &OptionalID{ID: id} }

// Null returns an OptionalID that clears the column.
func Null() *OptionalID { return &OptionalID{Clear: true} }

// CourseUpdate is a partial update of one courses row. Instructor supports
// explicit clearing, which a plain pointer-to-string cannot express.
type CourseUpdate struct {
	Name       *string
	Instructor *OptionalID
}

// IsZero reports whether the request changes nothing.
func (u CourseUpdate) IsZero() bool {
	return u.Name == nil && u.Instructor == nil
}
