package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// exportQueries maps exportable table names to their materializing query.
// The courses export joins in the instructor's display name; registrations
// joins in student and course names.
var exportQueries = map[string]string{
	types.StudentsTable:    "SELECT student_id, name, age, email, created_at, updated_at FROM students",
	types.InstructorsTable: "SELECT instructor_id, name, age, email, created_at, updated_at FROM instructors",
	types.CoursesTable: "SELECT c.course_id, c.course_name, c.instructor_id, c.created_at, c.updated_at, i.name AS instructor_name " +
		"FROM courses c LEFT JOIN instructors i ON c.instructor_id = i.instructor_id",
	types.RegistrationsTable: "SELECT r.id, r.student_id, r.course_id, r.registered_at, s.name AS student_name, c.course_name " +
		"FROM registrations r " +
		"JOIN students s ON r.student_id = s.student_id " +
		"JOIN courses c ON r.course_id = c.course_id",
}

// ExportTable materializes one table as a header row plus data rows, every
// value rendered as a string and NULLs rendered empty. Returns
// types.ErrUnknownTable for a name outside StandardTableNames.
func (s *Store) ExportTable(name string) (types.TableDump, error) {
	if s.db == nil {
		return types.TableDump{}, types.ErrStoreClosed
	}
	query, ok := exportQueries[name]
	if !ok {
		return types.TableDump{}, fmt.Errorf("exporting %q: %w", name, types.ErrUnknownTable)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return types.TableDump{}, fmt.Errorf("exporting %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return types.TableDump{}, fmt.Errorf("exporting %s columns: %w", name, err)
	}

	dump := types.TableDump{Table: name, Columns: cols, Rows: [][]string{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return types.TableDump{}, fmt.Errorf("exporting %s row: %w", name, err)
		}
		dump.Rows = append(dump.Rows, renderRow(values))
	}
	if err := rows.Err(); err != nil {
		return types.TableDump{}, fmt.Errorf("exporting %s: %w", name, err)
	}
	return dump, nil
}

// renderRow converts scanned column values to their string form.
func renderRow(values []any) []string {
	row := make([]string, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			row[i] = ""
		case string:
			row[i] = val
		case []byte:
			row[i] = string(val)
		case int64:
			row[i] = strconv.FormatInt(val, 10)
		case float64:
			row[i] = strconv.FormatFloat(val, 'g', -1, 64)
		case sql.RawBytes:
			row[i] = string(val)
		default:
			row[i] = fmt.Sprint(val)
		}
	}
	return row
}
