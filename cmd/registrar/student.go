// Student commands: add, list, search, update, delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// studentOut is the JSON output shape for one student.
type studentOut struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

func studentsOut(students []*types.Student) []studentOut {
	out := make([]studentOut, 0, len(students))
	for _, st := range students {
		out = append(out, studentOut{
			StudentID: st.StudentID,
			Name:      st.Name,
			Age:       st.Age,
			Email:     st.Email(),
		})
	}
	return out
}

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage students",
}

var (
	studentID    string
	studentName  string
	studentAge   int
	studentEmail string
)

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student",
	Long: `Add creates a student after validating name, age, and email.

Example:
  registrar student add --name "John Doe" --age 20 --email doe@x.com
  registrar student add --id S1 --name "John Doe" --age 20 --email doe@x.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := studentID
		if id == "" {
			id = newID()
		}
		st, err := types.NewStudent(studentName, studentAge, studentEmail, id)
		if err != nil {
			return err
		}
		if err := store.InsertStudent(st); err != nil {
			return err
		}
		if flagJSON {
			return printJSON(studentsOut([]*types.Student{st})[0])
		}
		fmt.Printf("Added student %s\n", id)
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students",
	RunE: func(cmd *cobra.Command, args []string) error {
		students, err := store.ListStudents()
		if err != nil {
			return err
		}
		return printStudents(students)
	},
}

var studentSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search students by name, id, or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		students, err := store.SearchStudents(args[0])
		if err != nil {
			return err
		}
		return printStudents(students)
	},
}

var studentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student's fields",
	Long:  "Update changes only the fields whose flags were supplied.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var upd types.StudentUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &studentName
		}
		if cmd.Flags().Changed("age") {
			upd.Age = &studentAge
		}
		if cmd.Flags().Changed("email") {
			upd.Email = &studentEmail
		}
		if err := store.UpdateStudent(args[0], upd); err != nil {
			return err
		}
		fmt.Printf("Updated student %s\n", args[0])
		return nil
	},
}

var studentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a student and its registrations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteStudent(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted student %s\n", args[0])
		return nil
	},
}

func printStudents(students []*types.Student) error {
	if flagJSON {
		return printJSON(studentsOut(students))
	}
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{st.StudentID, st.Name, strconv.Itoa(st.Age), st.Email()})
	}
	printTable([]string{"ID", "NAME", "AGE", "EMAIL"}, rows)
	return nil
}

func init() {
	studentAddCmd.Flags().StringVar(&studentID, "id", "", "student id (generated when omitted)")
	studentAddCmd.Flags().StringVar(&studentName, "name", "", "student name (required)")
	studentAddCmd.Flags().IntVar(&studentAge, "age", 0, "student age")
	studentAddCmd.Flags().StringVar(&studentEmail, "email", "", "student email (required)")
	_ = studentAddCmd.MarkFlagRequired("name")
	_ = studentAddCmd.MarkFlagRequired("email")

	studentUpdateCmd.Flags().StringVar(&studentName, "name", "", "new name")
	studentUpdateCmd.Flags().IntVar(&studentAge, "age", 0, "new age")
	studentUpdateCmd.Flags().StringVar(&studentEmail, "email", "", "new email")

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentSearchCmd)
	studentCmd.AddCommand(studentUpdateCmd)
	studentCmd.AddCommand(studentDeleteCmd)
}
