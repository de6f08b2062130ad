// Instructor commands: add, list, search, update, delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// instructorOut is the JSON output shape for one instructor.
type instructorOut struct {
	InstructorID string `json:"instructor_id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
}

func instructorsOut(instructors []*types.Instructor) []instructorOut {
	out := make([]instructorOut, 0, len(instructors))
	for _, in := range instructors {
		out = append(out, instructorOut{
			InstructorID: in.InstructorID,
			Name:         in.Name,
			Age:          in.Age,
			Email:        in.Email(),
		})
	}
	return out
}

var instructorCmd = &cobra.Command{
	Use:   "instructor",
	Short: "Manage instructors",
}

var (
	instructorID    string
	instructorName  string
	instructorAge   int
	instructorEmail string
)

var instructorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an instructor",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := instructorID
		if id == "" {
			id = newID()
		}
		in, err := types.NewInstructor(instructorName, instructorAge, instructorEmail, id)
		if err != nil {
			return err
		}
		if err := store.InsertInstructor(in); err != nil {
			return err
		}
		if flagJSON {
			return printJSON(instructorsOut([]*types.Instructor{in})[0])
		}
		fmt.Printf("Added instructor %s\n", id)
		return nil
	},
}

var instructorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all instructors",
	RunE: func(cmd *cobra.Command, args []string) error {
		instructors, err := store.ListInstructors()
		if err != nil {
			return err
		}
		return printInstructors(instructors)
	},
}

var instructorSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search instructors by name, id, or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instructors, err := store.SearchInstructors(args[0])
		if err != nil {
			return err
		}
		return printInstructors(instructors)
	},
}

var instructorUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an instructor's fields",
	Long:  "Update changes only the fields whose flags were supplied.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var upd types.InstructorUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &instructorName
		}
		if cmd.Flags().Changed("age") {
			upd.Age = &instructorAge
		}
		if cmd.Flags().Changed("email") {
			upd.Email = &instructorEmail
		}
		if err := store.UpdateInstructor(args[0], upd); err != nil {
			return err
		}
		fmt.Printf("Updated instructor %s\n", args[0])
		return nil
	},
}

var instructorDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an instructor; their courses keep running without one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteInstructor(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted instructor %s\n", args[0])
		return nil
	},
}

func printInstructors(instructors []*types.Instructor) error {
	if flagJSON {
		return printJSON(instructorsOut(instructors))
	}
	rows := make([][]string, 0, len(instructors))
	for _, in := range instructors {
		rows = append(rows, []string{in.InstructorID, in.Name, strconv.Itoa(in.Age), in.Email()})
	}
	printTable([]string{"ID", "NAME", "AGE", "EMAIL"}, rows)
	return nil
}

func init() {
	instructorAddCmd.Flags().StringVar(&instructorID, "id", "", "instructor id (generated when omitted)")
	instructorAddCmd.Flags().StringVar(&instructorName, "name", "", "instructor name (required)")
	instructorAddCmd.Flags().IntVar(&instructorAge, "age", 0, "instructor age")
	instructorAddCmd.Flags().StringVar(&instructorEmail, "email", "", "instructor email (required)")
	_ = instructorAddCmd.MarkFlagRequired("name")
	_ = instructorAddCmd.MarkFlagRequired("email")

	instructorUpdateCmd.Flags().StringVar(&instructorName, "name", "", "new name")
	instructorUpdateCmd.Flags().IntVar(&instructorAge, "age", 0, "new age")
	instructorUpdateCmd.Flags().StringVar(&instructorEmail, "email", "", "new email")

	instructorCmd.AddCommand(instructorAddCmd)
	instructorCmd.AddCommand(instructorListCmd)
	instructorCmd.AddCommand(instructorSearchCmd)
	instructorCmd.AddCommand(instructorUpdateCmd)
	instructorCmd.AddCommand(instructorDeleteCmd)
}
