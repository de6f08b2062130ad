// Course commands: add, list, search, update, assign, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Manage courses",
}

var (
	courseID         string
	courseName       string
	courseInstructor string
	courseClear      bool
)

var courseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a course, optionally with an instructor",
	Long: `Add creates a course. --instructor must reference an existing
instructor id; the insert fails otherwise.

Example:
  registrar course add --id C1 --name Algorithms --instructor I1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := courseID
		if id == "" {
			id = newID()
		}
		c, err := types.NewCourse(id, courseName, courseInstructor)
		if err != nil {
			return err
		}
		if err := store.InsertCourse(c); err != nil {
			return err
		}
		fmt.Printf("Added course %s\n", id)
		return nil
	},
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses with their instructor",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.ListCourseRows()
		if err != nil {
			return err
		}
		return printCourseRows(rows)
	},
}

var courseSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search courses by name or id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.SearchCourses(args[0])
		if err != nil {
			return err
		}
		return printCourseRows(rows)
	},
}

var courseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a course's fields",
	Long: `Update changes only the fields whose flags were supplied.
--clear-instructor removes the instructor assignment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var upd types.CourseUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &courseName
		}
		if courseClear {
			upd.Instructor = types.Null()
		} else if cmd.Flags().Changed("instructor") {
			upd.Instructor = types.Set(courseInstructor)
		}
		if err := store.UpdateCourse(args[0], upd); err != nil {
			return err
		}
		fmt.Printf("Updated course %s\n", args[0])
		return nil
	},
}

var courseAssignCmd = &cobra.Command{
	Use:   "assign <course-id> <instructor-id>",
	Short: "Assign an instructor to a course",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := types.CourseUpdate{Instructor: types.Set(args[1])}
		if err := store.UpdateCourse(args[0], upd); err != nil {
			return err
		}
		fmt.Printf("Assigned %s to course %s\n", args[1], args[0])
		return nil
	},
}

var courseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a course and its registrations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteCourse(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted course %s\n", args[0])
		return nil
	},
}

func printCourseRows(rows []types.CourseRow) error {
	if flagJSON {
		return printJSON(rows)
	}
	out := make([][]string, 0, len(rows))
	for _, cr := range rows {
		instructor := cr.InstructorName
		if cr.InstructorID == "" {
			instructor = "-"
		}
		out = append(out, []string{cr.CourseID, cr.Name, instructor})
	}
	printTable([]string{"ID", "NAME", "INSTRUCTOR"}, out)
	return nil
}

func init() {
	courseAddCmd.Flags().StringVar(&courseID, "id", "", "course id (generated when omitted)")
	courseAddCmd.Flags().StringVar(&courseName, "name", "", "course name (required)")
	courseAddCmd.Flags().StringVar(&courseInstructor, "instructor", "", "instructor id")
	_ = courseAddCmd.MarkFlagRequired("name")

	courseUpdateCmd.Flags().StringVar(&courseName, "name", "", "new name")
	courseUpdateCmd.Flags().StringVar(&courseInstructor, "instructor", "", "new instructor id")
	courseUpdateCmd.Flags().BoolVar(&courseClear, "clear-instructor", false, "remove the instructor assignment")

	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseSearchCmd)
	courseCmd.AddCommand(courseUpdateCmd)
	courseCmd.AddCommand(courseAssignCmd)
	courseCmd.AddCommand(courseDeleteCmd)
}
