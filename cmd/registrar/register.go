// Enrollment commands: register and unregister a student/course pair.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <student-id> <course-id>",
	Short: "Register a student to a course",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.RegisterStudentToCourse(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Registered %s to %s\n", args[0], args[1])
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister <student-id> <course-id>",
	Short: "Unregister a student from a course",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.UnregisterStudentFromCourse(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Unregistered %s from %s\n", args[0], args[1])
		return nil
	},
}
