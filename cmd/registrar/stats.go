// Statistics command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts and the most popular courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := store.Statistics()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(stats)
		}
		fmt.Printf("Students:      %d\n", stats.Students)
		fmt.Printf("Instructors:   %d\n", stats.Instructors)
		fmt.Printf("Courses:       %d\n", stats.Courses)
		fmt.Printf("Registrations: %d\n", stats.Registrations)
		if len(stats.PopularCourses) > 0 {
			fmt.Println("Top courses by enrollment:")
			for _, ce := range stats.PopularCourses {
				fmt.Printf("  %s (%s): %d\n", ce.Name, ce.CourseID, ce.Enrolled)
			}
		}
		return nil
	},
}
