// Cross-entity search command.
package main

import (
	"github.com/spf13/cobra"
)

var searchKinds []string

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search students, instructors, and courses",
	Long: `Search matches the term as a case-insensitive substring of names,
ids, and (for people) emails. --kind narrows the search.

Example:
  registrar search doe
  registrar search algo --kind course`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.Search(args[0], searchKinds...)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rows)
		}
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, []string{r.Kind, r.DisplayName, r.ID, r.Detail})
		}
		printTable([]string{"KIND", "NAME", "ID", "DETAIL"}, out)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchKinds, "kind", nil, "limit to kinds (student, instructor, course)")
}
