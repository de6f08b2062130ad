// Graph interchange commands: save rehydrates the store into a graph and
// writes the JSON document; load parses a document and dehydrates it into
// the store, replacing all prior contents.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/school"
)

var saveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Export the full graph as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := store.Rehydrate()
		if err != nil {
			return err
		}
		if err := sys.SaveJSON(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved graph to %s\n", args[0])
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Replace the store contents with a JSON graph",
	Long: `Load parses a JSON graph document and writes it into the store,
replacing everything currently there. The replacement is transactional:
on failure the prior contents are untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := school.LoadJSON(args[0])
		if err != nil {
			return err
		}
		if err := store.Dehydrate(sys); err != nil {
			return err
		}
		fmt.Printf("Loaded graph from %s\n", args[0])
		return nil
	},
}
