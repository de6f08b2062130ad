// Backup command: copy the database file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup [path]",
	Short: "Copy the database file",
	Long: `Backup copies the database file to the given path, or to a
timestamped file next to the source when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := ""
		if len(args) == 1 {
			dst = args[0]
		}
		written, err := store.Backup(dst)
		if err != nil {
			return err
		}
		fmt.Printf("Database backed up to %s\n", written)
		return nil
	},
}
