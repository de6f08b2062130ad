// Export command: render one table as CSV. The store materializes header
// and rows; CSV formatting is purely a rendering concern and stays here.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <table>",
	Short: "Export a table as CSV",
	Long: fmt.Sprintf(`Export writes one table as CSV to --output, or stdout when omitted.
Valid tables: %s. The courses export includes the instructor's name;
registrations includes student and course names.`, strings.Join(types.StandardTableNames, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := store.ExportTable(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return &types.IOError{Op: "export", Path: exportOutput, Err: err}
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		if err := w.Write(dump.Columns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := w.WriteAll(dump.Rows); err != nil {
			return fmt.Errorf("write rows: %w", err)
		}
		w.Flush()
		return w.Error()
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output file (default: stdout)")
}
