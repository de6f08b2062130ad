// Package main provides the registrar CLI, a thin front end over the
// registrar store and relationship graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/sqlite"
)

// Global flag values.
var (
	flagConfigDir string
	flagDB        string
	flagJSON      bool
)

// store is the open store instance, initialized by PersistentPreRunE for
// every command that touches the database.
var store *sqlite.Store

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Registrar manages students, instructors, and courses",
	Long: `Registrar is a local student/instructor/course registry backed by a
single SQLite file. It provides CRUD, enrollment, search, statistics,
CSV export, backup, and JSON graph import/export.`,
	SilenceUsage:      true,
	PersistentPreRunE: openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .registrar)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(instructorCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
}

// openStore resolves the database path and opens the store. Skipped for
// commands that manage their own lifecycle.
func openStore(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "init", "help", "completion":
		return nil
	}

	cfg, err := resolveStoreConfig()
	if err != nil {
		return err
	}

	st, err := sqlite.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	store = st
	return nil
}

// closeStore releases the store if a command opened it.
func closeStore() error {
	if store != nil {
		err := store.Close()
		store = nil
		return err
	}
	return nil
}
