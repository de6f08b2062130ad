// Init command: write config.yaml and create the database schema.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/registrar/internal/sqlite"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// configFile is the structure written to config.yaml on init.
type configFile struct {
	DBPath string `yaml:"db_path"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize registrar configuration and database",
	Long: `Init writes config.yaml into the configuration directory (unless it
already exists) and creates the database file with the full schema.

Example:
  registrar init
  registrar init --db school.db`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := resolveConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = os.Getenv(envDB)
	}
	if dbPath == "" {
		if v, err := loadConfig(configDir); err == nil {
			dbPath = v.GetString(cfgKeyDBPath)
		}
	}
	if dbPath == "" {
		dbPath = defaultDBFileName
	}

	if err := writeConfigIfMissing(configDir, dbPath); err != nil {
		return err
	}

	st, err := sqlite.Open(types.Config{DBPath: dbPath})
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	if err := st.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	fmt.Printf("Initialized registrar database at %s\n", dbPath)
	return nil
}

// writeConfigIfMissing creates config.yaml unless one already exists.
func writeConfigIfMissing(configDir, dbPath string) error {
	path := configPath(configDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(configFile{DBPath: dbPath})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	content := append([]byte("# Registrar CLI configuration\n"), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
