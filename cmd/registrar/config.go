// Config loading for the registrar CLI. The library takes an explicit
// types.Config; resolution of that value from flag, environment, and
// config.yaml happens only here.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDBPath = "db_path"

	// envDB overrides the configured database path.
	envDB = "REGISTRAR_DB"

	defaultConfigDirName = ".registrar"
	defaultDBFileName    = "registrar.db"
)

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("REGISTRAR_CONFIG_DIR"); v != "" {
		return v
	}
	return defaultConfigDirName
}

// resolveStoreConfig builds the store Config following the precedence
// --db flag > REGISTRAR_DB env > config.yaml db_path.
func resolveStoreConfig() (types.Config, error) {
	if flagDB != "" {
		return types.Config{DBPath: flagDB}, nil
	}
	if v := os.Getenv(envDB); v != "" {
		return types.Config{DBPath: v}, nil
	}

	v, err := loadConfig(resolveConfigDir())
	if err != nil {
		return types.Config{}, err
	}
	dbPath := v.GetString(cfgKeyDBPath)
	if dbPath == "" {
		return types.Config{}, errors.New("no database configured: pass --db or run 'registrar init'")
	}
	return types.Config{DBPath: dbPath}, nil
}

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config.yaml is not an error; the caller decides whether an
// empty db_path is acceptable.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// configPath returns the path of config.yaml inside the config directory.
func configPath(configDir string) string {
	return filepath.Join(configDir, configFileName+"."+configFileType)
}
