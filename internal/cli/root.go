// Package cli implements the command-line interface for rollcube.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollcube/rollcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rollcube",
	Short: "Rolling-cube paint puzzle",
	Long: `Rollcube - a rolling-cube paint puzzle for the terminal.

Roll a cube across a square board. Painted cells paint the cube's bottom
face as it passes over them, and a painted bottom face paints blank cells
back. Get all six faces painted to win.

Levels and finished-game results live in a local SQLite database.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rollcube/rollcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Config keys read from ~/.rollcube/config.yaml.
const (
	cfgKeyDB   = "db"
	cfgKeySide = "side"
)

var (
	cfgOnce sync.Once
	cfgVal  *viper.Viper
	cfgErr  error
)

// loadConfig reads the optional YAML config, once per process. A missing
// file is not an error; flags always win over config values.
func loadConfig() (*viper.Viper, error) {
	cfgOnce.Do(func() {
		cfgVal, cfgErr = readConfigFile()
	})
	return cfgVal, cfgErr
}

func readConfigFile() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDB, "")
	v.SetDefault(cfgKeySide, 4)

	home, err := os.UserHomeDir()
	if err != nil {
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".rollcube"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// openDB opens the database at the flag path, the configured path, or the
// default, in that order.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if path := cfg.GetString(cfgKeyDB); path != "" {
		return storage.Open(path)
	}

	return storage.OpenDefault()
}

// configuredSide returns the default board side from config.
func configuredSide() int {
	cfg, err := loadConfig()
	if err != nil {
		return 4
	}
	side := cfg.GetInt(cfgKeySide)
	if side <= 2 {
		return 4
	}
	return side
}
