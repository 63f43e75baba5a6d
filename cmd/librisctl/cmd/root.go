// Package cmd implements the librisctl CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/dastas/libris-core/migrations"

	"github.com/dastas/libris-core/internal/auth"
	"github.com/dastas/libris-core/internal/catalog"
	"github.com/dastas/libris-core/internal/infrastructure/database"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	// Global flags
	dbPath string

	// Shared handles, opened by PersistentPreRunE
	db       *database.DB
	userRepo auth.UserRepository
	bookRepo catalog.Repository
)

var rootCmd = &cobra.Command{
	Use:   "librisctl",
	Short: "Operator CLI for Libris Core",
	Long: `librisctl manages a Libris Core database directly.

It provisions user accounts and demo data without needing the API
server running. Point it at the same database file as the daemon.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var err error
		db, err = database.Open(database.Config{
			Path:        dbPath,
			WALMode:     true,
			BusyTimeout: 5,
		})
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		if err := db.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		userRepo = auth.NewUserRepository(db.DB)
		bookRepo = catalog.NewSQLiteRepository(db.DB)
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if db != nil {
			db.Close() //nolint:errcheck // Best effort on CLI exit
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/libris.db", "Database path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
