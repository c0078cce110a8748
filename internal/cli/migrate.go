// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogdeck/blogdeck/internal/database"
)

func newMigrateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the local database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			out := cmd.OutOrStdout()

			db, err := database.NewGormDB(&rt.cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			fmt.Fprintln(out, "Starting database migration...")
			fmt.Fprintf(out, "Driver: %s\n", rt.cfg.Database.Driver)

			if err := db.AutoMigrate(); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(out, "Database migration completed.")

			if err := db.ValidateSchema(); err != nil {
				return fmt.Errorf("schema validation failed after migration: %w", err)
			}
			fmt.Fprintln(out, "Schema validation passed, database is ready to use.")

			rt.log.Info().Str("driver", rt.cfg.Database.Driver).Msg("Database migrated")
			return nil
		},
	}
}
