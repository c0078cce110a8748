// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the blogdeck command tree.
package cli

import (
	"github.com/spf13/cobra"
)

const appName = "blogdeck"

// Version is overridden at build time with -ldflags.
var Version = "0.1.0-alpha"

type globalOptions struct {
	configPath string
}

// NewRootCommand builds the blogdeck command and its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   appName,
		Short: "blogdeck manages the discussion settings and themes of your blogs",
		Long: `blogdeck is a terminal client for a blog settings API.

Run without a subcommand to open the interactive UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to config file (default: ./config.yaml or ~/.blogdeck/config.yaml)")

	root.AddCommand(
		newTUICommand(opts),
		newServeCommand(opts),
		newMigrateCommand(opts),
		newBlogsCommand(opts),
		newSyncCommand(opts),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
