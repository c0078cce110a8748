// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/services"
	"github.com/blogdeck/blogdeck/internal/tui"
)

func newTUICommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	rt, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer rt.close()

	blogs, err := rt.openBlogService()
	if err != nil {
		return err
	}
	defer blogs.Close()

	persister := services.NewSettingsPersister(blogs,
		services.WithSaveTimeout(rt.cfg.Remote.SaveTimeout),
		services.WithPersisterLogger(logger.GetSyncLogger()),
	)

	rt.log.Info().Bool("remote", blogs.HasRemote()).Msg("Starting TUI")
	return tui.StartTUI(rt.cfg.TUI, blogs, persister)
}
