// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// ErrNoRemote is returned by commands that need remote.base_url.
var ErrNoRemote = errors.New("remote.base_url is not configured")

func newSyncCommand(opts *globalOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull blogs, discussion settings and themes from the settings API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			if rt.cfg.Remote.BaseURL == "" {
				return ErrNoRemote
			}

			blogs, err := rt.openBlogService()
			if err != nil {
				return err
			}
			defer blogs.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := blogs.SyncFromRemote(ctx)
			if err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Synced %d blogs and %d themes from %s\n", result.Blogs, result.Themes, rt.cfg.Remote.BaseURL)
			if len(result.Failed) > 0 {
				fmt.Fprintf(out, "Failed: %s\n", strings.Join(result.Failed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall time limit for the sync")
	return cmd
}
