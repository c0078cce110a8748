// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogdeck/blogdeck/internal/models"
)

const queryTimeout = 10 * time.Second

func newBlogsCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "blogs",
		Aliases: []string{"ls"},
		Short:   "List the blogs in the local store",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listBlogs(cmd, opts)
		},
	}

	cmd.AddCommand(newBlogsAddCommand(opts))
	return cmd
}

func listBlogs(cmd *cobra.Command, opts *globalOptions) error {
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

	ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
	defer cancel()

	list, err := blogs.LoadBlogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load blogs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No blogs found.")
		fmt.Fprintln(out, "\nAdd one with:")
		fmt.Fprintf(out, "  %s blogs add \"My Blog\" myblog.example.com\n", appName)
		return nil
	}

	printBlogTable(out, list)
	return nil
}

func printBlogTable(out io.Writer, list []*models.Blog) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-24s  %-36s  %-20s  %s\n", "NAME", "ID", "THEME", "URL")
	fmt.Fprintln(out, "────────────────────────  ────────────────────────────────────  ────────────────────  ────────────────────────────────")
	for _, b := range list {
		fmt.Fprintf(out, "%-24s  %-36s  %-20s  %s\n",
			truncate(b.DisplayName(), 24), truncate(b.ID, 36), truncate(b.ActiveThemeID, 20), b.URL)
	}
	fmt.Fprintln(out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func newBlogsAddCommand(opts *globalOptions) *cobra.Command {
	var tagline string

	cmd := &cobra.Command{
		Use:   "add NAME ADDRESS",
		Short: "Create a blog in the local store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
			defer cancel()

			blog, err := blogs.CreateBlog(ctx, args[0], args[1], tagline)
			if err != nil {
				return fmt.Errorf("failed to create blog: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s) at %s\n", blog.DisplayName(), blog.ID, blog.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&tagline, "tagline", "", "short description shown under the blog title")
	return cmd
}
