package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Clean()
		},
	}
}

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the dependency cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(sub *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(sub.OutOrStdout(), c.app.CachePath())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List cached dependencies",
		Args:  cobra.NoArgs,
		RunE: func(sub *cobra.Command, _ []string) error {
			names, err := c.app.CacheList()
			if err != nil {
				return err
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(sub.OutOrStdout(), name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clean [name]",
		Short: "Remove cached dependencies (all, or just one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.app.CacheClean(name)
		},
	})

	return cmd
}
