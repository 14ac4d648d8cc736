package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caxe-dev/cx/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			release, _ := cmd.Flags().GetBool("release")
			binary, err := c.app.Build(cmd.Context(), app.BuildOptions{Release: release})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "built "+binary)
			return nil
		},
	}
	cmd.Flags().BoolP("release", "r", false, "Build with optimizations enabled")
	return cmd
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- args...]",
		Short: "Build and run the project",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			release, _ := cmd.Flags().GetBool("release")
			return c.app.Run(cmd.Context(), app.BuildOptions{Release: release}, args)
		},
	}
	cmd.Flags().BoolP("release", "r", false, "Build with optimizations enabled")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild automatically on source changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			release, _ := cmd.Flags().GetBool("release")
			return c.app.Watch(cmd.Context(), app.BuildOptions{Release: release})
		},
	}
	cmd.Flags().BoolP("release", "r", false, "Build with optimizations enabled")
	return cmd
}
