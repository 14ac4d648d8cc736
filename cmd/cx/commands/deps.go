package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caxe-dev/cx/internal/app"
	"github.com/caxe-dev/cx/internal/ui/style"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <url | owner/repo | name>",
		Short: "Add a dependency to the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.AddOptions{}
			opts.Name, _ = cmd.Flags().GetString("name")
			opts.BuildScript, _ = cmd.Flags().GetString("build")
			opts.OutputArtifact, _ = cmd.Flags().GetString("output")

			// --tag, --branch, and --rev are all git revisions underneath;
			// they exist separately only for readability.
			for _, flag := range []string{"tag", "branch", "rev"} {
				if v, _ := cmd.Flags().GetString(flag); v != "" {
					opts.Ref = v
					break
				}
			}

			name, err := c.app.Add(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), style.Success(style.Check)+" added "+name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Override the dependency name")
	cmd.Flags().String("tag", "", "Pin to a tag")
	cmd.Flags().String("branch", "", "Pin to a branch")
	cmd.Flags().String("rev", "", "Pin to a revision")
	cmd.Flags().String("build", "", "Build script to run inside the clone")
	cmd.Flags().String("output", "", "Artifact path produced by the build script")
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a dependency from the manifest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Remove(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the package registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := c.app.Search(cmd.Context(), args[0])
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n    %s\n",
					style.Bold(e.Name), style.Dim(e.URL), e.Description)
			}
			return nil
		},
	}
}
