package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caxe-dev/cx/internal/ui/style"
)

func (c *CLI) newToolchainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolchain",
		Short: "Inspect and select compiler toolchains",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List discovered compilers",
		Args:  cobra.NoArgs,
		RunE: func(sub *cobra.Command, _ []string) error {
			candidates, err := c.app.ToolchainList(sub.Context())
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				_, _ = fmt.Fprintln(sub.OutOrStdout(), "no compilers found")
				return nil
			}
			for _, cand := range candidates {
				_, _ = fmt.Fprintf(sub.OutOrStdout(), "%-10s %s  %s\n",
					cand.Type, cand.Path, style.Dim(cand.Version))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "select <compiler>",
		Short: "Persist a compiler selection (msvc, clang-cl, clang, gcc)",
		Args:  cobra.ExactArgs(1),
		RunE: func(sub *cobra.Command, args []string) error {
			cand, err := c.app.ToolchainSelect(sub.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(sub.OutOrStdout(), "%s selected %s (%s)\n",
				style.Success(style.Check), cand.Type, cand.Path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the persisted compiler selection",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.ToolchainClear()
		},
	})

	return cmd
}
