// Package commands implements the CLI commands for the cx project manager.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/caxe-dev/cx/internal/app"
	"github.com/caxe-dev/cx/internal/build"
	"github.com/caxe-dev/cx/internal/core/domain"
)

// CLI wraps the cobra command tree.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application is the surface of the app layer the CLI depends on.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) (string, error)
	Run(ctx context.Context, opts app.BuildOptions, args []string) error
	Test(ctx context.Context) (*domain.TestSummary, error)
	Add(ctx context.Context, ident string, opts app.AddOptions) (string, error)
	Remove(ctx context.Context, name string) error
	Search(ctx context.Context, query string) []domain.RegistryEntry
	Clean() error
	CachePath() string
	CacheList() ([]string, error)
	CacheClean(name string) error
	ToolchainList(ctx context.Context) ([]domain.Candidate, error)
	ToolchainSelect(ctx context.Context, token string) (domain.Candidate, error)
	ToolchainClear() error
	Fmt(ctx context.Context) error
	Check(ctx context.Context) error
	Doc(ctx context.Context) error
	Info() error
	Watch(ctx context.Context, opts app.BuildOptions) error
}

// New creates a CLI instance bound to a.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cx",
		Short:         "A project manager for C and C++",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(
		c.newBuildCmd(),
		c.newRunCmd(),
		c.newTestCmd(),
		c.newAddCmd(),
		c.newRemoveCmd(),
		c.newSearchCmd(),
		c.newCleanCmd(),
		c.newCacheCmd(),
		c.newToolchainCmd(),
		c.newFmtCmd(),
		c.newCheckCmd(),
		c.newDocCmd(),
		c.newInfoCmd(),
		c.newWatchCmd(),
	)
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
