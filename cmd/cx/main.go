// Package main is the entry point for the cx project manager.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/cmd/cx/commands"
	"github.com/caxe-dev/cx/internal/app"
	"github.com/caxe-dev/cx/internal/core/domain"
	_ "github.com/caxe-dev/cx/internal/wiring"
)

// ComponentProvider returns the wired application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// No logger yet when initialization fails.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer func() { _ = components.Reporter.Close() }()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrTestsFailed),
			errors.Is(err, domain.ErrCompileFailed),
			errors.Is(err, domain.ErrLinkFailed),
			errors.Is(err, domain.ErrRunFailed):
			// Already reported in detail by the reporter.
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		default:
			_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		}
		return 1
	}
	return 0
}
