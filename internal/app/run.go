package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// Run builds the project and executes the produced binary with args passed
// through verbatim. The program owns the terminal while it runs; a nonzero
// exit becomes ErrRunFailed so the CLI can mirror the status code.
func (a *App) Run(ctx context.Context, opts BuildOptions, args []string) error {
	binary, err := a.Build(ctx, opts)
	if err != nil {
		return err
	}

	code, err := a.executor.RunStreaming(ctx, ports.Command{Path: binary, Args: args})
	if err != nil {
		return zerr.Wrap(err, "cannot start "+binary)
	}
	if code != 0 {
		return zerr.With(domain.ErrRunFailed, "exit_code", code)
	}
	return nil
}
