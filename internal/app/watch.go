package app

import (
	"context"

	"github.com/caxe-dev/cx/internal/adapters/watcher"
)

// Watch rebuilds on every change to sources, headers, or the manifest,
// after an initial build. It blocks until ctx is cancelled. Build failures
// are reported and watching continues; the next save gets another chance.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	rebuild := func() {
		if _, err := a.Build(ctx, opts); err != nil {
			a.log.Error(err)
		}
	}
	rebuild()

	w, err := watcher.New(func(paths []string) {
		a.log.Info("changes detected, rebuilding")
		rebuild()
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx, "."); err != nil {
		return err
	}
	a.log.Info("watching for changes, press ctrl-c to stop")
	<-ctx.Done()
	return nil
}
