package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// ToolchainList enumerates the compiler installations found on this host.
func (a *App) ToolchainList(ctx context.Context) ([]domain.Candidate, error) {
	return a.discoverer.Discover(ctx)
}

// ToolchainSelect persists token's compiler as the default for future
// commands. The compiler must actually be installed.
func (a *App) ToolchainSelect(ctx context.Context, token string) (domain.Candidate, error) {
	want, ok := domain.ParseCompilerType(token)
	if !ok {
		return domain.Candidate{}, zerr.With(zerr.New("unknown compiler"), "token", token)
	}
	candidates, err := a.discoverer.Discover(ctx)
	if err != nil {
		return domain.Candidate{}, err
	}
	for _, c := range candidates {
		if c.Type == want {
			if err := a.settings.SetSelectedToolchain(c.Type, c.Path); err != nil {
				return domain.Candidate{}, err
			}
			a.log.Info("selected " + string(c.Type) + " (" + c.Path + ")")
			return c, nil
		}
	}
	return domain.Candidate{}, zerr.With(domain.ErrToolchainNotFound, "requested", token)
}

// ToolchainClear removes the persisted selection, restoring automatic
// resolution.
func (a *App) ToolchainClear() error {
	return a.settings.ClearSelectedToolchain()
}
