package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/engine/fetch"
)

// AddOptions carry the optional parts of an add invocation.
type AddOptions struct {
	// Name overrides the name derived from the URL.
	Name string
	// Ref is a branch, tag, or revision to pin.
	Ref string
	// BuildScript is run inside the clone after fetching.
	BuildScript string
	// OutputArtifact marks the dependency's build product.
	OutputArtifact string
}

// Add declares a new dependency in the manifest. The identifier may be a
// full git URL, owner/repo shorthand, or a bare registry name. The manifest
// is rewritten only after the new entry is accepted, so a duplicate name
// leaves it untouched.
func (a *App) Add(ctx context.Context, ident string, opts AddOptions) (string, error) {
	url, err := fetch.ExpandIdentifier(ctx, a.registry, ident)
	if err != nil {
		return "", err
	}
	name := opts.Name
	if name == "" {
		name = fetch.DeriveName(url)
	}

	manifest, err := a.manifests.Load()
	if err != nil {
		return "", err
	}

	if err := manifest.Dependencies.Add(name, specFor(url, opts)); err != nil {
		return "", zerr.With(err, "name", name)
	}
	if err := a.manifests.Save(manifest); err != nil {
		return "", err
	}
	a.log.Info("added " + name + " (" + url + ")")

	// Materialize immediately so the next build starts warm.
	if _, err := a.fetcher.FetchAll(ctx, manifest); err != nil {
		return name, err
	}
	return name, nil
}

// specFor picks the simple form whenever no complex field is set, keeping
// the manifest entry a single scalar line.
func specFor(url string, opts AddOptions) domain.DependencySpec {
	if opts.Ref == "" && opts.BuildScript == "" && opts.OutputArtifact == "" {
		return domain.Simple{URL: url}
	}
	return domain.Complex{
		URL:            url,
		Ref:            opts.Ref,
		BuildScript:    opts.BuildScript,
		OutputArtifact: opts.OutputArtifact,
	}
}

// Remove drops a dependency from the manifest and its pin from the lock
// file. The shared cache directory is left alone: other projects may still
// reference the same clone. Removing an undeclared name fails without
// rewriting anything.
func (a *App) Remove(_ context.Context, name string) error {
	manifest, err := a.manifests.Load()
	if err != nil {
		return err
	}
	if !manifest.Dependencies.Remove(name) {
		return zerr.With(domain.ErrDependencyNotFound, "name", name)
	}
	if err := a.manifests.Save(manifest); err != nil {
		return err
	}

	lock, err := a.locks.Load()
	if err != nil {
		return err
	}
	lock.Remove(name)
	if err := a.locks.Save(lock); err != nil {
		return err
	}
	a.log.Info("removed " + name)
	return nil
}

// Search queries the package registry.
func (a *App) Search(ctx context.Context, query string) []domain.RegistryEntry {
	return a.registry.Search(ctx, query)
}
