package app

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// Clean removes the build directory. Dependencies and lock file are kept.
func (a *App) Clean() error {
	if err := os.RemoveAll(domain.BuildDir); err != nil {
		return zerr.Wrap(err, "cannot remove build directory")
	}
	a.log.Info("removed " + domain.BuildDir)
	return nil
}

// CachePath returns the dependency cache root.
func (a *App) CachePath() string {
	return a.settings.CacheDir()
}

// CacheList returns the names of all cached dependencies, sorted.
func (a *App) CacheList() ([]string, error) {
	entries, err := os.ReadDir(a.settings.CacheDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "cannot read cache directory")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CacheClean removes cached dependencies: all of them, or just the named
// one.
func (a *App) CacheClean(name string) error {
	root := a.settings.CacheDir()
	target := root
	if name != "" {
		target = filepath.Join(root, name)
		if _, err := os.Stat(target); err != nil {
			return zerr.With(domain.ErrDependencyNotFound, "name", name)
		}
	}
	if err := os.RemoveAll(target); err != nil {
		return zerr.Wrap(err, "cannot remove cache entry")
	}
	a.log.Info("removed " + target)
	return nil
}
