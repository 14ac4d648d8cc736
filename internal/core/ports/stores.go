package ports

import "github.com/caxe-dev/cx/internal/core/domain"

// ManifestStore loads and persists the project manifest.
type ManifestStore interface {
	Exists() bool
	Load() (*domain.Manifest, error)
	Save(m *domain.Manifest) error
}

// LockStore loads and persists the dependency lock file. Save rewrites the
// file in full, in deterministic (sorted) entry order.
type LockStore interface {
	Load() (*domain.Lockfile, error)
	Save(l *domain.Lockfile) error
}
