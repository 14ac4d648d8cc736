// Package config provides the cx.yaml manifest store.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore backed by a cx.yaml file.
type Store struct {
	path string
}

// NewStore creates a manifest store for the project in dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, domain.ManifestFileName)}
}

// Path returns the manifest file path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the manifest file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and parses the manifest.
func (s *Store) Load() (*domain.Manifest, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path derives from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrManifestNotFound
		}
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", s.path)
	}

	deps, err := dto.Dependencies.toDomain()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid dependencies section"), "path", s.path)
	}

	m := &domain.Manifest{
		Package: domain.Package{
			Name:    dto.Package.Name,
			Version: dto.Package.Version,
			Dialect: dto.Package.Dialect,
		},
		Dependencies: deps,
	}
	if dto.Build != nil {
		m.Build = &domain.BuildSettings{
			Compiler: dto.Build.Compiler,
			CFlags:   dto.Build.CFlags,
			Libs:     dto.Build.Libs,
		}
	}
	if dto.Scripts != nil {
		m.Scripts = &domain.Scripts{
			PreBuild:  dto.Scripts.PreBuild,
			PostBuild: dto.Scripts.PostBuild,
		}
	}
	if dto.Test != nil {
		m.Test = &domain.TestSettings{SourceDir: dto.Test.Dir}
	}
	return m, nil
}

// Save rewrites the manifest file from the given manifest.
func (s *Store) Save(m *domain.Manifest) error {
	dto := manifestDTO{
		Package: packageDTO{
			Name:    m.Package.Name,
			Version: m.Package.Version,
			Dialect: m.Package.Dialect,
		},
		Dependencies: dependencyMapFrom(&m.Dependencies),
	}
	if m.Build != nil {
		dto.Build = &buildDTO{
			Compiler: m.Build.Compiler,
			CFlags:   m.Build.CFlags,
			Libs:     m.Build.Libs,
		}
	}
	if m.Scripts != nil {
		dto.Scripts = &scriptsDTO{
			PreBuild:  m.Scripts.PreBuild,
			PostBuild: m.Scripts.PostBuild,
		}
	}
	if m.Test != nil {
		dto.Test = &testDTO{Dir: m.Test.SourceDir}
	}

	data, err := yaml.Marshal(&dto)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // project file
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", s.path)
	}
	return nil
}

func errMalformedDependencies(node *yaml.Node) error {
	return zerr.With(zerr.New("malformed dependencies section"), "line", node.Line)
}
