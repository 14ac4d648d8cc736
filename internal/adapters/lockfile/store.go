// Package lockfile implements the cx.lock dependency lock store.
package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

var _ ports.LockStore = (*Store)(nil)

// entryDTO is the serialized form of one lock entry.
type entryDTO struct {
	Git string `yaml:"git"`
	Rev string `yaml:"rev"`
}

// Store implements ports.LockStore backed by a flat YAML file next to the
// manifest. Save rewrites the file in full, entries sorted by name.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a lock store for the project in dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, domain.LockFileName)}
}

// Load reads the lock file, returning an empty lockfile when absent.
func (s *Store) Load() (*domain.Lockfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path) //nolint:gosec // path derives from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(), nil
		}
		return nil, zerr.Wrap(err, "failed to read lock file")
	}

	entries := make(map[string]entryDTO)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock file"), "path", s.path)
	}

	lock := domain.NewLockfile()
	for name, e := range entries {
		lock.Set(name, e.Git, e.Rev)
	}
	return lock, nil
}

// Save rewrites the lock file with entries sorted by name.
func (s *Store) Save(lock *domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Build the mapping node by hand so entry order is deterministic.
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range lock.Names() {
		entry, _ := lock.Get(name)

		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		valNode := &yaml.Node{}
		if err := valNode.Encode(entryDTO{Git: entry.URL, Rev: entry.Revision}); err != nil {
			return zerr.Wrap(err, "failed to encode lock entry")
		}
		root.Content = append(root.Content, keyNode, valNode)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lock file")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // project file
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", s.path)
	}
	return nil
}
