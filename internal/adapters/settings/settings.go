// Package settings implements the user-level persisted configuration using
// viper: cache root, persisted toolchain selection, progress renderer.
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

var _ ports.Settings = (*Settings)(nil)

const settingsFile = "settings.yaml"

// Settings reads and writes the user settings file. Environment variables
// with the CX_ prefix override file values (e.g. CX_CACHE_DIR).
type Settings struct {
	v    *viper.Viper
	path string
}

// New opens the settings under the user's config directory
// (~/.config/cx/settings.yaml).
func New() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, "could not determine home directory")
	}
	return NewAt(filepath.Join(home, ".config", "cx"), filepath.Join(home, ".cx", "cache"))
}

// NewAt opens the settings file in dir with the given default cache root.
// Used directly by tests.
func NewAt(dir, defaultCacheDir string) (*Settings, error) {
	path := filepath.Join(dir, settingsFile)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("cache_dir", defaultCacheDir)
	v.SetDefault("progress", "plain")
	v.SetEnvPrefix("CX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read settings"), "path", path)
		}
	}

	return &Settings{v: v, path: path}, nil
}

// CacheDir returns the dependency cache root.
func (s *Settings) CacheDir() string {
	return s.v.GetString("cache_dir")
}

// Progress returns the configured progress renderer.
func (s *Settings) Progress() string {
	return s.v.GetString("progress")
}

// SelectedToolchain returns the persisted toolchain selection, if any.
func (s *Settings) SelectedToolchain() (domain.CompilerType, string, bool) {
	token := s.v.GetString("toolchain.compiler")
	path := s.v.GetString("toolchain.path")
	if token == "" || path == "" {
		return "", "", false
	}
	t, ok := domain.ParseCompilerType(token)
	if !ok {
		return "", "", false
	}
	return t, path, true
}

// SetSelectedToolchain persists an explicit toolchain selection.
func (s *Settings) SetSelectedToolchain(t domain.CompilerType, path string) error {
	s.v.Set("toolchain.compiler", string(t))
	s.v.Set("toolchain.path", path)
	return s.write()
}

// ClearSelectedToolchain removes the persisted selection.
func (s *Settings) ClearSelectedToolchain() error {
	s.v.Set("toolchain.compiler", "")
	s.v.Set("toolchain.path", "")
	return s.write()
}

func (s *Settings) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create settings directory")
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write settings"), "path", s.path)
	}
	return nil
}
