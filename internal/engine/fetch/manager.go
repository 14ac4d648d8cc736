// Package fetch materializes manifest dependencies into the shared cache
// and derives the compile and link flags they contribute.
package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// markerName is written into a clone root once the dependency is fully
// materialized. A directory without it is an interrupted clone and gets
// removed and refetched.
const markerName = ".cx-ok"

// Flags is what fetched dependencies contribute to subsequent compiles.
type Flags struct {
	// Includes are directories passed as include paths.
	Includes []string
	// LinkArtifacts are prebuilt library files passed to the linker.
	LinkArtifacts []string
}

// Manager fetches dependencies sequentially in manifest declaration order.
// Fetching is idempotent: a completed cache directory is never touched
// again, so repeated builds do no network work.
type Manager struct {
	cloner   ports.Cloner
	executor ports.Executor
	locks    ports.LockStore
	settings ports.Settings
	reporter ports.Reporter
	log      ports.Logger
}

// NewManager creates a Manager.
func NewManager(
	cloner ports.Cloner,
	executor ports.Executor,
	locks ports.LockStore,
	settings ports.Settings,
	reporter ports.Reporter,
	log ports.Logger,
) *Manager {
	return &Manager{
		cloner:   cloner,
		executor: executor,
		locks:    locks,
		settings: settings,
		reporter: reporter,
		log:      log,
	}
}

// FetchAll ensures every manifest dependency is present in the cache and
// returns the flags they contribute. A failing dependency is reported and
// skipped; the remaining dependencies are still processed so one broken
// upstream never blocks the whole build.
func (m *Manager) FetchAll(ctx context.Context, manifest *domain.Manifest) (Flags, error) {
	var flags Flags
	if manifest.Dependencies.Len() == 0 {
		return flags, nil
	}

	lock, err := m.locks.Load()
	if err != nil {
		return flags, err
	}

	for _, name := range manifest.Dependencies.Names() {
		spec, _ := manifest.Dependencies.Get(name)
		dir := filepath.Join(m.settings.CacheDir(), name)

		updated, err := m.ensure(ctx, name, spec, dir, lock)
		if err != nil {
			m.log.Warn("skipping dependency " + name + ": " + err.Error())
			continue
		}
		// Persist after every success so a crash mid-loop keeps the
		// entries of dependencies already fetched.
		if updated {
			if err := m.locks.Save(lock); err != nil {
				return flags, err
			}
		}

		m.collect(&flags, spec, dir)
	}
	return flags, nil
}

// ensure materializes one dependency and reports whether the lockfile
// changed. A successful clone is final: the marker and lock entry are
// written before the build script runs, so a failing script costs only its
// link artifact, never a re-clone.
func (m *Manager) ensure(ctx context.Context, name string, spec domain.DependencySpec, dir string, lock *domain.Lockfile) (bool, error) {
	if complete(dir) {
		m.runBuildScript(ctx, name, spec, dir, false)
		return false, nil
	}

	// A directory without the completion marker is an interrupted fetch.
	if _, err := os.Stat(dir); err == nil {
		m.log.Warn("dependency " + name + " is incomplete, refetching")
		if err := os.RemoveAll(dir); err != nil {
			return false, zerr.Wrap(err, "cannot remove incomplete dependency")
		}
	}

	task := m.reporter.Begin("fetch " + name)
	revision, err := m.clone(ctx, spec, dir)
	if err != nil {
		task.Done(err)
		return false, err
	}
	task.Done(nil)

	if err := writeMarker(dir); err != nil {
		return false, err
	}
	lock.Set(name, spec.GitURL(), revision)

	m.runBuildScript(ctx, name, spec, dir, true)
	return true, nil
}

func (m *Manager) clone(ctx context.Context, spec domain.DependencySpec, dir string) (string, error) {
	ref := ""
	if c, ok := spec.(domain.Complex); ok {
		ref = c.Ref
	}
	return m.cloner.Clone(ctx, spec.GitURL(), ref, dir)
}

// runBuildScript runs the dependency build script when its output artifact
// is not already present. Script-only dependencies (no declared artifact)
// run exactly once, right after the clone. A failure is reported and
// swallowed: the headers of a fetched clone stay usable, only the link
// artifact goes missing.
func (m *Manager) runBuildScript(ctx context.Context, name string, spec domain.DependencySpec, dir string, fresh bool) {
	c, ok := spec.(domain.Complex)
	if !ok || c.BuildScript == "" {
		return
	}
	if c.OutputArtifact != "" {
		if _, err := os.Stat(filepath.Join(dir, c.OutputArtifact)); err == nil {
			return
		}
	} else if !fresh {
		return
	}

	task := m.reporter.Begin("build " + name)
	code, err := m.executor.RunShell(ctx, c.BuildScript, dir)
	if err != nil {
		task.Done(err)
		m.log.Warn("build script for " + name + " could not start: " + err.Error())
		return
	}
	if code != 0 {
		failure := zerr.With(zerr.Wrap(domain.ErrBuildScriptFailed, "build script failed"), "dependency", name)
		failure = zerr.With(failure, "exit_code", code)
		task.Done(failure)
		m.log.Warn("build script for " + name + " failed, continuing without its artifact")
		return
	}
	task.Done(nil)
}

// collect appends the include directories and link artifacts this dependency
// contributes. The three conventional candidates are appended whether or not
// the clone populates them; compilers tolerate missing include directories.
func (m *Manager) collect(flags *Flags, spec domain.DependencySpec, dir string) {
	flags.Includes = append(flags.Includes,
		dir,
		filepath.Join(dir, "include"),
		filepath.Join(dir, domain.SourceDir),
	)
	if c, ok := spec.(domain.Complex); ok && c.OutputArtifact != "" {
		artifact := filepath.Join(dir, c.OutputArtifact)
		if _, err := os.Stat(artifact); err == nil {
			flags.LinkArtifacts = append(flags.LinkArtifacts, artifact)
		}
	}
}

func complete(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, markerName))
	return err == nil
}

func writeMarker(dir string) error {
	return os.WriteFile(filepath.Join(dir, markerName), nil, 0o644)
}

// ExpandIdentifier turns the user-facing dependency identifier into a git
// URL: full URLs pass through, owner/repo shorthand maps to GitHub, and a
// bare name is looked up in the package registry.
func ExpandIdentifier(ctx context.Context, registry ports.Registry, ident string) (string, error) {
	if strings.Contains(ident, "://") || strings.HasPrefix(ident, "git@") {
		return ident, nil
	}
	if strings.Contains(ident, "/") {
		return "https://github.com/" + strings.TrimSuffix(ident, ".git") + ".git", nil
	}
	if url, ok := registry.Resolve(ctx, ident); ok {
		return url, nil
	}
	return "", zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "unknown library name"), "name", ident)
}

// DeriveName extracts the dependency name from its git URL.
func DeriveName(url string) string {
	base := url[strings.LastIndex(url, "/")+1:]
	base = strings.TrimSuffix(base, ".git")
	if i := strings.LastIndex(base, ":"); i >= 0 {
		base = base[i+1:]
	}
	return base
}
