// Package toolchain resolves a usable compiler front end and translates
// abstract build requests into dialect-correct argument lists.
package toolchain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// vsBuildToolsHint is appended to resolution failures on Windows when the
// failure is not explained by an intentional non-MSVC preference.
const vsBuildToolsHint = "install Visual Studio Build Tools " +
	"(https://visualstudio.microsoft.com/visual-cpp-build-tools/) " +
	"and select the 'Desktop development with C++' workload"

// Resolver picks the compiler toolchain for one command invocation.
// The resulting descriptor is immutable and cached by the caller.
type Resolver struct {
	discoverer ports.Discoverer
	settings   ports.Settings
	log        ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(discoverer ports.Discoverer, settings ports.Settings, log ports.Logger) *Resolver {
	return &Resolver{discoverer: discoverer, settings: settings, log: log}
}

// Resolve produces a toolchain descriptor, trying in order: the manifest
// preference token, the persisted user selection, the conventional CC/CXX
// environment variables, and finally the platform probe. Unrecognized
// preference tokens fall through to the next source.
func (r *Resolver) Resolve(ctx context.Context, preference string) (*domain.Descriptor, error) {
	if preference != "" {
		if want, ok := domain.ParseCompilerType(preference); ok {
			return r.resolvePreferred(ctx, want, preference)
		}
		r.log.Warn("unrecognized compiler preference '" + preference + "', falling back to detection")
	}

	if ct, path, ok := r.settings.SelectedToolchain(); ok {
		if invocable(path) {
			return &domain.Descriptor{
				Type:   ct,
				Path:   path,
				Source: domain.SourceSelection,
			}, nil
		}
		r.log.Warn("persisted toolchain selection no longer exists, ignoring: " + path)
	}

	if desc := r.resolveFromEnvironment(); desc != nil {
		return desc, nil
	}

	candidates, err := r.discoverer.Discover(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "toolchain discovery failed")
	}
	if len(candidates) == 0 {
		return nil, r.notFound(nil, "")
	}
	best := candidates[0]
	return &domain.Descriptor{
		Type:    best.Type,
		Path:    best.Path,
		Version: best.Version,
		Source:  domain.SourceProbe,
	}, nil
}

func (r *Resolver) resolvePreferred(ctx context.Context, want domain.CompilerType, token string) (*domain.Descriptor, error) {
	candidates, err := r.discoverer.Discover(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "toolchain discovery failed")
	}
	for _, c := range candidates {
		if c.Type == want {
			return &domain.Descriptor{
				Type:    c.Type,
				Path:    c.Path,
				Version: c.Version,
				Source:  domain.SourceManifest,
			}, nil
		}
	}
	return nil, r.notFound(candidates, token)
}

// resolveFromEnvironment honors the conventional compiler variables. The
// dialect family is inferred from the executable name; values that cannot
// be classified are skipped, since dialect translation would be a guess.
func (r *Resolver) resolveFromEnvironment() *domain.Descriptor {
	for _, env := range []string{"CXX", "CC"} {
		value := os.Getenv(env)
		if value == "" {
			continue
		}
		ct, ok := classifyBinary(value)
		if !ok {
			r.log.Warn("cannot classify " + env + "=" + value + ", ignoring")
			continue
		}
		path, err := exec.LookPath(value)
		if err != nil {
			r.log.Warn(env + "=" + value + " is not invocable, ignoring")
			continue
		}
		return &domain.Descriptor{
			Type:   ct,
			Path:   path,
			Source: domain.SourceEnvironment,
		}
	}
	return nil
}

func (r *Resolver) notFound(candidates []domain.Candidate, preference string) error {
	err := zerr.Wrap(domain.ErrToolchainNotFound, "toolchain resolution failed")
	if preference != "" {
		err = zerr.With(err, "preference", preference)
	}
	if len(candidates) > 0 {
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = string(c.Type) + " (" + c.Path + ")"
		}
		err = zerr.With(err, "rejected_candidates", names)
	}
	if runtime.GOOS == "windows" && !intentionalNonMSVC(preference) {
		err = zerr.With(err, "hint", vsBuildToolsHint)
	}
	return err
}

// intentionalNonMSVC reports whether the user explicitly asked for an open
// front end, in which case the Visual Studio installer hint would be noise.
func intentionalNonMSVC(preference string) bool {
	ct, ok := domain.ParseCompilerType(preference)
	return ok && ct != domain.MSVC && ct != domain.ClangCL
}

func classifyBinary(value string) (domain.CompilerType, bool) {
	base := filepath.Base(value)
	if runtime.GOOS == "windows" {
		base = trimExeSuffix(base)
	}
	return domain.ParseCompilerType(base)
}

func trimExeSuffix(name string) string {
	if len(name) > 4 && filepath.Ext(name) == ".exe" {
		return name[:len(name)-4]
	}
	return name
}

func invocable(path string) bool {
	_, err := exec.LookPath(path)
	return err == nil
}
