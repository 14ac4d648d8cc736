// Package domain contains the core types of the cx project manager.
package domain

// DefaultDialect is the language standard assumed when the manifest
// omits package.dialect.
const DefaultDialect = "c++20"

// Well-known project layout names.
const (
	ManifestFileName = "cx.yaml"
	LockFileName     = "cx.lock"
	SourceDir        = "src"
	BuildDir         = "build"
	TestBuildDir     = "build/tests"
	DefaultTestDir   = "tests"
)

// Manifest is the parsed project configuration (cx.yaml).
// It is loaded once per command and passed into every component; nothing
// mutates it except the add/remove operations, which persist the change
// through the manifest store.
type Manifest struct {
	Package      Package
	Dependencies DependencySet
	Build        *BuildSettings
	Scripts      *Scripts
	Test         *TestSettings
}

// Package identifies the project.
type Package struct {
	Name    string
	Version string
	// Dialect is the language-standard token passed to the compiler
	// (e.g. "c++20", "c17"). Defaults to DefaultDialect.
	Dialect string
}

// BuildSettings carries the optional build section of the manifest.
type BuildSettings struct {
	// Compiler is a preference token (msvc, clang-cl, clang, gcc, ...).
	// Unrecognized tokens are ignored by the resolver.
	Compiler string
	CFlags   []string
	Libs     []string
}

// Scripts holds the optional pre/post build hooks.
type Scripts struct {
	PreBuild  string
	PostBuild string
}

// TestSettings configures test discovery.
type TestSettings struct {
	// SourceDir overrides the default "tests" directory.
	SourceDir string
}

// Dialect returns the effective language standard for the project.
func (m *Manifest) Dialect() string {
	if m.Package.Dialect == "" {
		return DefaultDialect
	}
	return m.Package.Dialect
}

// TestDir returns the configured test source directory.
func (m *Manifest) TestDir() string {
	if m.Test != nil && m.Test.SourceDir != "" {
		return m.Test.SourceDir
	}
	return DefaultTestDir
}

// CFlags returns the extra compiler flags declared in the manifest.
func (m *Manifest) CFlags() []string {
	if m.Build == nil {
		return nil
	}
	return m.Build.CFlags
}

// Libs returns the system libraries declared in the manifest.
func (m *Manifest) Libs() []string {
	if m.Build == nil {
		return nil
	}
	return m.Build.Libs
}

// CompilerPreference returns the manifest compiler token, if any.
func (m *Manifest) CompilerPreference() string {
	if m.Build == nil {
		return ""
	}
	return m.Build.Compiler
}
