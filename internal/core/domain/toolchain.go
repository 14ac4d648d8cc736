package domain

import "strings"

// CompilerType identifies a compiler front end dialect family.
type CompilerType string

const (
	// MSVC is the Microsoft Visual C++ compiler (cl.exe).
	MSVC CompilerType = "msvc"
	// ClangCL is the clang front end speaking the MSVC command dialect.
	ClangCL CompilerType = "clang-cl"
	// Clang is the LLVM front end with the POSIX command dialect.
	Clang CompilerType = "clang"
	// GCC is the GNU front end with the POSIX command dialect.
	GCC CompilerType = "gcc"
)

// MSVCDialect reports whether the type speaks the cl.exe command dialect.
func (t CompilerType) MSVCDialect() bool {
	return t == MSVC || t == ClangCL
}

// ParseCompilerType maps a manifest or CLI compiler token to a type.
// Unrecognized tokens return false so the resolver can fall through.
func ParseCompilerType(token string) (CompilerType, bool) {
	switch strings.ToLower(token) {
	case "msvc", "cl", "cl.exe":
		return MSVC, true
	case "clang-cl", "clangcl":
		return ClangCL, true
	case "clang", "clang++":
		return Clang, true
	case "gcc", "g++":
		return GCC, true
	default:
		return "", false
	}
}

// DescriptorSource records how a toolchain was selected.
type DescriptorSource string

const (
	// SourceManifest means the manifest declared an explicit compiler.
	SourceManifest DescriptorSource = "manifest"
	// SourceSelection means a persisted user selection was honored.
	SourceSelection DescriptorSource = "selection"
	// SourceEnvironment means CC/CXX pointed at the compiler.
	SourceEnvironment DescriptorSource = "environment"
	// SourceProbe means the platform probe picked the compiler.
	SourceProbe DescriptorSource = "probe"
)

// Candidate is one discovered compiler installation.
type Candidate struct {
	Type    CompilerType
	Path    string
	Version string
}

// Descriptor is a resolved, immutable description of which compiler front
// end to invoke. It is constructed once per command and never mutated.
type Descriptor struct {
	Type    CompilerType
	Path    string
	Version string
	Source  DescriptorSource
}

// BuildRequest is the abstract input to dialect translation: everything a
// compile or link invocation needs, independent of compiler syntax.
type BuildRequest struct {
	// Standard is the language-standard token (e.g. "c++20").
	Standard string
	// IncludeDirs are passed as include search paths. Nonexistent
	// directories are tolerated by every supported compiler.
	IncludeDirs []string
	// CFlags are extra flags appended verbatim.
	CFlags []string
	// LinkArtifacts are absolute paths of prebuilt dependency artifacts.
	LinkArtifacts []string
	// Libs are bare system library names (-lfoo / foo.lib).
	Libs []string
	// Release enables optimized codegen.
	Release bool
}
