package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no cx.yaml exists in the
	// working directory.
	ErrManifestNotFound = zerr.New("cx.yaml not found")

	// ErrToolchainNotFound is returned when no compiler candidate could
	// be discovered on the host.
	ErrToolchainNotFound = zerr.New("no usable compiler toolchain found")

	// ErrDependencyExists is returned when adding a dependency whose name
	// is already declared in the manifest.
	ErrDependencyExists = zerr.New("dependency already exists")

	// ErrDependencyNotFound is returned when removing a dependency that
	// is not declared in the manifest.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrCloneFailed is returned when a dependency clone fails.
	ErrCloneFailed = zerr.New("clone failed")

	// ErrBuildScriptFailed is returned when a dependency build script
	// exits nonzero.
	ErrBuildScriptFailed = zerr.New("dependency build script failed")

	// ErrCompileFailed is returned when one or more translation units
	// failed to compile.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrLinkFailed is returned when the final link step fails.
	ErrLinkFailed = zerr.New("link failed")

	// ErrTestsFailed is returned when the test run did not fully pass.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrNoSources is returned when no source files were discovered.
	ErrNoSources = zerr.New("no source files found")

	// ErrRunFailed is returned when the built artifact exits nonzero.
	ErrRunFailed = zerr.New("program exited with a nonzero status")
)
