package toolchain

import "github.com/caxe-dev/cx/internal/core/domain"

// Dialect translation: every compiler invocation in the tool is built here,
// so no other code path can hand an MSVC flag to a POSIX front end or vice
// versa.
//
//	aspect           MSVC-style        POSIX-style
//	banner           /nologo           —
//	exceptions       /EHsc             —
//	output           /Fe<path>         -o <path>
//	standard         /std:<std>        -std=<std>
//	include          /I<path>          -I<path>
//	link section     /link before libs —
//	library          <lib>.lib         -l<lib>

// UnitArgs builds the argument list that compiles and links a single source
// file straight into an executable. Used for test binaries.
func UnitArgs(d *domain.Descriptor, source, output string, req domain.BuildRequest) []string {
	if d.Type.MSVCDialect() {
		args := []string{"/nologo", "/EHsc", source, "/Fe" + output}
		args = append(args, msvcCommon(req)...)
		args = append(args, msvcLinkSection(req)...)
		return args
	}
	args := []string{source, "-o", output}
	args = append(args, posixCommon(req)...)
	args = append(args, posixLinkSection(req)...)
	return args
}

// CheckArgs builds the argument list for a syntax-only pass: full
// diagnostics, no artifacts.
func CheckArgs(d *domain.Descriptor, source string, req domain.BuildRequest) []string {
	if d.Type.MSVCDialect() {
		args := []string{"/nologo", "/EHsc", "/Zs", source}
		return append(args, msvcCommon(req)...)
	}
	args := []string{"-fsyntax-only", source}
	return append(args, posixCommon(req)...)
}

// ObjectArgs builds the argument list that compiles a single source file to
// an object file.
func ObjectArgs(d *domain.Descriptor, source, object string, req domain.BuildRequest) []string {
	if d.Type.MSVCDialect() {
		args := []string{"/nologo", "/EHsc", "/c", source, "/Fo" + object}
		return append(args, msvcCommon(req)...)
	}
	args := []string{"-c", source, "-o", object}
	return append(args, posixCommon(req)...)
}

// LinkArgs builds the argument list that links object files into the final
// executable.
func LinkArgs(d *domain.Descriptor, objects []string, output string, req domain.BuildRequest) []string {
	if d.Type.MSVCDialect() {
		args := []string{"/nologo"}
		args = append(args, objects...)
		args = append(args, "/Fe"+output)
		args = append(args, msvcLinkSection(req)...)
		return args
	}
	args := append([]string{}, objects...)
	args = append(args, "-o", output)
	args = append(args, posixLinkSection(req)...)
	return args
}

func msvcCommon(req domain.BuildRequest) []string {
	args := []string{"/std:" + req.Standard}
	for _, dir := range req.IncludeDirs {
		args = append(args, "/I"+dir)
	}
	args = append(args, req.CFlags...)
	if req.Release {
		args = append(args, "/O2", "/DNDEBUG")
	}
	return args
}

func msvcLinkSection(req domain.BuildRequest) []string {
	if len(req.LinkArtifacts) == 0 && len(req.Libs) == 0 {
		return nil
	}
	args := []string{"/link"}
	args = append(args, req.LinkArtifacts...)
	for _, lib := range req.Libs {
		args = append(args, lib+".lib")
	}
	return args
}

func posixCommon(req domain.BuildRequest) []string {
	args := []string{"-std=" + req.Standard}
	for _, dir := range req.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, req.CFlags...)
	if req.Release {
		args = append(args, "-O2", "-DNDEBUG")
	} else {
		args = append(args, "-g")
	}
	return args
}

func posixLinkSection(req domain.BuildRequest) []string {
	args := append([]string{}, req.LinkArtifacts...)
	for _, lib := range req.Libs {
		args = append(args, "-l"+lib)
	}
	return args
}
