package toolchain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// NewDiscoverer returns the platform discovery variant, chosen once at
// startup: Visual Studio aware enumeration on Windows, a plain PATH probe
// everywhere else.
func NewDiscoverer(executor ports.Executor) ports.Discoverer {
	if runtime.GOOS == "windows" {
		return &vsDiscoverer{executor: executor, lookPath: exec.LookPath}
	}
	return &pathDiscoverer{executor: executor, lookPath: exec.LookPath}
}

// pathDiscoverer probes the search path for well-known front ends, in fixed
// preference order, and keeps the first hit per compiler family.
type pathDiscoverer struct {
	executor ports.Executor
	lookPath func(string) (string, error)
}

var pathProbes = []struct {
	binary string
	ctype  domain.CompilerType
}{
	{"clang++", domain.Clang},
	{"g++", domain.GCC},
	{"clang", domain.Clang},
	{"gcc", domain.GCC},
}

func (d *pathDiscoverer) Discover(ctx context.Context) ([]domain.Candidate, error) {
	var found []domain.Candidate
	seen := make(map[domain.CompilerType]bool)

	for _, probe := range pathProbes {
		if seen[probe.ctype] {
			continue
		}
		path, err := d.lookPath(probe.binary)
		if err != nil {
			continue
		}
		seen[probe.ctype] = true
		found = append(found, domain.Candidate{
			Type:    probe.ctype,
			Path:    path,
			Version: d.probeVersion(ctx, path),
		})
	}
	return found, nil
}

func (d *pathDiscoverer) probeVersion(ctx context.Context, path string) string {
	res, err := d.executor.Run(ctx, ports.Command{Path: path, Args: []string{"--version"}})
	if err != nil || res.ExitCode != 0 {
		return ""
	}
	return firstLine(res.Stdout)
}

// vsDiscoverer enumerates compiler installations on Windows, where MSVC has
// no stable executable location: cl.exe is located through vswhere, then
// clang-cl and the open front ends are probed on the search path. Candidates
// come back in the fixed platform preference order
// MSVC > clang-cl > clang > gcc.
type vsDiscoverer struct {
	executor ports.Executor
	lookPath func(string) (string, error)
}

func (d *vsDiscoverer) Discover(ctx context.Context) ([]domain.Candidate, error) {
	var found []domain.Candidate

	if cl := d.findMSVC(ctx); cl != "" {
		found = append(found, domain.Candidate{
			Type:    domain.MSVC,
			Path:    cl,
			Version: d.clVersion(ctx, cl),
		})
	}

	probes := []struct {
		binary string
		ctype  domain.CompilerType
	}{
		{"clang-cl", domain.ClangCL},
		{"clang++", domain.Clang},
		{"g++", domain.GCC},
	}
	for _, probe := range probes {
		path, err := d.lookPath(probe.binary)
		if err != nil {
			continue
		}
		res, runErr := d.executor.Run(ctx, ports.Command{Path: path, Args: []string{"--version"}})
		version := ""
		if runErr == nil && res.ExitCode == 0 {
			version = firstLine(res.Stdout)
		}
		found = append(found, domain.Candidate{Type: probe.ctype, Path: path, Version: version})
	}
	return found, nil
}

// findMSVC asks vswhere for the newest installed VC toolset.
func (d *vsDiscoverer) findMSVC(ctx context.Context) string {
	programFiles := os.Getenv("ProgramFiles(x86)")
	if programFiles == "" {
		programFiles = `C:\Program Files (x86)`
	}
	vswhere := filepath.Join(programFiles, "Microsoft Visual Studio", "Installer", "vswhere.exe")
	if _, err := os.Stat(vswhere); err != nil {
		return ""
	}

	res, err := d.executor.Run(ctx, ports.Command{
		Path: vswhere,
		Args: []string{
			"-latest",
			"-products", "*",
			"-requires", "Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
			"-find", `VC\Tools\MSVC\**\bin\Hostx64\x64\cl.exe`,
		},
	})
	if err != nil || res.ExitCode != 0 {
		return ""
	}
	return firstLine(res.Stdout)
}

// clVersion extracts the banner line; cl.exe prints it to stderr.
func (d *vsDiscoverer) clVersion(ctx context.Context, cl string) string {
	res, err := d.executor.Run(ctx, ports.Command{Path: cl})
	if err != nil {
		return ""
	}
	return firstLine(res.Stderr)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
