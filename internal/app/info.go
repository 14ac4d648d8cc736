package app

import (
	"fmt"
	"runtime"

	"github.com/caxe-dev/cx/internal/build"
	"github.com/caxe-dev/cx/internal/ui/style"
)

// Info prints the project summary: package metadata, environment, declared
// dependencies, and their locked revisions.
func (a *App) Info() error {
	manifest, err := a.manifests.Load()
	if err != nil {
		return err
	}
	lock, err := a.locks.Load()
	if err != nil {
		return err
	}

	fmt.Println(style.Bold(manifest.Package.Name) + " " + style.Dim(manifest.Package.Version))
	fmt.Println("cx " + build.Version + " on " + runtime.GOOS + "/" + runtime.GOARCH)
	fmt.Println("cache: " + a.settings.CacheDir())
	fmt.Println("dialect: " + manifest.Dialect())
	if pref := manifest.CompilerPreference(); pref != "" {
		fmt.Println("compiler: " + pref)
	}

	if manifest.Dependencies.Len() == 0 {
		fmt.Println(style.Dim("no dependencies"))
		return nil
	}
	fmt.Println("dependencies:")
	for _, name := range manifest.Dependencies.Names() {
		spec, _ := manifest.Dependencies.Get(name)
		line := "  " + name + " " + style.Dim(spec.GitURL())
		if entry, ok := lock.Get(name); ok {
			line += " " + style.Info(short(entry.Revision))
		} else {
			line += " " + style.Warn("unlocked")
		}
		fmt.Println(line)
	}
	return nil
}

func short(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}
