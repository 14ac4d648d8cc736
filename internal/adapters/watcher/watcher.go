package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// skipDirs are never watched: generated output and VCS metadata produce
// event storms that would retrigger the very builds they come from.
var skipDirs = map[string]bool{
	".git":          true,
	domain.BuildDir: true,
}

// debounceWindow is how long the tree must stay quiet before a rebuild.
const debounceWindow = 300 * time.Millisecond

// relevant reports whether a change to path should trigger a rebuild:
// sources, headers, and the manifest itself.
func relevant(path string) bool {
	if filepath.Base(path) == domain.ManifestFileName {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp":
		return true
	}
	return false
}

// Watcher observes a project tree and invokes the rebuild callback after
// each quiet window.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
}

// New creates a Watcher that calls onChange with the coalesced set of
// changed paths.
func New(onChange func(paths []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		debouncer: NewDebouncer(debounceWindow, onChange),
	}, nil
}

// Start watches root recursively until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if err := w.addTree(root); err != nil {
		return err
	}
	go w.loop(ctx)
	return nil
}

// Stop releases the underlying OS watches.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil //nolint:nilerr
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] {
			return fs.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	// New directories join the watch set so nested saves are seen.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipDirs[info.Name()] {
			_ = w.addTree(event.Name)
			return
		}
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !relevant(event.Name) {
		return
	}
	w.debouncer.Add(event.Name)
}
