// Package fs discovers the compilable sources of a project tree.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sourceExts are the recognized translation unit extensions. Everything else
// in the tree is ignored.
var sourceExts = map[string]bool{
	".c":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
}

// SourceFile is one discovered translation unit.
type SourceFile struct {
	Path string
	// CPP distinguishes C++ sources from plain .c files.
	CPP bool
}

// DiscoverSources walks root recursively and returns all source files in
// deterministic lexical order. A missing root yields an empty slice, not an
// error.
func DiscoverSources(root string) ([]SourceFile, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, nil
	}

	var found []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !sourceExts[ext] {
			return nil
		}
		found = append(found, SourceFile{Path: path, CPP: ext != ".c"})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, nil
}

// Stem returns the file name without directory or extension, used to derive
// output binary names.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
