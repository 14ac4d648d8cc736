package ports

import "context"

// Cloner fetches a git repository into a local directory.
type Cloner interface {
	// Clone clones url into dest. When ref is non-empty it is resolved
	// as a branch, tag, or revision and checked out. Returns the
	// resolved HEAD revision. A failed clone must not leave a partial
	// directory behind.
	Clone(ctx context.Context, url, ref, dest string) (revision string, err error)
}
