package domain

import "sort"

// LockEntry pins a dependency to the exact git URL and revision that was
// last successfully fetched.
type LockEntry struct {
	Name     string
	URL      string
	Revision string
}

// Lockfile is the in-memory form of cx.lock: at most one entry per
// dependency name, serialized in sorted name order so rewrites are
// deterministic.
type Lockfile struct {
	entries map[string]LockEntry
}

// NewLockfile returns an empty lockfile.
func NewLockfile() *Lockfile {
	return &Lockfile{entries: make(map[string]LockEntry)}
}

// Get returns the entry for name.
func (l *Lockfile) Get(name string) (LockEntry, bool) {
	e, ok := l.entries[name]
	return e, ok
}

// Set inserts or replaces the entry for name.
func (l *Lockfile) Set(name, url, revision string) {
	if l.entries == nil {
		l.entries = make(map[string]LockEntry)
	}
	l.entries[name] = LockEntry{Name: name, URL: url, Revision: revision}
}

// Remove deletes the entry for name, if present.
func (l *Lockfile) Remove(name string) {
	delete(l.entries, name)
}

// Len returns the number of entries.
func (l *Lockfile) Len() int { return len(l.entries) }

// Names returns all entry names in sorted order.
func (l *Lockfile) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
