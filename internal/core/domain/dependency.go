package domain

// DependencySpec is the tagged union describing how a dependency is fetched.
// The two variants have materially different processing rules, so they are
// kept as distinct types rather than one record with optional fields.
type DependencySpec interface {
	// GitURL returns the git URL to clone.
	GitURL() string

	sealed()
}

// Simple is a bare git URL: clone only.
type Simple struct {
	URL string
}

// GitURL implements DependencySpec.
func (s Simple) GitURL() string { return s.URL }

func (Simple) sealed() {}

// Complex is a dependency with an optional ref to check out, an optional
// build script run inside the clone, and an optional output artifact whose
// presence marks the dependency as already built.
type Complex struct {
	URL string
	// Ref is a branch, tag, or revision checked out after cloning.
	Ref string
	// BuildScript is dispatched through the platform shell with the
	// clone root as working directory.
	BuildScript string
	// OutputArtifact is a path relative to the clone root. When set, its
	// existence both skips the build script and contributes the artifact
	// to the link flags.
	OutputArtifact string
}

// GitURL implements DependencySpec.
func (c Complex) GitURL() string { return c.URL }

func (Complex) sealed() {}

// DependencySet is an ordered mapping from logical dependency name to spec.
// Iteration order is manifest declaration order, which the fetch loop relies
// on for deterministic lock updates and reporting.
type DependencySet struct {
	names []string
	specs map[string]DependencySpec
}

// Len returns the number of dependencies.
func (d *DependencySet) Len() int { return len(d.names) }

// Names returns the dependency names in declaration order.
func (d *DependencySet) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Get returns the spec for name.
func (d *DependencySet) Get(name string) (DependencySpec, bool) {
	spec, ok := d.specs[name]
	return spec, ok
}

// Add appends a dependency, rejecting duplicate names.
func (d *DependencySet) Add(name string, spec DependencySpec) error {
	if _, ok := d.specs[name]; ok {
		return ErrDependencyExists
	}
	if d.specs == nil {
		d.specs = make(map[string]DependencySpec)
	}
	d.names = append(d.names, name)
	d.specs[name] = spec
	return nil
}

// Remove deletes a dependency by name, reporting whether it was present.
func (d *DependencySet) Remove(name string) bool {
	if _, ok := d.specs[name]; !ok {
		return false
	}
	delete(d.specs, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	return true
}
