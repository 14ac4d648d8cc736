package config

import (
	"gopkg.in/yaml.v3"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// manifestDTO mirrors the cx.yaml document structure.
type manifestDTO struct {
	Package      packageDTO    `yaml:"package"`
	Dependencies dependencyMap `yaml:"dependencies,omitempty"`
	Build        *buildDTO     `yaml:"build,omitempty"`
	Scripts      *scriptsDTO   `yaml:"scripts,omitempty"`
	Test         *testDTO      `yaml:"test,omitempty"`
}

type packageDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Dialect string `yaml:"dialect,omitempty"`
}

type buildDTO struct {
	Compiler string   `yaml:"compiler,omitempty"`
	CFlags   []string `yaml:"cflags,omitempty"`
	Libs     []string `yaml:"libs,omitempty"`
}

type scriptsDTO struct {
	PreBuild  string `yaml:"preBuild,omitempty"`
	PostBuild string `yaml:"postBuild,omitempty"`
}

type testDTO struct {
	Dir string `yaml:"dir,omitempty"`
}

// complexDTO is the mapping form of a dependency value.
type complexDTO struct {
	Git    string `yaml:"git"`
	Branch string `yaml:"branch,omitempty"`
	Build  string `yaml:"build,omitempty"`
	Output string `yaml:"output,omitempty"`
}

type dependencyEntry struct {
	name string
	spec domain.DependencySpec
}

// dependencyMap preserves manifest declaration order. yaml.v3 decodes plain
// maps unordered, so the mapping node is walked by hand.
type dependencyMap struct {
	entries []dependencyEntry
}

// UnmarshalYAML decodes the dependencies mapping, accepting either a bare
// URL scalar or the {git, branch?, build?, output?} form per entry.
func (d *dependencyMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errMalformedDependencies(value)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		name := keyNode.Value

		var spec domain.DependencySpec
		switch valNode.Kind {
		case yaml.ScalarNode:
			spec = domain.Simple{URL: valNode.Value}
		case yaml.MappingNode:
			var dto complexDTO
			if err := valNode.Decode(&dto); err != nil {
				return err
			}
			spec = domain.Complex{
				URL:            dto.Git,
				Ref:            dto.Branch,
				BuildScript:    dto.Build,
				OutputArtifact: dto.Output,
			}
		default:
			return errMalformedDependencies(valNode)
		}

		d.entries = append(d.entries, dependencyEntry{name: name, spec: spec})
	}
	return nil
}

// MarshalYAML emits the dependencies mapping in declaration order, keeping
// the bare-URL form for Simple specs.
func (d dependencyMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range d.entries {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: e.name}

		valNode := &yaml.Node{}
		switch spec := e.spec.(type) {
		case domain.Simple:
			valNode.Kind = yaml.ScalarNode
			valNode.Value = spec.URL
		case domain.Complex:
			if err := valNode.Encode(complexDTO{
				Git:    spec.URL,
				Branch: spec.Ref,
				Build:  spec.BuildScript,
				Output: spec.OutputArtifact,
			}); err != nil {
				return nil, err
			}
		}

		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func (d *dependencyMap) toDomain() (domain.DependencySet, error) {
	var set domain.DependencySet
	for _, e := range d.entries {
		if err := set.Add(e.name, e.spec); err != nil {
			return domain.DependencySet{}, err
		}
	}
	return set, nil
}

func dependencyMapFrom(set *domain.DependencySet) dependencyMap {
	var d dependencyMap
	for _, name := range set.Names() {
		spec, _ := set.Get(name)
		d.entries = append(d.entries, dependencyEntry{name: name, spec: spec})
	}
	return d
}
