package models

import "gopkg.in/yaml.v3"

// ComposeFile is the target document: a Compose file holding the single
// converted service. Field order matters, compose files are read and
// diffed by humans, so the struct order is part of the output contract.
type ComposeFile struct {
	Version  string                    `yaml:"version,omitempty"`
	Services map[string]ComposeService `yaml:"services"`
	Networks map[string]ComposeNetwork `yaml:"networks,omitempty"`
}

// ComposeService is one service entry of a Compose file. Only the fields
// a DockerMan template can populate are modeled here.
type ComposeService struct {
	ContainerName string   `yaml:"container_name,omitempty"`
	Image         string   `yaml:"image"`
	Restart       string   `yaml:"restart,omitempty"`
	Privileged    bool     `yaml:"privileged,omitempty"`
	NetworkMode   string   `yaml:"network_mode,omitempty"`
	Networks      []string `yaml:"networks,omitempty"`
	Ports         []string `yaml:"ports,omitempty"`
	Volumes       []string `yaml:"volumes,omitempty"`
	Devices       []string `yaml:"devices,omitempty"`
	Environment   Mapping  `yaml:"environment,omitempty"`
	Labels        Mapping  `yaml:"labels,omitempty"`
	CPUSet        string   `yaml:"cpuset,omitempty"`
	Command       string   `yaml:"command,omitempty"`
}

// ComposeNetwork declares a pre-existing network the service attaches to.
type ComposeNetwork struct {
	External bool   `yaml:"external,omitempty"`
	Name     string `yaml:"name,omitempty"`
}

// Pair is a single key/value entry of an ordered mapping.
type Pair struct {
	Key   string
	Value string
}

// Mapping is an insertion-ordered string-to-string mapping. Compose
// environment and labels sections are rendered through it instead of a Go
// map so template order survives serialization.
type Mapping []Pair

// Set assigns a value. An existing key keeps its position and gets the
// new value (last occurrence wins); a new key is appended.
func (m *Mapping) Set(key, value string) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Pair{Key: key, Value: value})
}

// Get returns the value for key and whether the key is present.
func (m Mapping) Get(key string) (string, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// IsZero reports whether the mapping is empty, so yaml omitempty applies.
func (m Mapping) IsZero() bool { return len(m) == 0 }

// MarshalYAML renders the mapping as a YAML map node in insertion order.
// Values are tagged as strings so numeric-looking values stay quoted.
func (m Mapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}
