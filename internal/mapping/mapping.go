// Package mapping loads the declarative ingest plan: the constraint and
// index statements run before any data, then one entry per node and
// relationship type naming the source file, the destination-field to
// CSV-column mapping, and the parameterized write statement.
package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maraichr/crmgraph/pkg/loaderr"
)

// Plan is the parsed ingest configuration.
type Plan struct {
	Init    InitQueries    `yaml:"initializing_queries"`
	Loading LoadingQueries `yaml:"loading_queries"`
}

// InitQueries carries the one-time schema statements.
type InitQueries struct {
	Constraints []string `yaml:"constraints"`
	Indexes     []string `yaml:"indexes"`
}

// LoadingQueries groups the per-type load entries. Both sections keep the
// declaration order of the YAML document; load order is plan order.
type LoadingQueries struct {
	Nodes         NodeSpecs         `yaml:"nodes"`
	Relationships RelationshipSpecs `yaml:"relationships"`
}

// NodeSpec describes how one node type is loaded.
type NodeSpec struct {
	Label         string            `yaml:"-"`
	SourceFile    string            `yaml:"source_file"`
	FieldMappings map[string]string `yaml:"field_mappings"`
	Query         string            `yaml:"query"`
}

// RelationshipSpec describes how one relationship type is loaded.
type RelationshipSpec struct {
	Type          string            `yaml:"-"`
	SourceData    string            `yaml:"source_data"`
	FieldMappings map[string]string `yaml:"field_mappings"`
	Query         string            `yaml:"query"`
}

// NodeSpecs is an ordered list of node entries, keyed by label in the plan.
type NodeSpecs []NodeSpec

// RelationshipSpecs is an ordered list of relationship entries, keyed by type.
type RelationshipSpecs []RelationshipSpec

// UnmarshalYAML decodes the nodes mapping while preserving document order.
// A plain map[string]NodeSpec would shuffle entries; the node's Content
// slice holds key/value pairs in the order they were written.
func (s *NodeSpecs) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*s = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("nodes: expected a mapping, got %s", kindName(value.Kind))
	}
	out := make(NodeSpecs, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var spec NodeSpec
		if err := value.Content[i+1].Decode(&spec); err != nil {
			return fmt.Errorf("node %s: %w", value.Content[i].Value, err)
		}
		spec.Label = value.Content[i].Value
		out = append(out, spec)
	}
	*s = out
	return nil
}

// UnmarshalYAML mirrors NodeSpecs for the relationships mapping.
func (s *RelationshipSpecs) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*s = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("relationships: expected a mapping, got %s", kindName(value.Kind))
	}
	out := make(RelationshipSpecs, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var spec RelationshipSpec
		if err := value.Content[i+1].Decode(&spec); err != nil {
			return fmt.Errorf("relationship %s: %w", value.Content[i].Value, err)
		}
		spec.Type = value.Content[i].Value
		out = append(out, spec)
	}
	*s = out
	return nil
}

// Get returns the entry for label and whether it exists.
func (s NodeSpecs) Get(label string) (NodeSpec, bool) {
	for _, spec := range s {
		if spec.Label == label {
			return spec, true
		}
	}
	return NodeSpec{}, false
}

// Get returns the entry for relType and whether it exists.
func (s RelationshipSpecs) Get(relType string) (RelationshipSpec, bool) {
	for _, spec := range s {
		if spec.Type == relType {
			return spec, true
		}
	}
	return RelationshipSpec{}, false
}

// Load reads and parses the plan file. A missing file and a file that is not
// a YAML mapping of the expected shape are distinct errors so the operator
// knows whether to fix a path or the file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, loaderr.ConfigNotFound(path)
		}
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, loaderr.ConfigInvalid(path, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, loaderr.ConfigInvalid(path, errors.New("document is not a mapping"))
	}

	var plan Plan
	if err := doc.Decode(&plan); err != nil {
		return nil, loaderr.ConfigInvalid(path, err)
	}
	return &plan, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
