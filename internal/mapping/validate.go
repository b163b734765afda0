package mapping

import "github.com/maraichr/crmgraph/pkg/loaderr"

// Validate checks that the entry carries everything the generic CSV loader
// consumes. Nothing is defaulted: a missing key is an error at the moment
// the entry is used.
func (s NodeSpec) Validate() error {
	return validateEntry("node", s.Label, s.SourceFile, "source_file", s.FieldMappings, s.Query)
}

// Validate mirrors NodeSpec.Validate for relationship entries.
func (s RelationshipSpec) Validate() error {
	return validateEntry("relationship", s.Type, s.SourceData, "source_data", s.FieldMappings, s.Query)
}

func validateEntry(kind, name, source, sourceKey string, mappings map[string]string, query string) error {
	if source == "" {
		return loaderr.PlanEntryInvalid(kind, name, sourceKey)
	}
	if len(mappings) == 0 {
		return loaderr.PlanEntryInvalid(kind, name, "field_mappings")
	}
	if query == "" {
		return loaderr.PlanEntryInvalid(kind, name, "query")
	}
	return nil
}
