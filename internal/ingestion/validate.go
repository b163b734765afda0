package ingestion

import (
	"github.com/maraichr/crmgraph/internal/mapping"
	"github.com/maraichr/crmgraph/pkg/loaderr"
)

// ValidatePlan runs the consumption-time entry checks up front, without
// touching the database: everything the node and relationship stages would
// reject mid-run, rejected here first. The derived owner entry needs only a
// query, and the reserved relationship type is exempt because it is never
// consumed.
func ValidatePlan(plan *mapping.Plan) error {
	owner, ok := plan.Loading.Nodes.Get(OwnerLabel)
	if !ok {
		return loaderr.PlanEntryInvalid("node", OwnerLabel, "entry")
	}
	if owner.Query == "" {
		return loaderr.PlanEntryInvalid("node", OwnerLabel, "query")
	}

	for _, spec := range plan.Loading.Nodes {
		if spec.Label == OwnerLabel {
			continue
		}
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	for _, spec := range plan.Loading.Relationships {
		if spec.Type == ReservedRelationshipType {
			continue
		}
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return nil
}
