package models

// Record is one unit of work for a parameterized load statement: destination
// field name to converted value. Values are strings, int64s, normalized date
// strings, or nil when the source cell was empty. The alias keeps records
// directly bindable as driver parameters.
type Record = map[string]any

// CaseOwner is the one entity type derived from another export instead of
// loaded from a file of its own. Identity is the slug of the display name,
// so the same owner written twice lands on the same node.
type CaseOwner struct {
	OwnerID string
	Name    string
}

// Record shapes the owner for the load statement.
func (o CaseOwner) Record() Record {
	return Record{
		"ownerId": o.OwnerID,
		"name":    o.Name,
	}
}
