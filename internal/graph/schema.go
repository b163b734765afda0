package graph

import "strings"

// alreadyExistsMarker is matched case-insensitively against error text to
// recognize a constraint or index that an earlier run created. The database
// phrases this differently across versions, but all of them contain it.
const alreadyExistsMarker = "already exists"

// IsAlreadyExists reports whether err is the database declining to recreate
// an existing constraint or index. Callers treat that as success so re-runs
// stay clean.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), alreadyExistsMarker)
}
