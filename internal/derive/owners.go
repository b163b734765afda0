// Package derive computes the entities that have no export of their own.
// Case owners exist only as display names inside the cases export; this
// package aggregates them into loadable records and resolves the ownership
// relationship against their derived identities.
package derive

import (
	"strings"

	"github.com/maraichr/crmgraph/internal/source"
	"github.com/maraichr/crmgraph/pkg/models"
)

// OwnerSlug derives the stable identity for a case owner from the display
// name: lowercased, spaces to underscores, periods removed. The same name
// always slugs the same way, so re-runs land on the same node.
func OwnerSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	return strings.ReplaceAll(slug, ".", "")
}

// Owners scans the owner column of the cases export and returns one
// CaseOwner per distinct identity, in first-appearance order. Blank and
// whitespace-only names are dropped. When two spellings collapse to the same
// slug, the first one seen keeps its display name.
func Owners(csvPath, column string) ([]models.CaseOwner, error) {
	rows, err := source.ReadColumns(csvPath, column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var owners []models.CaseOwner
	for _, row := range rows {
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		slug := OwnerSlug(name)
		if seen[slug] {
			continue
		}
		seen[slug] = true
		owners = append(owners, models.CaseOwner{OwnerID: slug, Name: name})
	}
	return owners, nil
}

// Assignments resolves case-to-owner pairs for the ownership relationship,
// translating each raw owner name into the derived identity so the records
// line up with the nodes Owners produced. Rows missing either side are
// skipped.
func Assignments(csvPath, caseColumn, ownerColumn string) ([]models.Record, error) {
	rows, err := source.ReadColumns(csvPath, caseColumn, ownerColumn)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for _, row := range rows {
		caseID := strings.TrimSpace(row[0])
		owner := strings.TrimSpace(row[1])
		if caseID == "" || owner == "" {
			continue
		}
		records = append(records, models.Record{
			"sourceId": caseID,
			"targetId": OwnerSlug(owner),
		})
	}
	return records, nil
}
