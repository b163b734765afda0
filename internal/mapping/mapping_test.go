package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maraichr/crmgraph/pkg/loaderr"
)

const samplePlan = `
initializing_queries:
  constraints:
    - CREATE CONSTRAINT account_id IF NOT EXISTS FOR (a:Account) REQUIRE a.accountId IS UNIQUE
    - CREATE CONSTRAINT contact_id IF NOT EXISTS FOR (c:Contact) REQUIRE c.contactId IS UNIQUE
  indexes: []
loading_queries:
  nodes:
    Account:
      source_file: accounts.csv
      field_mappings:
        accountId: Account_ID
        name: Account_Name
      query: |
        UNWIND $records AS record
        MERGE (a:Account {accountId: record.accountId})
        SET a.name = record.name
    Contact:
      source_file: contacts.csv
      field_mappings:
        contactId: Contact_ID
      query: |
        UNWIND $records AS record
        MERGE (c:Contact {contactId: record.contactId})
  relationships:
    BELONGS_TO_ACCOUNT:
      source_data: contacts.csv
      field_mappings:
        contactId: Contact_ID
        accountId: Account_ID
      query: |
        UNWIND $records AS record
        MATCH (c:Contact {contactId: record.contactId})
        MATCH (a:Account {accountId: record.accountId})
        MERGE (c)-[:BELONGS_TO_ACCOUNT]->(a)
`

func TestLoadParsesFullShape(t *testing.T) {
	plan := loadPlan(t, samplePlan)

	if len(plan.Init.Constraints) != 2 {
		t.Fatalf("expected 2 constraints, got %d", len(plan.Init.Constraints))
	}
	if len(plan.Init.Indexes) != 0 {
		t.Errorf("expected 0 indexes, got %d", len(plan.Init.Indexes))
	}
	if len(plan.Loading.Nodes) != 2 {
		t.Fatalf("expected 2 node entries, got %d", len(plan.Loading.Nodes))
	}

	account, ok := plan.Loading.Nodes.Get("Account")
	if !ok {
		t.Fatal("missing Account entry")
	}
	if account.SourceFile != "accounts.csv" {
		t.Errorf("Account source_file = %q, want accounts.csv", account.SourceFile)
	}
	if account.FieldMappings["name"] != "Account_Name" {
		t.Errorf("Account field_mappings[name] = %q, want Account_Name", account.FieldMappings["name"])
	}
	if account.Query == "" {
		t.Error("Account query should not be empty")
	}

	rel, ok := plan.Loading.Relationships.Get("BELONGS_TO_ACCOUNT")
	if !ok {
		t.Fatal("missing BELONGS_TO_ACCOUNT entry")
	}
	if rel.SourceData != "contacts.csv" {
		t.Errorf("relationship source_data = %q, want contacts.csv", rel.SourceData)
	}
}

func TestLoadPreservesDeclarationOrder(t *testing.T) {
	// Deliberately not alphabetical; load order must be plan order.
	plan := loadPlan(t, `
loading_queries:
  nodes:
    Zebra:
      source_file: z.csv
      field_mappings: {id: Z_ID}
      query: MERGE (z)
    Alpha:
      source_file: a.csv
      field_mappings: {id: A_ID}
      query: MERGE (a)
    Middle:
      source_file: m.csv
      field_mappings: {id: M_ID}
      query: MERGE (m)
`)

	want := []string{"Zebra", "Alpha", "Middle"}
	if len(plan.Loading.Nodes) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(plan.Loading.Nodes))
	}
	for i, label := range want {
		if plan.Loading.Nodes[i].Label != label {
			t.Errorf("nodes[%d] = %s, want %s", i, plan.Loading.Nodes[i].Label, label)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing plan")
	}
	if loaderr.CodeOf(err) != loaderr.CodeConfigNotFound {
		t.Errorf("code = %q, want %q", loaderr.CodeOf(err), loaderr.CodeConfigNotFound)
	}
}

func TestLoadRejectsNonMappingDocuments(t *testing.T) {
	for _, content := range []string{
		"just a scalar",
		"- a\n- list",
		"",
	} {
		_, err := loadPlanErr(t, content)
		if err == nil {
			t.Errorf("content %q: expected an error", content)
			continue
		}
		if loaderr.CodeOf(err) != loaderr.CodeConfigInvalid {
			t.Errorf("content %q: code = %q, want %q", content, loaderr.CodeOf(err), loaderr.CodeConfigInvalid)
		}
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := loadPlanErr(t, "loading_queries: {nodes: [unclosed")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if loaderr.CodeOf(err) != loaderr.CodeConfigInvalid {
		t.Errorf("code = %q, want %q", loaderr.CodeOf(err), loaderr.CodeConfigInvalid)
	}
}

func TestLoadEmptySections(t *testing.T) {
	plan := loadPlan(t, "loading_queries:\n  nodes:\n  relationships:\n")
	if len(plan.Loading.Nodes) != 0 || len(plan.Loading.Relationships) != 0 {
		t.Errorf("expected empty sections, got %d nodes, %d relationships",
			len(plan.Loading.Nodes), len(plan.Loading.Relationships))
	}
}

func TestNodeSpecValidate(t *testing.T) {
	tests := []struct {
		name string
		spec NodeSpec
		want loaderr.Code
	}{
		{"complete", NodeSpec{Label: "Account", SourceFile: "a.csv", FieldMappings: map[string]string{"id": "ID"}, Query: "MERGE"}, ""},
		{"no source", NodeSpec{Label: "Account", FieldMappings: map[string]string{"id": "ID"}, Query: "MERGE"}, loaderr.CodePlanEntryInvalid},
		{"no mappings", NodeSpec{Label: "Account", SourceFile: "a.csv", Query: "MERGE"}, loaderr.CodePlanEntryInvalid},
		{"no query", NodeSpec{Label: "Account", SourceFile: "a.csv", FieldMappings: map[string]string{"id": "ID"}}, loaderr.CodePlanEntryInvalid},
	}
	for _, tt := range tests {
		err := tt.spec.Validate()
		if got := loaderr.CodeOf(err); got != tt.want {
			t.Errorf("%s: code = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRelationshipSpecValidate(t *testing.T) {
	spec := RelationshipSpec{Type: "HAS_CASE", SourceData: "cases.csv", FieldMappings: map[string]string{"caseId": "Case_ID"}, Query: "MERGE"}
	if err := spec.Validate(); err != nil {
		t.Errorf("complete entry should validate, got %v", err)
	}

	spec.Query = ""
	err := spec.Validate()
	if loaderr.CodeOf(err) != loaderr.CodePlanEntryInvalid {
		t.Errorf("code = %q, want %q", loaderr.CodeOf(err), loaderr.CodePlanEntryInvalid)
	}
}

// --- helpers ---

func loadPlan(t *testing.T, content string) *Plan {
	t.Helper()
	plan, err := loadPlanErr(t, content)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return plan
}

func loadPlanErr(t *testing.T, content string) (*Plan, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	return Load(path)
}
