package graph

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsAlreadyExists(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("An equivalent constraint already exists"), true},
		{errors.New("Constraint ALREADY EXISTS: account_id"), true},
		{errors.New("There already exists an index (:Account {accountId})"), true},
		{errors.New("Invalid input 'CONSTRAIN'"), false},
		{errors.New("connection reset by peer"), false},
	}
	for _, tt := range tests {
		if got := IsAlreadyExists(tt.err); got != tt.want {
			t.Errorf("IsAlreadyExists(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsAlreadyExistsWrapped(t *testing.T) {
	err := fmt.Errorf("run statement: %w", errors.New("constraint already exists"))
	if !IsAlreadyExists(err) {
		t.Error("the marker should be found through wrapped error text")
	}
}

func TestWriteSummaryAdd(t *testing.T) {
	var total WriteSummary
	total.Add(WriteSummary{NodesCreated: 3, PropertiesSet: 9})
	total.Add(WriteSummary{NodesCreated: 2, RelationshipsCreated: 5, PropertiesSet: 1})

	if total.NodesCreated != 5 || total.RelationshipsCreated != 5 || total.PropertiesSet != 10 {
		t.Errorf("total = %+v, want {5 5 10}", total)
	}
}
