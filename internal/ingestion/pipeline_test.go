package ingestion

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// recordingStage appends its name to a shared journal when executed.
type recordingStage struct {
	name    string
	journal *[]string
	err     error
}

func (s *recordingStage) Name() string { return s.name }

func (s *recordingStage) Execute(_ context.Context, _ *RunContext) error {
	*s.journal = append(*s.journal, s.name)
	return s.err
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var journal []string
	p := NewPipeline([]Stage{
		&recordingStage{name: "schema", journal: &journal},
		&recordingStage{name: "nodes", journal: &journal},
		&recordingStage{name: "relationships", journal: &journal},
		&recordingStage{name: "verify", journal: &journal},
	}, discardLogger())

	if err := p.Run(context.Background(), &RunContext{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "schema,nodes,relationships,verify"
	if got := strings.Join(journal, ","); got != want {
		t.Errorf("stage order = %s, want %s", got, want)
	}
}

func TestPipelineStopsAtFirstStageError(t *testing.T) {
	var journal []string
	boom := errors.New("boom")
	p := NewPipeline([]Stage{
		&recordingStage{name: "schema", journal: &journal},
		&recordingStage{name: "nodes", journal: &journal, err: boom},
		&recordingStage{name: "relationships", journal: &journal},
	}, discardLogger())

	err := p.Run(context.Background(), &RunContext{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("the stage error should be wrapped, got %v", err)
	}
	if !strings.Contains(err.Error(), "stage nodes failed") {
		t.Errorf("error should name the failing stage, got %q", err.Error())
	}
	if got := strings.Join(journal, ","); got != "schema,nodes" {
		t.Errorf("executed stages = %s, want schema,nodes", got)
	}
}

func TestPipelineWithNoStages(t *testing.T) {
	p := NewPipeline(nil, discardLogger())
	if err := p.Run(context.Background(), &RunContext{}); err != nil {
		t.Errorf("an empty pipeline should succeed, got %v", err)
	}
}
