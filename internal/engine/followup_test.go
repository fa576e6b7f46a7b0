package engine

import (
	"strings"
	"testing"

	"github.com/praxise/interview-backend/internal/model"
)

func TestGenerateFollowUpRespectsTriggersAndCap(t *testing.T) {
	g := newTestGenerator(1)
	parent := techQuestion("system-design", "token bucket")
	resp := respond(parent, "Yes.")

	if fu := g.GenerateFollowUp(&parent, resp, model.Evaluation{NeedsFollowUp: false}); fu != nil {
		t.Error("no follow-up should be produced when the evaluation does not ask for one")
	}

	capped := parent
	capped.FollowUpCount = model.MaxFollowUps
	if fu := g.GenerateFollowUp(&capped, resp, model.Evaluation{NeedsFollowUp: true}); fu != nil {
		t.Error("no follow-up should be produced past the per-parent cap")
	}
}

func TestGenerateFollowUpTechTermProbe(t *testing.T) {
	g := newTestGenerator(1)
	parent := techQuestion("databases")
	resp := respond(parent, "We store everything in postgres and it mostly works.")

	fu := g.GenerateFollowUp(&parent, resp, model.Evaluation{
		NeedsFollowUp:  true,
		FollowUpReason: "insufficient depth",
	})
	if fu == nil {
		t.Fatal("expected a follow-up")
	}
	if !strings.Contains(strings.ToLower(fu.Text), "postgres") {
		t.Errorf("technical parent with a tech mention should probe the term, got %q", fu.Text)
	}
}

func TestGenerateFollowUpReasonFamilies(t *testing.T) {
	g := newTestGenerator(1)
	parent := behavioralQuestion() // behavioral: tech terms must not trigger a probe
	resp := respond(parent, "We used postgres for a while.")

	tests := []struct {
		reason string
		want   []string
	}{
		{"insufficient depth", depthFollowUps},
		{"incomplete answer", completenessFollowUps},
		{"unclear response", clarityFollowUps},
		{"", genericFollowUps},
	}

	for _, tt := range tests {
		fu := g.GenerateFollowUp(&parent, resp, model.Evaluation{NeedsFollowUp: true, FollowUpReason: tt.reason})
		if fu == nil {
			t.Fatalf("reason %q: expected a follow-up", tt.reason)
		}
		found := false
		for _, candidate := range tt.want {
			if fu.Text == candidate {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("reason %q: follow-up %q not from the expected family", tt.reason, fu.Text)
		}
	}
}

func TestGenerateFollowUpInheritance(t *testing.T) {
	g := newTestGenerator(1)
	parent := techQuestion("system-design", "token bucket", "failure mode")
	parent.FollowUpCount = 1
	resp := respond(parent, "Yes.")

	fu := g.GenerateFollowUp(&parent, resp, model.Evaluation{NeedsFollowUp: true, FollowUpReason: "insufficient depth"})
	if fu == nil {
		t.Fatal("expected a follow-up")
	}
	if fu.ParentQuestionID == nil || *fu.ParentQuestionID != parent.ID {
		t.Error("follow-up must carry its parent's id")
	}
	if fu.FollowUpCount != parent.FollowUpCount+1 {
		t.Errorf("FollowUpCount = %d, want %d", fu.FollowUpCount, parent.FollowUpCount+1)
	}
	if fu.Kind != parent.Kind || fu.Category != parent.Category || fu.Difficulty != parent.Difficulty {
		t.Error("follow-up must inherit kind, category, and difficulty")
	}
	if len(fu.ExpectedElements) != len(parent.ExpectedElements) {
		t.Error("follow-up must inherit expected elements")
	}
}
