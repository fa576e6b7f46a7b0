package engine

import (
	"fmt"
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// Phrasing templates for targeted technology probes.
var techProbeTemplates = []string{
	"You mentioned %s — can you go deeper into how you used it and what problems you hit?",
	"Let's zoom in on %s. What specifically did you build with it, and what would you do differently?",
	"You brought up %s. How does it work under the hood, in your understanding?",
}

// Generic elaboration families keyed by the evaluation's follow-up reason.
var (
	depthFollowUps = []string{
		"Can you walk me through the technical details of that? I'd like to understand the how, not just the what.",
		"That's a good start — take me one level deeper. What were the moving parts?",
	}
	completenessFollowUps = []string{
		"What was the outcome? I'd like to hear about the impact of what you described.",
		"How did that end up? What changed as a result of your work there?",
	}
	clarityFollowUps = []string{
		"I'm not sure I followed that — could you rephrase it, maybe with a concrete example?",
		"Could you restate that more simply, or anchor it in a specific example?",
	}
	genericFollowUps = []string{
		"Tell me more about that.",
		"Interesting — can you expand on that a bit?",
	}
)

// GenerateFollowUp synthesizes a follow-up for a low-quality evaluation.
// Returns nil when no follow-up is warranted or the parent already carries
// the maximum number of follow-ups.
//
// A technical parent whose response names a known technology gets a probe
// targeted at the first mentioned term; otherwise the phrasing family is
// picked from the evaluation's follow-up reason.
func (g *Generator) GenerateFollowUp(parent *model.Question, resp model.Response, eval model.Evaluation) *model.Question {
	if !eval.NeedsFollowUp || parent.FollowUpCount >= model.MaxFollowUps {
		return nil
	}

	var text string
	if term := firstTerm(resp.Text, techVocabulary); term != "" && parent.Kind == model.QuestionKindTechnical {
		tpl := techProbeTemplates[g.rng.Intn(len(techProbeTemplates))]
		text = fmt.Sprintf(tpl, term)
	} else {
		family := followUpFamily(eval.FollowUpReason)
		text = family[g.rng.Intn(len(family))]
	}

	parentID := parent.ID
	return &model.Question{
		ID:               g.newID(),
		Kind:             parent.Kind,
		Text:             text,
		Category:         parent.Category,
		Difficulty:       parent.Difficulty,
		ExpectedElements: parent.ExpectedElements,
		ParentQuestionID: &parentID,
		FollowUpCount:    parent.FollowUpCount + 1,
	}
}

// followUpFamily maps a follow-up reason to its phrasing family. The first
// matched trigger in the concatenated reason string wins.
func followUpFamily(reason string) []string {
	switch {
	case strings.Contains(reason, "depth"):
		return depthFollowUps
	case strings.Contains(reason, "incomplete"):
		return completenessFollowUps
	case strings.Contains(reason, "unclear"):
		return clarityFollowUps
	default:
		return genericFollowUps
	}
}
