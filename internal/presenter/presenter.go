// Package presenter renders engine output for a delivery mode. Text and
// voice renderers differ in question phrasing but must produce identical
// feedback content, so both delegate to the shared feedback formatter.
package presenter

import (
	"fmt"
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// Presenter renders questions, redirects, and feedback for one delivery mode.
type Presenter interface {
	Mode() model.InteractionMode
	RenderQuestion(q *model.Question, behavior model.BehaviorCategory) string
	RenderRedirect(message string, behavior model.BehaviorCategory) string
	RenderFeedback(report *model.FeedbackReport) string
}

// ForMode selects the presenter for a session's interaction mode.
func ForMode(mode model.InteractionMode) Presenter {
	if mode == model.ModeVoice {
		return &VoicePresenter{}
	}
	return &TextPresenter{}
}

// formatFeedback is the shared feedback rendering used by every presenter;
// feedback must read identically regardless of delivery mode.
func formatFeedback(report *model.FeedbackReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall: %.1f/100 (grade %s)\n", report.Overall.Score, report.Overall.Grade)
	fmt.Fprintf(&b, "Communication: %.1f/40 (%s) | Technical fit: %.1f/40 (%s)\n",
		report.Communication.Total, report.Communication.Grade,
		report.TechnicalFit.Total, report.TechnicalFit.Grade)

	if len(report.Strengths) > 0 {
		b.WriteString("\nStrengths:\n")
		for _, s := range report.Strengths {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	if len(report.Improvements) > 0 {
		b.WriteString("\nAreas to improve:\n")
		for _, imp := range report.Improvements {
			fmt.Fprintf(&b, "  - [%s] %s: %s\n", imp.Priority, imp.Area, imp.Advice)
		}
	}
	if ra := report.ResumeAlignment; ra != nil {
		b.WriteString("\nResume alignment:\n")
		fmt.Fprintf(&b, "  Verified skills: %s\n", orNone(ra.MatchedSkills))
		fmt.Fprintf(&b, "  Unverified skills: %s\n", orNone(ra.UnverifiedSkills))
		for _, s := range ra.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	b.WriteString("\n")
	b.WriteString(report.Summary)
	return b.String()
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
