package presenter

import (
	"strings"

	"github.com/praxise/interview-backend/internal/engine"
	"github.com/praxise/interview-backend/internal/model"
)

// VoicePresenter renders for spoken delivery: short acknowledgment, single
// flowing sentence block, no markup or list formatting in the question flow.
type VoicePresenter struct{}

func (p *VoicePresenter) Mode() model.InteractionMode { return model.ModeVoice }

func (p *VoicePresenter) RenderQuestion(q *model.Question, behavior model.BehaviorCategory) string {
	ack := engine.Acknowledgment(behavior)
	if q.IsFollowUp() {
		ack = "Let me follow up on that."
	}
	body := ack + " " + q.Text
	return flatten(engine.AdaptContent(behavior, body))
}

func (p *VoicePresenter) RenderRedirect(message string, behavior model.BehaviorCategory) string {
	return flatten(engine.AdaptContent(behavior, message))
}

// RenderFeedback delivers the same feedback content as text mode — the
// report format is required to be identical across modes.
func (p *VoicePresenter) RenderFeedback(report *model.FeedbackReport) string {
	return formatFeedback(report)
}

// flatten collapses line breaks into sentence flow for speech synthesis.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
