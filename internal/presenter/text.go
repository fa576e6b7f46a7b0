package presenter

import (
	"fmt"

	"github.com/praxise/interview-backend/internal/engine"
	"github.com/praxise/interview-backend/internal/model"
)

// TextPresenter renders for chat-style text delivery.
type TextPresenter struct{}

func (p *TextPresenter) Mode() model.InteractionMode { return model.ModeText }

func (p *TextPresenter) RenderQuestion(q *model.Question, behavior model.BehaviorCategory) string {
	prefix := engine.Transition(behavior)
	if q.IsFollowUp() {
		prefix = "Following up on that:"
	}
	body := fmt.Sprintf("%s\n\n%s", prefix, q.Text)
	return engine.AdaptContent(behavior, body)
}

func (p *TextPresenter) RenderRedirect(message string, behavior model.BehaviorCategory) string {
	return engine.AdaptContent(behavior, message)
}

func (p *TextPresenter) RenderFeedback(report *model.FeedbackReport) string {
	return formatFeedback(report)
}
