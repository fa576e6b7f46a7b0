package model

// ActionType is the orchestrator's decision after each interview turn.
type ActionType string

const (
	ActionNextQuestion ActionType = "next-question"
	ActionFollowUp     ActionType = "follow-up"
	ActionComplete     ActionType = "complete"
	ActionRedirect     ActionType = "redirect"
)

// Action is the single shape the orchestrator emits to the presentation
// layer. Exactly one of Question, Feedback, or Message is populated,
// depending on Type.
type Action struct {
	Type     ActionType      `json:"type"`
	Question *Question       `json:"question,omitempty"`
	Feedback *FeedbackReport `json:"feedback,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// NextQuestionAction wraps a question in a next-question action.
func NextQuestionAction(q *Question) Action {
	return Action{Type: ActionNextQuestion, Question: q}
}

// FollowUpAction wraps a synthesized follow-up in a follow-up action.
func FollowUpAction(q *Question) Action {
	return Action{Type: ActionFollowUp, Question: q}
}

// CompleteAction wraps a feedback report in a complete action.
func CompleteAction(report *FeedbackReport) Action {
	return Action{Type: ActionComplete, Feedback: report}
}

// RedirectAction wraps a recoverable soft failure in a redirect action.
func RedirectAction(message string) Action {
	return Action{Type: ActionRedirect, Message: message}
}
