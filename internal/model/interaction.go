package model

import "time"

// InteractionType tags entries in a session's append-only interaction log.
type InteractionType string

const (
	InteractionQuestionAsked   InteractionType = "QUESTION_ASKED"
	InteractionResponseGiven   InteractionType = "RESPONSE_GIVEN"
	InteractionFollowUpIssued  InteractionType = "FOLLOW_UP_ISSUED"
	InteractionRedirectIssued  InteractionType = "REDIRECT_ISSUED"
	InteractionSessionStarted  InteractionType = "SESSION_STARTED"
	InteractionSessionFinished InteractionType = "SESSION_FINISHED"
)

// Interaction is one timestamped record in the session log. The log is only
// consumed by the behavior classifier.
type Interaction struct {
	Type      InteractionType `json:"type"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
}
