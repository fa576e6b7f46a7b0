package model

import "github.com/google/uuid"

// Evaluation is the per-response scorecard. Exactly one per response.
// All scores are on a 0–10 scale. TechnicalAccuracy is set only for
// technical questions.
type Evaluation struct {
	QuestionID        uuid.UUID `json:"question_id"`
	Depth             float64   `json:"depth"`
	Clarity           float64   `json:"clarity"`
	Completeness      float64   `json:"completeness"`
	TechnicalAccuracy *float64  `json:"technical_accuracy,omitempty"`
	NeedsFollowUp     bool      `json:"needs_follow_up"`
	FollowUpReason    string    `json:"follow_up_reason,omitempty"`
}

// CoreMean averages the three axes present on every evaluation.
func (e *Evaluation) CoreMean() float64 {
	return (e.Depth + e.Clarity + e.Completeness) / 3
}
