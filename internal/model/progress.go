package model

// Progress reports how far a session has advanced through its primary
// question sequence. Follow-up questions never count toward the totals.
type Progress struct {
	TotalQuestions    int     `json:"total_questions"`
	AnsweredQuestions int     `json:"answered_questions"`
	PercentComplete   float64 `json:"percent_complete"`
	// EstimatedMinutesRemaining is present only once at least one question
	// has been answered.
	EstimatedMinutesRemaining *int `json:"estimated_minutes_remaining,omitempty"`
}

// ContinuationType enumerates the ways a finalized session can spawn a
// new one.
type ContinuationType string

const (
	ContinuationNewRound   ContinuationType = "new-round"
	ContinuationTopicDrill ContinuationType = "topic-drill"
)

// ContinuationOption is one offer in a continuation prompt.
type ContinuationOption struct {
	Type        ContinuationType `json:"type"`
	Label       string           `json:"label"`
	Role        string           `json:"role,omitempty"`
	Level       ExperienceLevel  `json:"level,omitempty"`
	DrillTopic  string           `json:"drill_topic,omitempty"`
	Description string           `json:"description,omitempty"`
}

// ContinuationPrompt is the full set of options offered after finalization.
type ContinuationPrompt struct {
	Options []ContinuationOption `json:"options"`
}
