package model

import "github.com/google/uuid"

// QuestionKind distinguishes technical probes from behavioral ones.
type QuestionKind string

const (
	QuestionKindTechnical  QuestionKind = "TECHNICAL"
	QuestionKindBehavioral QuestionKind = "BEHAVIORAL"
)

// MaxFollowUps caps how many follow-ups one primary question may accumulate.
const MaxFollowUps = 2

// Question is a single interview question, primary or follow-up.
//
// A follow-up always carries its parent's id in ParentQuestionID and the
// parent tracks how many follow-ups it has spawned in FollowUpCount.
type Question struct {
	ID               uuid.UUID    `json:"id"`
	Kind             QuestionKind `json:"kind"`
	Text             string       `json:"text"`
	Category         string       `json:"category"`
	Difficulty       int          `json:"difficulty"` // 1–10
	ResumeReference  string       `json:"resume_reference,omitempty"`
	ExpectedElements []string     `json:"expected_elements,omitempty"`
	ParentQuestionID *uuid.UUID   `json:"parent_question_id,omitempty"`
	FollowUpCount    int          `json:"follow_up_count"`
}

// IsFollowUp reports whether the question was synthesized from a parent.
func (q *Question) IsFollowUp() bool {
	return q.ParentQuestionID != nil
}
