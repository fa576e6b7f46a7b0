package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response is a candidate answer to one question. Created once per question
// and never mutated afterwards.
type Response struct {
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
	WordCount  int       `json:"word_count"`
	// ResponseSeconds is a heuristic estimate derived from wall-clock sampling
	// against an assumed per-question duration, not a measured latency.
	ResponseSeconds float64 `json:"response_seconds"`
}

// ParseResponse builds a canonical response record from raw presentation-layer
// input: trims whitespace, clips to maxChars, and computes the word count.
func ParseResponse(questionID uuid.UUID, raw string, submittedAt time.Time, maxChars int, responseSeconds float64) Response {
	text := strings.TrimSpace(raw)
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	return Response{
		QuestionID:      questionID,
		Text:            text,
		SubmittedAt:     submittedAt,
		WordCount:       len(strings.Fields(text)),
		ResponseSeconds: responseSeconds,
	}
}

// SubmitResponseRequest is the payload for submitting an answer.
type SubmitResponseRequest struct {
	QuestionID      string  `json:"question_id" binding:"required,uuid"`
	Text            string  `json:"text" binding:"required,min=1"`
	ResponseSeconds float64 `json:"response_seconds" binding:"omitempty,gte=0"`
}
