package model

import "github.com/google/uuid"

// Grade is a letter grade derived from percentage-of-max thresholds
// (≥90 A, ≥80 B, ≥70 C, ≥60 D, else F).
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// SubScore is one 0–10 component of a rubric section.
type SubScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SectionScore is a 0–40 rubric section built from four sub-scores.
type SectionScore struct {
	SubScores []SubScore `json:"sub_scores"`
	Total     float64    `json:"total"` // 0–40
	Grade     Grade      `json:"grade"`
}

// OverallScore is the weighted 0–100 rubric combining communication (40%)
// and technical fit (60%).
type OverallScore struct {
	Score float64 `json:"score"`
	Grade Grade   `json:"grade"`
}

// ImprovementPriority ranks how urgent an improvement area is.
type ImprovementPriority string

const (
	PriorityHigh   ImprovementPriority = "HIGH"
	PriorityMedium ImprovementPriority = "MEDIUM"
)

// Improvement is one actionable improvement area in the report.
type Improvement struct {
	Area     string              `json:"area"`
	Advice   string              `json:"advice"`
	Priority ImprovementPriority `json:"priority"`
}

// ResumeAlignmentFeedback compares resume claims against interview evidence.
type ResumeAlignmentFeedback struct {
	MatchedSkills    []string `json:"matched_skills"`
	UnverifiedSkills []string `json:"unverified_skills"`
	MissingSkills    []string `json:"missing_skills"`
	ExperienceGaps   []string `json:"experience_gaps"`
	Suggestions      []string `json:"suggestions"`
}

// QuestionReview is the per-question line in the report breakdown.
type QuestionReview struct {
	QuestionID   uuid.UUID    `json:"question_id"`
	QuestionText string       `json:"question_text"`
	Kind         QuestionKind `json:"kind"`
	Category     string       `json:"category"`
	Evaluation   Evaluation   `json:"evaluation"`
	Remark       string       `json:"remark"`
}

// FeedbackReport is the final scoring report. It is derived from finalized
// session state and never persisted.
type FeedbackReport struct {
	SessionID         uuid.UUID                `json:"session_id"`
	Communication     SectionScore             `json:"communication"`
	TechnicalFit      SectionScore             `json:"technical_fit"`
	Overall           OverallScore             `json:"overall"`
	Strengths         []string                 `json:"strengths"`
	Improvements      []Improvement            `json:"improvements"`
	ResumeAlignment   *ResumeAlignmentFeedback `json:"resume_alignment,omitempty"`
	QuestionBreakdown []QuestionReview         `json:"question_breakdown"`
	Summary           string                   `json:"summary"`
}
