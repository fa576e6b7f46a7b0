package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus enumerates interview session states. Transitions are
// one-directional: INITIALIZED → IN_PROGRESS → {COMPLETED | ENDED_EARLY}.
type SessionStatus string

const (
	SessionStatusInitialized SessionStatus = "INITIALIZED"
	SessionStatusInProgress  SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted   SessionStatus = "COMPLETED"
	SessionStatusEndedEarly  SessionStatus = "ENDED_EARLY"
)

// ExperienceLevel enumerates supported candidate seniority levels.
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "ENTRY"
	LevelMid    ExperienceLevel = "MID"
	LevelSenior ExperienceLevel = "SENIOR"
	LevelLead   ExperienceLevel = "LEAD"
)

// InteractionMode selects the presenter used to render questions and feedback.
type InteractionMode string

const (
	ModeText  InteractionMode = "TEXT"
	ModeVoice InteractionMode = "VOICE"
)

// BehaviorCategory classifies the candidate's interaction style.
type BehaviorCategory string

const (
	BehaviorStandard  BehaviorCategory = "STANDARD"
	BehaviorConfused  BehaviorCategory = "CONFUSED"
	BehaviorEfficient BehaviorCategory = "EFFICIENT"
	BehaviorChatty    BehaviorCategory = "CHATTY"
	BehaviorEdgeCase  BehaviorCategory = "EDGE_CASE"
)

// Session is the aggregate for a single mock interview run.
//
// Cursor indexes into the primary question sequence (1-based) and is
// monotonically non-decreasing; follow-ups never advance it. Responses and
// Evaluations are keyed by question id — at most one of each per question.
type Session struct {
	ID          uuid.UUID                `json:"id"`
	Role        string                   `json:"role"`
	Level       ExperienceLevel          `json:"level"`
	Mode        InteractionMode          `json:"mode"`
	Status      SessionStatus            `json:"status"`
	DrillTopic  string                   `json:"drill_topic,omitempty"`
	Resume      *ResumeAnalysis          `json:"resume,omitempty"`
	Questions   []Question               `json:"questions"`
	Responses   map[uuid.UUID]Response   `json:"responses"`
	Evaluations map[uuid.UUID]Evaluation `json:"evaluations"`
	Behavior    BehaviorCategory         `json:"behavior"`
	Cursor      int                      `json:"cursor"`
	Log         []Interaction            `json:"log"`
	CreatedAt   time.Time                `json:"created_at"`
	StartedAt   *time.Time               `json:"started_at,omitempty"`
	EndedAt     *time.Time               `json:"ended_at,omitempty"`
}

// QuestionByID finds a question (primary or follow-up) in the session's list.
func (s *Session) QuestionByID(id uuid.UUID) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// PrimaryQuestions returns the questions without a parent, in order.
func (s *Session) PrimaryQuestions() []Question {
	var primary []Question
	for _, q := range s.Questions {
		if q.ParentQuestionID == nil {
			primary = append(primary, q)
		}
	}
	return primary
}

// AnsweredPrimaryCount counts primary questions with a recorded response.
func (s *Session) AnsweredPrimaryCount() int {
	n := 0
	for _, q := range s.Questions {
		if q.ParentQuestionID != nil {
			continue
		}
		if _, ok := s.Responses[q.ID]; ok {
			n++
		}
	}
	return n
}

// CreateSessionRequest is the payload for creating a new interview session.
type CreateSessionRequest struct {
	Role   string          `json:"role" binding:"required,min=2,max=64"`
	Level  string          `json:"level" binding:"required,min=3,max=16"`
	Mode   string          `json:"mode" binding:"omitempty,oneof=TEXT VOICE text voice"`
	Resume *ResumeAnalysis `json:"resume,omitempty"`
}

// ContinueSessionRequest is the payload for spawning a continuation session
// from a finalized one.
type ContinueSessionRequest struct {
	SessionID  string `json:"session_id" binding:"required,uuid"`
	Type       string `json:"type" binding:"required"`
	Role       string `json:"role" binding:"omitempty,max=64"`
	Level      string `json:"level" binding:"omitempty,max=16"`
	DrillTopic string `json:"drill_topic" binding:"omitempty,max=64"`
}
