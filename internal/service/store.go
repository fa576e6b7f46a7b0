package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/praxise/interview-backend/internal/model"
)

// Store errors shared by every SessionStore implementation.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidState    = errors.New("session status does not allow this operation")
	ErrAlreadyStarted  = errors.New("session already started")
	ErrDuplicateAnswer = errors.New("question already has a recorded response")

	ErrUnknownRole  = errors.New("unknown role")
	ErrUnknownLevel = errors.New("unknown experience level")

	ErrNoMoreQuestions    = errors.New("no questions remain in this session")
	ErrNotStarted         = errors.New("session not started")
	ErrSessionFinalized   = errors.New("session already finalized")
	ErrNotFinalized       = errors.New("session not finalized")
	ErrContinuationType   = errors.New("unknown continuation type")
	ErrContinuationFields = errors.New("continuation request is missing required fields")
)

// SessionStore is the persistence contract the orchestrator depends on.
// Implementations must enforce the state constraints themselves: responses
// and evaluations attach only to IN_PROGRESS sessions, Start rejects a
// second call, End only finalizes an IN_PROGRESS session.
type SessionStore interface {
	Create(ctx context.Context, role string, level model.ExperienceLevel, mode model.InteractionMode) (*model.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]uuid.UUID, error)

	// AttachResume fails once the session has left INITIALIZED.
	AttachResume(ctx context.Context, id uuid.UUID, resume *model.ResumeAnalysis) error
	SetDrillTopic(ctx context.Context, id uuid.UUID, topic string) error

	UpdateQuestions(ctx context.Context, id uuid.UUID, questions []model.Question) error
	AddResponse(ctx context.Context, id uuid.UUID, resp model.Response) error
	AddEvaluation(ctx context.Context, id uuid.UUID, eval model.Evaluation) error
	UpdateBehavior(ctx context.Context, id uuid.UUID, behavior model.BehaviorCategory) error
	UpdateCursor(ctx context.Context, id uuid.UUID, cursor int) error
	AppendInteraction(ctx context.Context, id uuid.UUID, entry model.Interaction) error

	// Start transitions INITIALIZED → IN_PROGRESS and stamps the start time.
	Start(ctx context.Context, id uuid.UUID) error
	// End transitions IN_PROGRESS → COMPLETED (or ENDED_EARLY when early)
	// and stamps the end time.
	End(ctx context.Context, id uuid.UUID, early bool) error
}
