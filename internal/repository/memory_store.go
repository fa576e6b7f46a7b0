package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/praxise/interview-backend/internal/model"
	"github.com/praxise/interview-backend/internal/service"
)

// MemorySessionStore is an in-process SessionStore. It backs tests and the
// embedded single-node mode; it enforces the same state constraints as the
// Postgres store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
	now      func() time.Time
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[uuid.UUID]*model.Session),
		now:      time.Now,
	}
}

// Create inserts a new INITIALIZED session.
func (s *MemorySessionStore) Create(_ context.Context, role string, level model.ExperienceLevel, mode model.InteractionMode) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &model.Session{
		ID:          uuid.New(),
		Role:        role,
		Level:       level,
		Mode:        mode,
		Status:      model.SessionStatusInitialized,
		Responses:   make(map[uuid.UUID]model.Response),
		Evaluations: make(map[uuid.UUID]model.Evaluation),
		Behavior:    model.BehaviorStandard,
		CreatedAt:   s.now(),
	}
	s.sessions[sess.ID] = sess
	return copySession(sess), nil
}

// Get returns a deep copy so callers cannot mutate stored state directly.
func (s *MemorySessionStore) Get(_ context.Context, id uuid.UUID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return copySession(sess), nil
}

func (s *MemorySessionStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return service.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) ListActive(_ context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []uuid.UUID
	for id, sess := range s.sessions {
		if sess.Status == model.SessionStatusInProgress {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *MemorySessionStore) AttachResume(_ context.Context, id uuid.UUID, resume *model.ResumeAnalysis) error {
	return s.mutate(id, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInitialized {
			return service.ErrInvalidState
		}
		sess.Resume = resume
		return nil
	})
}

func (s *MemorySessionStore) SetDrillTopic(_ context.Context, id uuid.UUID, topic string) error {
	return s.mutate(id, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInitialized {
			return service.ErrInvalidState
		}
		sess.DrillTopic = topic
		return nil
	})
}

func (s *MemorySessionStore) UpdateQuestions(_ context.Context, id uuid.UUID, questions []model.Question) error {
	return s.mutate(id, func(sess *model.Session) error {
		sess.Questions = append([]model.Question(nil), questions...)
		return nil
	})
}

func (s *MemorySessionStore) AddResponse(_ context.Context, id uuid.UUID, resp model.Response) error {
	return s.mutate(id, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInProgress {
			return service.ErrInvalidState
		}
		if _, exists := sess.Responses[resp.QuestionID]; exists {
			return service.ErrDuplicateAnswer
		}
		sess.Responses[resp.QuestionID] = resp
		return nil
	})
}

func (s *MemorySessionStore) AddEvaluation(_ context.Context, id uuid.UUID, eval model.Evaluation) error {
	return s.mutate(id, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInProgress {
			return service.ErrInvalidState
		}
		sess.Evaluations[eval.QuestionID] = eval
		return nil
	})
}

func (s *MemorySessionStore) UpdateBehavior(_ context.Context, id uuid.UUID, behavior model.BehaviorCategory) error {
	return s.mutate(id, func(sess *model.Session) error {
		sess.Behavior = behavior
		return nil
	})
}

func (s *MemorySessionStore) UpdateCursor(_ context.Context, id uuid.UUID, cursor int) error {
	return s.mutate(id, func(sess *model.Session) error {
		if cursor < sess.Cursor {
			return service.ErrInvalidState // Cursor is monotonically non-decreasing.
		}
		sess.Cursor = cursor
		return nil
	})
}

func (s *MemorySessionStore) AppendInteraction(_ context.Context, id uuid.UUID, entry model.Interaction) error {
	return s.mutate(id, func(sess *model.Session) error {
		sess.Log = append(sess.Log, entry)
		return nil
	})
}

func (s *MemorySessionStore) Start(_ context.Context, id uuid.UUID) error {
	return s.mutate(id, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInitialized {
			return service.ErrAlreadyStarted
		}
		now := s.now()
		sess.Status = model.SessionStatusInProgress
		sess.StartedAt = &now
		return nil
	})
}

func (s *MemorySessionStore) End(_ context.Context, id uuid.UUID, early bool) error {
	return s.mutate(id, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInProgress {
			return service.ErrInvalidState
		}
		now := s.now()
		sess.EndedAt = &now
		if early {
			sess.Status = model.SessionStatusEndedEarly
		} else {
			sess.Status = model.SessionStatusCompleted
		}
		return nil
	})
}

func (s *MemorySessionStore) mutate(id uuid.UUID, fn func(*model.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return service.ErrSessionNotFound
	}
	return fn(sess)
}

func copySession(sess *model.Session) *model.Session {
	out := *sess
	out.Questions = append([]model.Question(nil), sess.Questions...)
	out.Log = append([]model.Interaction(nil), sess.Log...)
	out.Responses = make(map[uuid.UUID]model.Response, len(sess.Responses))
	for k, v := range sess.Responses {
		out.Responses[k] = v
	}
	out.Evaluations = make(map[uuid.UUID]model.Evaluation, len(sess.Evaluations))
	for k, v := range sess.Evaluations {
		out.Evaluations[k] = v
	}
	return &out
}
