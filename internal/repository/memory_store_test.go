package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxise/interview-backend/internal/model"
	"github.com/praxise/interview-backend/internal/service"
)

func newStartedSession(t *testing.T, store *MemorySessionStore) *model.Session {
	t.Helper()
	ctx := context.Background()
	sess, err := store.Create(ctx, "software-engineer", model.LevelMid, model.ModeText)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Start(ctx, sess.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return sess
}

func TestStoreLifecycle(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, err := store.Create(ctx, "software-engineer", model.LevelSenior, model.ModeVoice)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Status != model.SessionStatusInitialized {
		t.Fatalf("status = %s", sess.Status)
	}

	if err := store.Start(ctx, sess.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := store.Start(ctx, sess.ID); !errors.Is(err, service.ErrAlreadyStarted) {
		t.Fatalf("second Start: want ErrAlreadyStarted, got %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != model.SessionStatusInProgress || got.StartedAt == nil {
		t.Fatalf("after start: %s startedAt=%v", got.Status, got.StartedAt)
	}

	if err := store.End(ctx, sess.ID, true); err != nil {
		t.Fatalf("End: %v", err)
	}
	got, _ = store.Get(ctx, sess.ID)
	if got.Status != model.SessionStatusEndedEarly || got.EndedAt == nil {
		t.Fatalf("after end: %s endedAt=%v", got.Status, got.EndedAt)
	}
	if err := store.End(ctx, sess.ID, false); !errors.Is(err, service.ErrInvalidState) {
		t.Fatalf("double End: want ErrInvalidState, got %v", err)
	}

	if _, err := store.Get(ctx, uuid.New()); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("missing Get: want ErrSessionNotFound, got %v", err)
	}
}

func TestStoreResponseConstraints(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, _ := store.Create(ctx, "software-engineer", model.LevelMid, model.ModeText)
	resp := model.ParseResponse(uuid.New(), "an answer", time.Now(), 8000, 10)

	if err := store.AddResponse(ctx, sess.ID, resp); !errors.Is(err, service.ErrInvalidState) {
		t.Fatalf("response before start: want ErrInvalidState, got %v", err)
	}

	if err := store.Start(ctx, sess.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := store.AddResponse(ctx, sess.ID, resp); err != nil {
		t.Fatalf("AddResponse: %v", err)
	}
	if err := store.AddResponse(ctx, sess.ID, resp); !errors.Is(err, service.ErrDuplicateAnswer) {
		t.Fatalf("duplicate: want ErrDuplicateAnswer, got %v", err)
	}
}

func TestStoreResumeOnlyBeforeStart(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, _ := store.Create(ctx, "data-scientist", model.LevelEntry, model.ModeText)
	resume := &model.ResumeAnalysis{Skills: []string{"python"}}

	if err := store.AttachResume(ctx, sess.ID, resume); err != nil {
		t.Fatalf("AttachResume: %v", err)
	}
	if err := store.Start(ctx, sess.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := store.AttachResume(ctx, sess.ID, resume); !errors.Is(err, service.ErrInvalidState) {
		t.Fatalf("resume after start: want ErrInvalidState, got %v", err)
	}
}

func TestStoreCursorMonotonic(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	sess := newStartedSession(t, store)

	if err := store.UpdateCursor(ctx, sess.ID, 3); err != nil {
		t.Fatalf("UpdateCursor: %v", err)
	}
	if err := store.UpdateCursor(ctx, sess.ID, 2); !errors.Is(err, service.ErrInvalidState) {
		t.Fatalf("backwards cursor: want ErrInvalidState, got %v", err)
	}
	if err := store.UpdateCursor(ctx, sess.ID, 3); err != nil {
		t.Fatalf("idempotent cursor: %v", err)
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	sess := newStartedSession(t, store)

	q := model.Question{ID: uuid.New(), Kind: model.QuestionKindTechnical, Text: "original"}
	if err := store.UpdateQuestions(ctx, sess.ID, []model.Question{q}); err != nil {
		t.Fatalf("UpdateQuestions: %v", err)
	}

	got, _ := store.Get(ctx, sess.ID)
	got.Questions[0].Text = "mutated"
	got.Responses[q.ID] = model.Response{QuestionID: q.ID, Text: "sneaky"}

	fresh, _ := store.Get(ctx, sess.ID)
	if fresh.Questions[0].Text != "original" || len(fresh.Responses) != 0 {
		t.Fatal("Get must return a deep copy")
	}
}
