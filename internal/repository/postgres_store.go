package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praxise/interview-backend/internal/model"
	"github.com/praxise/interview-backend/internal/service"
)

// PostgresSessionStore implements service.SessionStore over pgx.
type PostgresSessionStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionStore creates a new PostgresSessionStore.
func NewPostgresSessionStore(pool *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{pool: pool}
}

// Create inserts a new INITIALIZED session.
func (s *PostgresSessionStore) Create(ctx context.Context, role string, level model.ExperienceLevel, mode model.InteractionMode) (*model.Session, error) {
	sess := &model.Session{
		ID:          uuid.New(),
		Role:        role,
		Level:       level,
		Mode:        mode,
		Status:      model.SessionStatusInitialized,
		Responses:   make(map[uuid.UUID]model.Response),
		Evaluations: make(map[uuid.UUID]model.Evaluation),
		Behavior:    model.BehaviorStandard,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO interview_sessions (id, role, level, mode, status, behavior)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		sess.ID, sess.Role, sess.Level, sess.Mode, sess.Status, sess.Behavior,
	).Scan(&sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// Get assembles the full session aggregate.
func (s *PostgresSessionStore) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	sess := &model.Session{
		ID:          id,
		Responses:   make(map[uuid.UUID]model.Response),
		Evaluations: make(map[uuid.UUID]model.Evaluation),
	}

	var resumeRaw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT role, level, mode, status, drill_topic, resume, behavior, cursor_pos,
		        created_at, started_at, ended_at
		 FROM interview_sessions WHERE id = $1`, id,
	).Scan(&sess.Role, &sess.Level, &sess.Mode, &sess.Status, &sess.DrillTopic,
		&resumeRaw, &sess.Behavior, &sess.Cursor, &sess.CreatedAt, &sess.StartedAt, &sess.EndedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if len(resumeRaw) > 0 {
		var resume model.ResumeAnalysis
		if err := json.Unmarshal(resumeRaw, &resume); err != nil {
			return nil, fmt.Errorf("decode resume: %w", err)
		}
		sess.Resume = &resume
	}

	if err := s.loadQuestions(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.loadResponses(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.loadEvaluations(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.loadInteractions(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *PostgresSessionStore) loadQuestions(ctx context.Context, sess *model.Session) error {
	rows, err := s.pool.Query(ctx,
		`SELECT id, kind, text, category, difficulty, resume_reference,
		        expected_elements, parent_question_id, follow_up_count
		 FROM session_questions WHERE session_id = $1 ORDER BY position`, sess.ID)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q model.Question
		var elementsRaw []byte
		if err := rows.Scan(&q.ID, &q.Kind, &q.Text, &q.Category, &q.Difficulty,
			&q.ResumeReference, &elementsRaw, &q.ParentQuestionID, &q.FollowUpCount); err != nil {
			return fmt.Errorf("scan question: %w", err)
		}
		if len(elementsRaw) > 0 {
			if err := json.Unmarshal(elementsRaw, &q.ExpectedElements); err != nil {
				return fmt.Errorf("decode expected elements: %w", err)
			}
		}
		sess.Questions = append(sess.Questions, q)
	}
	return rows.Err()
}

func (s *PostgresSessionStore) loadResponses(ctx context.Context, sess *model.Session) error {
	rows, err := s.pool.Query(ctx,
		`SELECT question_id, text, submitted_at, word_count, response_seconds
		 FROM session_responses WHERE session_id = $1`, sess.ID)
	if err != nil {
		return fmt.Errorf("load responses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Response
		if err := rows.Scan(&r.QuestionID, &r.Text, &r.SubmittedAt, &r.WordCount, &r.ResponseSeconds); err != nil {
			return fmt.Errorf("scan response: %w", err)
		}
		sess.Responses[r.QuestionID] = r
	}
	return rows.Err()
}

func (s *PostgresSessionStore) loadEvaluations(ctx context.Context, sess *model.Session) error {
	rows, err := s.pool.Query(ctx,
		`SELECT question_id, depth, clarity, completeness, technical_accuracy,
		        needs_follow_up, follow_up_reason
		 FROM session_evaluations WHERE session_id = $1`, sess.ID)
	if err != nil {
		return fmt.Errorf("load evaluations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e model.Evaluation
		if err := rows.Scan(&e.QuestionID, &e.Depth, &e.Clarity, &e.Completeness,
			&e.TechnicalAccuracy, &e.NeedsFollowUp, &e.FollowUpReason); err != nil {
			return fmt.Errorf("scan evaluation: %w", err)
		}
		sess.Evaluations[e.QuestionID] = e
	}
	return rows.Err()
}

func (s *PostgresSessionStore) loadInteractions(ctx context.Context, sess *model.Session) error {
	rows, err := s.pool.Query(ctx,
		`SELECT type, content, created_at
		 FROM session_interactions WHERE session_id = $1 ORDER BY id`, sess.ID)
	if err != nil {
		return fmt.Errorf("load interactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it model.Interaction
		if err := rows.Scan(&it.Type, &it.Content, &it.Timestamp); err != nil {
			return fmt.Errorf("scan interaction: %w", err)
		}
		sess.Log = append(sess.Log, it)
	}
	return rows.Err()
}

// Exists checks session presence without assembling the aggregate.
func (s *PostgresSessionStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM interview_sessions WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// Delete removes the session and, via cascades, all attached records.
func (s *PostgresSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM interview_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrSessionNotFound
	}
	return nil
}

// ListActive returns ids of all IN_PROGRESS sessions.
func (s *PostgresSessionStore) ListActive(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id FROM interview_sessions WHERE status = $1`, model.SessionStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AttachResume stores the resume analysis; rejected once the session has
// left INITIALIZED.
func (s *PostgresSessionStore) AttachResume(ctx context.Context, id uuid.UUID, resume *model.ResumeAnalysis) error {
	raw, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	return s.guardedUpdate(ctx, id,
		`UPDATE interview_sessions SET resume = $2 WHERE id = $1 AND status = 'INITIALIZED'`,
		service.ErrInvalidState, raw)
}

// SetDrillTopic tags a fresh continuation session with its drill topic.
func (s *PostgresSessionStore) SetDrillTopic(ctx context.Context, id uuid.UUID, topic string) error {
	return s.guardedUpdate(ctx, id,
		`UPDATE interview_sessions SET drill_topic = $2 WHERE id = $1 AND status = 'INITIALIZED'`,
		service.ErrInvalidState, topic)
}

// UpdateQuestions upserts the full question list, preserving order.
func (s *PostgresSessionStore) UpdateQuestions(ctx context.Context, id uuid.UUID, questions []model.Question) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return service.ErrSessionNotFound
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for pos, q := range questions {
		var elementsRaw []byte
		if len(q.ExpectedElements) > 0 {
			if elementsRaw, err = json.Marshal(q.ExpectedElements); err != nil {
				return fmt.Errorf("encode expected elements: %w", err)
			}
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO session_questions
			   (id, session_id, position, kind, text, category, difficulty,
			    resume_reference, expected_elements, parent_question_id, follow_up_count)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (id) DO UPDATE
			   SET position = EXCLUDED.position,
			       follow_up_count = EXCLUDED.follow_up_count`,
			q.ID, id, pos, q.Kind, q.Text, q.Category, q.Difficulty,
			q.ResumeReference, elementsRaw, q.ParentQuestionID, q.FollowUpCount)
		if err != nil {
			return fmt.Errorf("upsert question: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// AddResponse records an answer; one per question, IN_PROGRESS sessions only.
func (s *PostgresSessionStore) AddResponse(ctx context.Context, id uuid.UUID, resp model.Response) error {
	if err := s.requireInProgress(ctx, id); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO session_responses (question_id, session_id, text, submitted_at, word_count, response_seconds)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (question_id) DO NOTHING`,
		resp.QuestionID, id, resp.Text, resp.SubmittedAt, resp.WordCount, resp.ResponseSeconds)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrDuplicateAnswer
	}
	return nil
}

// AddEvaluation records the scorecard for a response.
func (s *PostgresSessionStore) AddEvaluation(ctx context.Context, id uuid.UUID, eval model.Evaluation) error {
	if err := s.requireInProgress(ctx, id); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO session_evaluations
		   (question_id, session_id, depth, clarity, completeness, technical_accuracy, needs_follow_up, follow_up_reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (question_id) DO NOTHING`,
		eval.QuestionID, id, eval.Depth, eval.Clarity, eval.Completeness,
		eval.TechnicalAccuracy, eval.NeedsFollowUp, eval.FollowUpReason)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// UpdateBehavior stores the current behavior category.
func (s *PostgresSessionStore) UpdateBehavior(ctx context.Context, id uuid.UUID, behavior model.BehaviorCategory) error {
	return s.guardedUpdate(ctx, id,
		`UPDATE interview_sessions SET behavior = $2 WHERE id = $1`,
		nil, behavior)
}

// UpdateCursor advances the progress cursor; it never moves backwards.
func (s *PostgresSessionStore) UpdateCursor(ctx context.Context, id uuid.UUID, cursor int) error {
	return s.guardedUpdate(ctx, id,
		`UPDATE interview_sessions SET cursor_pos = $2 WHERE id = $1 AND cursor_pos <= $2`,
		service.ErrInvalidState, cursor)
}

// AppendInteraction appends to the session's interaction log.
func (s *PostgresSessionStore) AppendInteraction(ctx context.Context, id uuid.UUID, entry model.Interaction) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return service.ErrSessionNotFound
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO session_interactions (session_id, type, content, created_at)
		 VALUES ($1, $2, $3, $4)`,
		id, entry.Type, entry.Content, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// Start transitions INITIALIZED → IN_PROGRESS.
func (s *PostgresSessionStore) Start(ctx context.Context, id uuid.UUID) error {
	return s.guardedUpdate(ctx, id,
		`UPDATE interview_sessions
		 SET status = 'IN_PROGRESS', started_at = NOW()
		 WHERE id = $1 AND status = 'INITIALIZED'`,
		service.ErrAlreadyStarted)
}

// End finalizes an IN_PROGRESS session.
func (s *PostgresSessionStore) End(ctx context.Context, id uuid.UUID, early bool) error {
	status := model.SessionStatusCompleted
	if early {
		status = model.SessionStatusEndedEarly
	}
	return s.guardedUpdate(ctx, id,
		`UPDATE interview_sessions
		 SET status = $2, ended_at = NOW()
		 WHERE id = $1 AND status = 'IN_PROGRESS'`,
		service.ErrInvalidState, status)
}

// guardedUpdate runs a conditional UPDATE; zero affected rows means either a
// missing session (not-found) or a failed state guard (guardErr).
func (s *PostgresSessionStore) guardedUpdate(ctx context.Context, id uuid.UUID, query string, guardErr error, args ...any) error {
	fullArgs := append([]any{id}, args...)
	tag, err := s.pool.Exec(ctx, query, fullArgs...)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return service.ErrSessionNotFound
	}
	if guardErr != nil {
		return guardErr
	}
	return nil
}

// requireInProgress verifies the session exists and is IN_PROGRESS.
func (s *PostgresSessionStore) requireInProgress(ctx context.Context, id uuid.UUID) error {
	var status model.SessionStatus
	err := s.pool.QueryRow(ctx,
		`SELECT status FROM interview_sessions WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return service.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("check status: %w", err)
	}
	if status != model.SessionStatusInProgress {
		return service.ErrInvalidState
	}
	return nil
}
