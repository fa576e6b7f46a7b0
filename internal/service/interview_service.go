package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/praxise/interview-backend/internal/config"
	"github.com/praxise/interview-backend/internal/engine"
	"github.com/praxise/interview-backend/internal/model"
)

const (
	minutesPerQuestion = 3

	redirectUnknownQuestion = "That question is not part of this interview. Let's continue where we left off."
	redirectOffTopic        = "Let's bring the discussion back to the question that was asked:"
	redirectEndEarlyEmpty   = "Cannot end interview early before answering at least one question. Let's continue with the interview."
)

// InterviewService orchestrates interview sessions: question generation,
// response evaluation, behavior tracking, and finalization.
type InterviewService struct {
	store   SessionStore
	catalog *RoleCatalog
	gen     *engine.Generator
	rdb     *redis.Client
	cfg     *config.Config

	// now is swappable for tests.
	now func() time.Time
}

// NewInterviewService creates a new InterviewService. rdb may be nil; the
// activity registry is then disabled and sessions rely on the store alone.
func NewInterviewService(
	store SessionStore,
	catalog *RoleCatalog,
	gen *engine.Generator,
	rdb *redis.Client,
	cfg *config.Config,
) *InterviewService {
	return &InterviewService{
		store:   store,
		catalog: catalog,
		gen:     gen,
		rdb:     rdb,
		cfg:     cfg,
		now:     time.Now,
	}
}

// CreateSession validates the role and level and creates a session in the
// INITIALIZED state. A provided resume analysis is normalized and attached.
func (s *InterviewService) CreateSession(ctx context.Context, req *model.CreateSessionRequest) (*model.Session, error) {
	profile, err := s.catalog.Resolve(req.Role)
	if err != nil {
		return nil, err
	}
	level, err := s.catalog.ResolveLevel(req.Level)
	if err != nil {
		return nil, err
	}

	mode := model.ModeText
	if strings.EqualFold(req.Mode, string(model.ModeVoice)) {
		mode = model.ModeVoice
	}

	sess, err := s.store.Create(ctx, profile.Slug, level, mode)
	if err != nil {
		return nil, err
	}

	if req.Resume != nil {
		resume := engine.NormalizeResume(req.Resume)
		if err := s.store.AttachResume(ctx, sess.ID, resume); err != nil {
			return nil, err
		}
		sess.Resume = resume
	}
	return sess, nil
}

// Initialize generates the question set, starts the session, and returns the
// first question.
func (s *InterviewService) Initialize(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch sess.Status {
	case model.SessionStatusInitialized:
	case model.SessionStatusInProgress:
		return nil, ErrAlreadyStarted
	default:
		return nil, ErrSessionFinalized
	}

	profile, err := s.catalog.Resolve(sess.Role)
	if err != nil {
		return nil, err
	}

	questions := s.gen.GenerateSet(profile, sess.Level, sess.Resume, sess.DrillTopic)
	if err := s.store.UpdateQuestions(ctx, id, questions); err != nil {
		return nil, err
	}
	if err := s.store.Start(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.UpdateCursor(ctx, id, 1); err != nil {
		return nil, err
	}

	s.appendLog(ctx, id, model.InteractionSessionStarted, fmt.Sprintf("%s interview for %s", sess.Level, profile.Name))
	first := questions[0]
	s.appendLog(ctx, id, model.InteractionQuestionAsked, first.Text)
	s.touchActivity(ctx, id)

	return &first, nil
}

// ProcessResponse records an answer and decides the next interview turn:
// a follow-up, the next primary question, a redirect, or completion.
func (s *InterviewService) ProcessResponse(ctx context.Context, sessionID, questionID uuid.UUID, text string, responseSeconds float64) (model.Action, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return model.Action{}, err
	}
	switch sess.Status {
	case model.SessionStatusInProgress:
	case model.SessionStatusInitialized:
		return model.Action{}, ErrNotStarted
	default:
		return model.Action{}, ErrSessionFinalized
	}

	q := sess.QuestionByID(questionID)
	if q == nil {
		// Unknown question: redirect without touching session state.
		return model.RedirectAction(redirectUnknownQuestion), nil
	}

	resp := model.ParseResponse(questionID, text, s.now(), s.cfg.MaxResponseChars, responseSeconds)

	// Off-topic rambles get redirected before anything is recorded, so the
	// candidate can re-answer the restated question on the next turn.
	if resp.WordCount > 100 && engine.DetectOffTopic(resp, *q) {
		message := fmt.Sprintf("%s %s", redirectOffTopic, q.Text)
		s.appendLog(ctx, sessionID, model.InteractionRedirectIssued, message)
		return model.RedirectAction(message), nil
	}

	if err := s.store.AddResponse(ctx, sessionID, resp); err != nil {
		return model.Action{}, err
	}
	sess.Responses[questionID] = resp
	s.appendLog(ctx, sessionID, model.InteractionResponseGiven, resp.Text)
	sess.Log = append(sess.Log, model.Interaction{Type: model.InteractionResponseGiven, Content: resp.Text, Timestamp: s.now()})

	eval := engine.Evaluate(*q, resp)
	if err := s.store.AddEvaluation(ctx, sessionID, eval); err != nil {
		return model.Action{}, err
	}
	sess.Evaluations[questionID] = eval

	behavior := engine.Classify(s.responseHistory(sess), sess.Log)
	if behavior != sess.Behavior {
		if err := s.store.UpdateBehavior(ctx, sessionID, behavior); err != nil {
			return model.Action{}, err
		}
		sess.Behavior = behavior
	}
	s.touchActivity(ctx, sessionID)

	root := s.rootPrimary(sess, q)
	if fu := s.gen.GenerateFollowUp(root, resp, eval); fu != nil {
		root.FollowUpCount++
		sess.Questions = append(sess.Questions, *fu)
		if err := s.store.UpdateQuestions(ctx, sessionID, sess.Questions); err != nil {
			return model.Action{}, err
		}
		s.appendLog(ctx, sessionID, model.InteractionFollowUpIssued, fu.Text)
		return model.FollowUpAction(fu), nil
	}

	if pending := s.pendingFollowUp(sess); pending != nil {
		s.appendLog(ctx, sessionID, model.InteractionQuestionAsked, pending.Text)
		return model.FollowUpAction(pending), nil
	}

	primary := sess.PrimaryQuestions()
	if sess.Cursor < len(primary) {
		next := primary[sess.Cursor]
		if err := s.store.UpdateCursor(ctx, sessionID, sess.Cursor+1); err != nil {
			return model.Action{}, err
		}
		s.appendLog(ctx, sessionID, model.InteractionQuestionAsked, next.Text)
		return model.NextQuestionAction(&next), nil
	}

	return s.finalize(ctx, sessionID, false)
}

// NextQuestion returns the question the candidate should answer now without
// recording anything: a pending follow-up first, then the primary at the
// cursor.
func (s *InterviewService) NextQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch sess.Status {
	case model.SessionStatusInProgress:
	case model.SessionStatusInitialized:
		return nil, ErrNotStarted
	default:
		return nil, ErrSessionFinalized
	}
	if pending := s.pendingFollowUp(sess); pending != nil {
		return pending, nil
	}
	primary := sess.PrimaryQuestions()
	if sess.Cursor >= 1 && sess.Cursor <= len(primary) {
		current := primary[sess.Cursor-1]
		if _, answered := sess.Responses[current.ID]; !answered {
			return &current, nil
		}
	}
	if sess.Cursor < len(primary) {
		next := primary[sess.Cursor]
		if err := s.store.UpdateCursor(ctx, id, sess.Cursor+1); err != nil {
			return nil, err
		}
		return &next, nil
	}
	return nil, ErrNoMoreQuestions
}

// ShouldContinue reports whether the session still has unanswered questions.
func (s *InterviewService) ShouldContinue(ctx context.Context, id uuid.UUID) (bool, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if sess.Status != model.SessionStatusInProgress {
		return false, nil
	}
	if s.pendingFollowUp(sess) != nil {
		return true, nil
	}
	return sess.AnsweredPrimaryCount() < len(sess.PrimaryQuestions()), nil
}

// CanEndEarly reports whether an early-end request would finalize the
// session rather than redirect.
func (s *InterviewService) CanEndEarly(ctx context.Context, id uuid.UUID) (bool, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return sess.Status == model.SessionStatusInProgress && len(sess.Responses) > 0, nil
}

// EndEarly finalizes a session before all questions are answered. With no
// recorded responses there is nothing to score, so the request redirects.
func (s *InterviewService) EndEarly(ctx context.Context, id uuid.UUID) (model.Action, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Action{}, err
	}
	switch sess.Status {
	case model.SessionStatusInProgress:
	case model.SessionStatusInitialized:
		return model.Action{}, ErrNotStarted
	default:
		return model.Action{}, ErrSessionFinalized
	}

	if len(sess.Responses) == 0 {
		s.appendLog(ctx, id, model.InteractionRedirectIssued, redirectEndEarlyEmpty)
		return model.RedirectAction(redirectEndEarlyEmpty), nil
	}
	return s.finalize(ctx, id, true)
}

// GetProgress reports primary-question progress. Follow-ups never count.
func (s *InterviewService) GetProgress(ctx context.Context, id uuid.UUID) (*model.Progress, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	total := len(sess.PrimaryQuestions())
	answered := sess.AnsweredPrimaryCount()

	p := &model.Progress{
		TotalQuestions:    total,
		AnsweredQuestions: answered,
	}
	if total > 0 {
		pct := float64(answered) / float64(total) * 100
		p.PercentComplete = float64(int(pct*10+0.5)) / 10
	}
	if answered > 0 {
		remaining := (total - answered) * minutesPerQuestion
		p.EstimatedMinutesRemaining = &remaining
	}
	return p, nil
}

// GenerateContinuationPrompt offers follow-on sessions once the interview
// is finalized: a fresh round (same or different role) and topic drills on
// the weakest categories.
func (s *InterviewService) GenerateContinuationPrompt(ctx context.Context, id uuid.UUID) (*model.ContinuationPrompt, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status != model.SessionStatusCompleted && sess.Status != model.SessionStatusEndedEarly {
		return nil, ErrNotFinalized
	}

	profile, err := s.catalog.Resolve(sess.Role)
	if err != nil {
		return nil, err
	}

	prompt := &model.ContinuationPrompt{}
	prompt.Options = append(prompt.Options, model.ContinuationOption{
		Type:        model.ContinuationNewRound,
		Label:       fmt.Sprintf("Another round as %s", profile.Name),
		Role:        sess.Role,
		Level:       sess.Level,
		Description: "Start a fresh interview for the same role and level.",
	})

	for _, other := range s.catalog.List() {
		if other.Slug == sess.Role {
			continue
		}
		prompt.Options = append(prompt.Options, model.ContinuationOption{
			Type:        model.ContinuationNewRound,
			Label:       fmt.Sprintf("Try a different role: %s", other.Name),
			Role:        other.Slug,
			Level:       sess.Level,
			Description: "Start a fresh interview for a different role.",
		})
		break
	}

	for _, topic := range s.weakCategories(sess, 3) {
		prompt.Options = append(prompt.Options, model.ContinuationOption{
			Type:        model.ContinuationTopicDrill,
			Label:       fmt.Sprintf("Drill deeper on %s", topic),
			Role:        sess.Role,
			Level:       sess.Level,
			DrillTopic:  topic,
			Description: "A focused round concentrating on this topic.",
		})
	}

	return prompt, nil
}

// CreateContinuationSession spawns a new INITIALIZED session from a
// finalized one, carrying the mode and resume across.
func (s *InterviewService) CreateContinuationSession(ctx context.Context, req *model.ContinueSessionRequest) (*model.Session, error) {
	originID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	origin, err := s.store.Get(ctx, originID)
	if err != nil {
		return nil, err
	}
	if origin.Status != model.SessionStatusCompleted && origin.Status != model.SessionStatusEndedEarly {
		return nil, ErrNotFinalized
	}

	var drillTopic string
	switch model.ContinuationType(req.Type) {
	case model.ContinuationNewRound:
	case model.ContinuationTopicDrill:
		if strings.TrimSpace(req.DrillTopic) == "" {
			return nil, ErrContinuationFields
		}
		drillTopic = strings.TrimSpace(req.DrillTopic)
	default:
		return nil, ErrContinuationType
	}

	// Both continuation types require the role and level spelled out; the
	// continuation prompt's options carry them, so clients never guess.
	if strings.TrimSpace(req.Role) == "" || strings.TrimSpace(req.Level) == "" {
		return nil, ErrContinuationFields
	}

	profile, err := s.catalog.Resolve(req.Role)
	if err != nil {
		return nil, err
	}
	resolvedLevel, err := s.catalog.ResolveLevel(req.Level)
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Create(ctx, profile.Slug, resolvedLevel, origin.Mode)
	if err != nil {
		return nil, err
	}
	if drillTopic != "" {
		if err := s.store.SetDrillTopic(ctx, sess.ID, drillTopic); err != nil {
			return nil, err
		}
		sess.DrillTopic = drillTopic
	}
	if origin.Resume != nil {
		if err := s.store.AttachResume(ctx, sess.ID, origin.Resume); err != nil {
			return nil, err
		}
		sess.Resume = origin.Resume
	}
	return sess, nil
}

// GetSession returns the full session aggregate.
func (s *InterviewService) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	return s.store.Get(ctx, id)
}

// finalize ends the session and builds the feedback report.
func (s *InterviewService) finalize(ctx context.Context, id uuid.UUID, early bool) (model.Action, error) {
	s.appendLog(ctx, id, model.InteractionSessionFinished, "interview finalized")
	if err := s.store.End(ctx, id, early); err != nil {
		return model.Action{}, err
	}
	s.dropActivity(ctx, id)

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Action{}, err
	}
	profile, err := s.catalog.Resolve(sess.Role)
	if err != nil {
		return model.Action{}, err
	}
	return model.CompleteAction(engine.BuildReport(sess, profile)), nil
}

// rootPrimary walks a follow-up back to the primary question that owns its
// follow-up budget.
func (s *InterviewService) rootPrimary(sess *model.Session, q *model.Question) *model.Question {
	for q.ParentQuestionID != nil {
		parent := sess.QuestionByID(*q.ParentQuestionID)
		if parent == nil {
			break
		}
		q = parent
	}
	return q
}

// pendingFollowUp returns the oldest issued follow-up without a response.
func (s *InterviewService) pendingFollowUp(sess *model.Session) *model.Question {
	for i := range sess.Questions {
		q := &sess.Questions[i]
		if !q.IsFollowUp() {
			continue
		}
		if _, answered := sess.Responses[q.ID]; !answered {
			return q
		}
	}
	return nil
}

// responseHistory returns recorded responses in question order.
func (s *InterviewService) responseHistory(sess *model.Session) []model.Response {
	var history []model.Response
	for _, q := range sess.Questions {
		if r, ok := sess.Responses[q.ID]; ok {
			history = append(history, r)
		}
	}
	return history
}

// weakCategories ranks answered categories by mean core score and returns
// up to limit categories scoring below 7, weakest first.
func (s *InterviewService) weakCategories(sess *model.Session, limit int) []string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, q := range sess.Questions {
		eval, ok := sess.Evaluations[q.ID]
		if !ok || q.Category == "" {
			continue
		}
		sums[q.Category] += eval.CoreMean()
		counts[q.Category]++
	}

	type categoryScore struct {
		category string
		mean     float64
	}
	var weak []categoryScore
	for cat, sum := range sums {
		mean := sum / float64(counts[cat])
		if mean < 7 {
			weak = append(weak, categoryScore{cat, mean})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].mean != weak[j].mean {
			return weak[i].mean < weak[j].mean
		}
		return weak[i].category < weak[j].category
	})

	var topics []string
	for i := 0; i < len(weak) && i < limit; i++ {
		topics = append(topics, weak[i].category)
	}
	return topics
}

// appendLog records an interaction, ignoring store errors; the log is
// advisory input to the behavior classifier, not primary state.
func (s *InterviewService) appendLog(ctx context.Context, id uuid.UUID, t model.InteractionType, content string) {
	_ = s.store.AppendInteraction(ctx, id, model.Interaction{Type: t, Content: content, Timestamp: s.now()})
}

// touchActivity refreshes the session's slot in the active-session registry.
func (s *InterviewService) touchActivity(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	s.rdb.ZAdd(ctx, config.RedisKey.ActiveSessionsKey(), redis.Z{
		Score:  float64(s.now().Unix()),
		Member: id.String(),
	})
}

// dropActivity removes a finalized session from the registry.
func (s *InterviewService) dropActivity(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	s.rdb.ZRem(ctx, config.RedisKey.ActiveSessionsKey(), id.String())
}
