package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praxise/interview-backend/internal/model"
)

func ptr(f float64) *float64 { return &f }

// sessionWith builds a finalized session from parallel question/response/
// evaluation slices.
func sessionWith(questions []model.Question, responses []model.Response, evals []model.Evaluation) *model.Session {
	sess := &model.Session{
		ID:          uuid.New(),
		Role:        "software-engineer",
		Level:       model.LevelMid,
		Status:      model.SessionStatusCompleted,
		Questions:   questions,
		Responses:   make(map[uuid.UUID]model.Response),
		Evaluations: make(map[uuid.UUID]model.Evaluation),
		Behavior:    model.BehaviorStandard,
		CreatedAt:   time.Now(),
	}
	for _, r := range responses {
		sess.Responses[r.QuestionID] = r
	}
	for _, e := range evals {
		sess.Evaluations[e.QuestionID] = e
	}
	return sess
}

func strongSession() *model.Session {
	q1 := techQuestion("databases")
	q2 := behavioralQuestion()

	r1 := respond(q1, strongTechnicalAnswer)
	r2 := respond(q2, `A teammate wanted to rewrite our queue consumer in a new framework.
Because the deadline was close, I proposed we first measure the existing bottleneck. For example,
we profiled the consumer and found the database index was the real problem. As a result we fixed
the index, shipped on time, and the rewrite discussion became unnecessary.`)

	e1 := model.Evaluation{QuestionID: q1.ID, Depth: 9, Clarity: 9, Completeness: 9, TechnicalAccuracy: ptr(9.0)}
	e2 := model.Evaluation{QuestionID: q2.ID, Depth: 8.5, Clarity: 9, Completeness: 8}

	return sessionWith([]model.Question{q1, q2}, []model.Response{r1, r2}, []model.Evaluation{e1, e2})
}

func TestOverallScoreGradeBands(t *testing.T) {
	tests := []struct {
		comm, tech float64
		want       model.Grade
	}{
		{36, 36, model.GradeA}, // 90%
		{32, 32, model.GradeB}, // 80%
		{28, 28, model.GradeC}, // 70%
		{24, 24, model.GradeD}, // 60%
		{20, 20, model.GradeF},
		{40, 34, model.GradeA}, // 0.4*100 + 0.6*85 = 91
	}

	for _, tt := range tests {
		got := OverallScore(model.SectionScore{Total: tt.comm}, model.SectionScore{Total: tt.tech})
		if got.Grade != tt.want {
			t.Errorf("OverallScore(%v, %v) grade = %v (score %v), want %v", tt.comm, tt.tech, got.Grade, got.Score, tt.want)
		}
	}
}

func TestBuildReportBreakdownAndDeterminism(t *testing.T) {
	sess := strongSession()
	profile := testProfile()

	report := BuildReport(sess, profile)
	if len(report.QuestionBreakdown) != 2 {
		t.Fatalf("breakdown length = %d, want 2 (answered questions)", len(report.QuestionBreakdown))
	}
	if report.Summary == "" {
		t.Fatal("summary must not be empty")
	}
	if !strings.Contains(report.Summary, string(report.Overall.Grade)) {
		t.Errorf("summary should name the grade, got %q", report.Summary)
	}

	again := BuildReport(sess, profile)
	if again.Summary != report.Summary || again.Overall != report.Overall {
		t.Error("BuildReport must be deterministic over the same session")
	}
}

func TestBuildReportSectionBounds(t *testing.T) {
	sess := strongSession()
	report := BuildReport(sess, testProfile())

	for _, section := range []model.SectionScore{report.Communication, report.TechnicalFit} {
		if len(section.SubScores) != 4 {
			t.Fatalf("section must have 4 sub-scores, got %d", len(section.SubScores))
		}
		sum := 0.0
		for _, sub := range section.SubScores {
			if sub.Score < 0 || sub.Score > 10 {
				t.Errorf("sub-score %s out of bounds: %v", sub.Name, sub.Score)
			}
			sum += sub.Score
		}
		if diff := section.Total - sum; diff > 0.101 || diff < -0.101 {
			t.Errorf("section total %v does not match sub-score sum %v", section.Total, sum)
		}
	}
}

func TestBuildReportStrengthsAndImprovements(t *testing.T) {
	sess := strongSession()
	report := BuildReport(sess, testProfile())

	// Depth mean 8.75 → depth strength expected.
	foundDepth := false
	for _, s := range report.Strengths {
		if s == strengthPhrases["Depth"] {
			foundDepth = true
		}
	}
	if !foundDepth {
		t.Errorf("high depth should yield the depth strength, got %v", report.Strengths)
	}

	// No evaluation needed a follow-up → the low-follow-up strength applies
	// and the completeness improvement must be absent.
	foundLowFollowUp := false
	for _, s := range report.Strengths {
		if strings.Contains(s, "follow-up") {
			foundLowFollowUp = true
		}
	}
	if !foundLowFollowUp {
		t.Errorf("0%% follow-up rate should yield the low-follow-up strength, got %v", report.Strengths)
	}
	for _, imp := range report.Improvements {
		if imp.Area == "Response Completeness" {
			t.Error("completeness improvement must not appear when no follow-ups were needed")
		}
	}
}

func TestBuildReportCompletenessImprovement(t *testing.T) {
	q1 := techQuestion("databases")
	q2 := techQuestion("system-design")
	r1 := respond(q1, "Short answer one.")
	r2 := respond(q2, "Short answer two.")
	e1 := model.Evaluation{QuestionID: q1.ID, Depth: 2, Clarity: 3, Completeness: 2, TechnicalAccuracy: ptr(3.0), NeedsFollowUp: true, FollowUpReason: "insufficient depth"}
	e2 := model.Evaluation{QuestionID: q2.ID, Depth: 3, Clarity: 3, Completeness: 3, TechnicalAccuracy: ptr(4.0), NeedsFollowUp: true, FollowUpReason: "incomplete answer"}

	sess := sessionWith([]model.Question{q1, q2}, []model.Response{r1, r2}, []model.Evaluation{e1, e2})
	report := BuildReport(sess, testProfile())

	found := false
	for _, imp := range report.Improvements {
		if imp.Area == "Response Completeness" {
			found = true
			if imp.Priority != model.PriorityHigh {
				t.Error("completeness improvement should be high priority")
			}
		}
	}
	if !found {
		t.Errorf("100%% follow-up rate should add the completeness improvement, got %+v", report.Improvements)
	}

	// Depth mean 2.5 < 7 → high-priority depth improvement.
	foundDepth := false
	for _, imp := range report.Improvements {
		if imp.Area == "Depth" && imp.Priority == model.PriorityHigh {
			foundDepth = true
		}
	}
	if !foundDepth {
		t.Error("weak depth should yield a high-priority depth improvement")
	}
}

func TestEvaluateResumeAlignment(t *testing.T) {
	q1 := techQuestion("infrastructure")
	q2 := techQuestion("databases")

	r1 := respond(q1, "I ran our kubernetes clusters for three years, including the upgrade automation.")
	r2 := respond(q2, "Postgres tuning was a big part of my last role.")

	e1 := model.Evaluation{QuestionID: q1.ID, Depth: 7, Clarity: 7, Completeness: 7, TechnicalAccuracy: ptr(7.0)}
	e2 := model.Evaluation{QuestionID: q2.ID, Depth: 3, Clarity: 6, Completeness: 6, TechnicalAccuracy: ptr(6.0)}

	sess := sessionWith([]model.Question{q1, q2}, []model.Response{r1, r2}, []model.Evaluation{e1, e2})
	sess.Resume = &model.ResumeAnalysis{
		Skills: []string{"kubernetes", "postgres", "terraform"},
		Gaps:   []model.ResumeGap{{Skill: "frontend", Importance: "high"}},
		Alignment: model.AlignmentScore{
			Skills: 60, Experience: 60, Education: 60, Overall: 60,
		},
	}

	fb := EvaluateResumeAlignment(sess)

	if len(fb.MatchedSkills) != 1 || fb.MatchedSkills[0] != "kubernetes" {
		t.Errorf("matched = %v, want [kubernetes] (mention with depth ≥ 5)", fb.MatchedSkills)
	}
	// postgres is mentioned but its mentioning response scored depth 3 —
	// a mention alone is not verification.
	wantUnverified := map[string]bool{"postgres": true, "terraform": true}
	if len(fb.UnverifiedSkills) != 2 {
		t.Fatalf("unverified = %v, want postgres and terraform", fb.UnverifiedSkills)
	}
	for _, s := range fb.UnverifiedSkills {
		if !wantUnverified[s] {
			t.Errorf("unexpected unverified skill %q", s)
		}
	}
	if len(fb.MissingSkills) != 1 || fb.MissingSkills[0] != "frontend" {
		t.Errorf("missing = %v, want [frontend]", fb.MissingSkills)
	}

	foundGap := false
	for _, g := range fb.ExperienceGaps {
		if strings.Contains(g, "frontend") {
			foundGap = true
		}
	}
	if !foundGap {
		t.Errorf("high-importance resume gap should appear in experience gaps, got %v", fb.ExperienceGaps)
	}

	if len(fb.Suggestions) < 3 {
		t.Errorf("suggestions must be padded to at least 3, got %d", len(fb.Suggestions))
	}
}

func TestNormalizeResumeDegradesGracefully(t *testing.T) {
	for _, r := range []*model.ResumeAnalysis{nil, {}} {
		got := NormalizeResume(r)
		if got == nil {
			t.Fatal("normalization must never return nil")
		}
		if got.Alignment.Overall >= 50 {
			t.Errorf("empty resume should degrade to a low-alignment record, got %+v", got.Alignment)
		}
	}

	clamped := NormalizeResume(&model.ResumeAnalysis{
		Skills:    []string{"go"},
		Alignment: model.AlignmentScore{Skills: 150, Experience: -10, Education: 50, Overall: 101},
	})
	if clamped.Alignment.Skills != 100 || clamped.Alignment.Experience != 0 || clamped.Alignment.Overall != 100 {
		t.Errorf("alignment parts must clamp to [0,100], got %+v", clamped.Alignment)
	}
}
