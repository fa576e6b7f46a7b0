package presenter

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/praxise/interview-backend/internal/model"
)

func sampleQuestion(followUp bool) *model.Question {
	q := &model.Question{
		ID:   uuid.New(),
		Kind: model.QuestionKindTechnical,
		Text: "How would you design a rate limiter?",
	}
	if followUp {
		parent := uuid.New()
		q.ParentQuestionID = &parent
	}
	return q
}

func sampleReport() *model.FeedbackReport {
	return &model.FeedbackReport{
		SessionID:     uuid.New(),
		Communication: model.SectionScore{Total: 30, Grade: model.GradeB},
		TechnicalFit:  model.SectionScore{Total: 28, Grade: model.GradeC},
		Overall:       model.OverallScore{Score: 72.5, Grade: model.GradeC},
		Strengths:     []string{"Clear and articulate communication"},
		Improvements: []model.Improvement{
			{Area: "Answer Depth", Advice: "Go deeper.", Priority: model.PriorityHigh},
		},
		Summary: "Solid performance overall.",
	}
}

func TestForMode(t *testing.T) {
	if got := ForMode(model.ModeVoice).Mode(); got != model.ModeVoice {
		t.Fatalf("ForMode(VOICE).Mode() = %s", got)
	}
	if got := ForMode(model.ModeText).Mode(); got != model.ModeText {
		t.Fatalf("ForMode(TEXT).Mode() = %s", got)
	}
	// Unknown modes fall back to text.
	if got := ForMode(model.InteractionMode("BRAILLE")).Mode(); got != model.ModeText {
		t.Fatalf("unknown mode fallback = %s", got)
	}
}

func TestRenderQuestionIncludesText(t *testing.T) {
	q := sampleQuestion(false)
	for _, p := range []Presenter{&TextPresenter{}, &VoicePresenter{}} {
		out := p.RenderQuestion(q, model.BehaviorStandard)
		if !strings.Contains(out, q.Text) {
			t.Errorf("%s render missing question text: %q", p.Mode(), out)
		}
	}
}

func TestRenderFollowUpIsMarked(t *testing.T) {
	q := sampleQuestion(true)
	text := (&TextPresenter{}).RenderQuestion(q, model.BehaviorStandard)
	if !strings.Contains(text, "Following up on that:") {
		t.Errorf("text follow-up not marked: %q", text)
	}
	voice := (&VoicePresenter{}).RenderQuestion(q, model.BehaviorStandard)
	if !strings.Contains(voice, "Let me follow up on that.") {
		t.Errorf("voice follow-up not marked: %q", voice)
	}
}

func TestVoiceRenderHasNoLineBreaks(t *testing.T) {
	out := (&VoicePresenter{}).RenderQuestion(sampleQuestion(false), model.BehaviorConfused)
	if strings.ContainsAny(out, "\n\t") {
		t.Fatalf("voice output must be flat: %q", out)
	}
}

func TestFeedbackIdenticalAcrossModes(t *testing.T) {
	report := sampleReport()
	text := (&TextPresenter{}).RenderFeedback(report)
	voice := (&VoicePresenter{}).RenderFeedback(report)
	if text != voice {
		t.Fatal("feedback must render identically in every mode")
	}
	for _, want := range []string{"72.5", "Clear and articulate communication", "Answer Depth", "Solid performance overall."} {
		if !strings.Contains(text, want) {
			t.Errorf("feedback missing %q", want)
		}
	}
}
