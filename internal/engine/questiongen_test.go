package engine

import (
	"math"
	"testing"

	"github.com/praxise/interview-backend/internal/model"
)

func testProfile() *model.RoleProfile {
	return &model.RoleProfile{
		Slug:         "software-engineer",
		Name:         "Software Engineer",
		Skills:       []string{"go", "postgres", "kubernetes"},
		Competencies: []string{"system design", "debugging"},
	}
}

func testResume() *model.ResumeAnalysis {
	return &model.ResumeAnalysis{
		Sections: map[string]string{"experience": "5 years building backend services"},
		Skills:   []string{"kubernetes", "terraform", "go"},
		Strengths: []model.ResumeStrength{
			{Area: "incident response", Evidence: "led the response to a region-wide outage"},
		},
		Gaps:      []model.ResumeGap{{Skill: "frontend", Importance: "low"}},
		Alignment: model.AlignmentScore{Skills: 80, Experience: 75, Education: 60, Overall: 75},
	}
}

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(NewSeededRand(seed), SequentialIDs())
}

func TestGenerateSetCountsPerLevel(t *testing.T) {
	tests := []struct {
		level    model.ExperienceLevel
		min, max int
	}{
		{model.LevelEntry, 5, 6},
		{model.LevelMid, 7, 8},
		{model.LevelSenior, 8, 9},
		{model.LevelLead, 9, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				set := newTestGenerator(seed).GenerateSet(testProfile(), tt.level, nil, "")
				if len(set) < tt.min || len(set) > tt.max {
					t.Fatalf("seed %d: set size %d outside [%d,%d]", seed, len(set), tt.min, tt.max)
				}
			}
		})
	}
}

func TestGenerateSetSplitAndUniqueness(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		set := newTestGenerator(seed).GenerateSet(testProfile(), model.LevelMid, nil, "")

		tech, behavioral := 0, 0
		seenIDs := make(map[string]bool)
		seenTexts := make(map[string]bool)
		for _, q := range set {
			switch q.Kind {
			case model.QuestionKindTechnical:
				tech++
			case model.QuestionKindBehavioral:
				behavioral++
			}
			if seenIDs[q.ID.String()] {
				t.Fatalf("seed %d: duplicate question id %s", seed, q.ID)
			}
			seenIDs[q.ID.String()] = true
			if seenTexts[q.Text] {
				t.Fatalf("seed %d: repeated question text %q", seed, q.Text)
			}
			seenTexts[q.Text] = true
			if q.ParentQuestionID != nil {
				t.Fatal("generated set must contain only primary questions")
			}
		}

		wantTech := int(math.Ceil(float64(len(set)) * 0.6))
		if tech != wantTech {
			t.Errorf("seed %d: technical count = %d, want %d of %d", seed, tech, wantTech, len(set))
		}
		if behavioral == 0 || tech == 0 {
			t.Errorf("seed %d: set should contain both kinds (tech=%d behavioral=%d)", seed, tech, behavioral)
		}
	}
}

func TestGenerateSetResumeQuestions(t *testing.T) {
	set := newTestGenerator(7).GenerateSet(testProfile(), model.LevelSenior, testResume(), "")

	resumeTech, resumeBehavioral := 0, 0
	for _, q := range set {
		if q.ResumeReference == "" {
			continue
		}
		if q.Kind == model.QuestionKindTechnical {
			resumeTech++
		} else {
			resumeBehavioral++
		}
	}

	if resumeTech == 0 || resumeTech > maxResumeTechnical {
		t.Errorf("resume technical questions = %d, want 1..%d", resumeTech, maxResumeTechnical)
	}
	if resumeBehavioral != 1 {
		t.Errorf("resume behavioral questions = %d, want 1", resumeBehavioral)
	}
}

func TestGenerateSetDeterministicPerSeed(t *testing.T) {
	a := newTestGenerator(42).GenerateSet(testProfile(), model.LevelMid, testResume(), "")
	b := newTestGenerator(42).GenerateSet(testProfile(), model.LevelMid, testResume(), "")

	if len(a) != len(b) {
		t.Fatalf("same seed produced different sizes: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Text != b[i].Text || a[i].Kind != b[i].Kind {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, a[i].Text, b[i].Text)
		}
	}
}

func TestGenerateSetDrillTopicPreference(t *testing.T) {
	set := newTestGenerator(3).GenerateSet(testProfile(), model.LevelEntry, nil, "system-design")

	drilled := 0
	for _, q := range set {
		if q.Category == "system-design" {
			drilled++
		}
	}
	if drilled == 0 {
		t.Error("drill session should favor questions from the drill category")
	}
}
