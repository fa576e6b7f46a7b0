package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// Per-level base question counts. Each set gets zero or one extra question
// on top of the base, so entry sessions run 5–6 questions, lead 9–10.
var levelBaseCounts = map[model.ExperienceLevel]int{
	model.LevelEntry:  5,
	model.LevelMid:    7,
	model.LevelSenior: 8,
	model.LevelLead:   9,
}

// technicalShare of the question set; the rest is behavioral.
const technicalShare = 0.6

// Caps on resume-derived questions per set.
const (
	maxResumeTechnical  = 2
	maxResumeBehavioral = 1
)

// Generator builds question sets and follow-ups from injected entropy and id
// sources, so the selection policy stays fixed while tests stay reproducible.
type Generator struct {
	rng   Rand
	newID IDGenerator
}

// NewGenerator creates a Generator.
func NewGenerator(rng Rand, newID IDGenerator) *Generator {
	return &Generator{rng: rng, newID: newID}
}

// GenerateSet produces the ordered primary question set for a session.
// The split is 60% technical (rounded up) / 40% behavioral; when a resume
// analysis is present up to 2 technical and 1 behavioral question reference
// it directly. The final set is shuffled so the kinds interleave.
func (g *Generator) GenerateSet(
	profile *model.RoleProfile,
	level model.ExperienceLevel,
	resume *model.ResumeAnalysis,
	drillTopic string,
) []model.Question {
	base, ok := levelBaseCounts[level]
	if !ok {
		base = levelBaseCounts[model.LevelMid]
	}
	total := base + g.rng.Intn(2)
	techCount := int(math.Ceil(float64(total) * technicalShare))
	behavioralCount := total - techCount

	bank := roleBanks[profile.Slug]

	var questions []model.Question

	if resume != nil {
		questions = append(questions, g.resumeTechnicalQuestions(resume, min(maxResumeTechnical, techCount))...)
		questions = append(questions, g.resumeBehavioralQuestions(resume, min(maxResumeBehavioral, behavioralCount))...)
	}

	techFromBank := techCount
	behavioralFromBank := behavioralCount
	for _, q := range questions {
		if q.Kind == model.QuestionKindTechnical {
			techFromBank--
		} else {
			behavioralFromBank--
		}
	}

	questions = append(questions, g.pickFromBank(bank.Technical, model.QuestionKindTechnical, techFromBank, drillTopic)...)
	questions = append(questions, g.pickFromBank(bank.Behavioral, model.QuestionKindBehavioral, behavioralFromBank, drillTopic)...)

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions
}

// pickFromBank selects count templates without replacement, preferring
// templates matching the drill topic when one is set.
func (g *Generator) pickFromBank(templates []questionTemplate, kind model.QuestionKind, count int, drillTopic string) []model.Question {
	if count <= 0 || len(templates) == 0 {
		return nil
	}

	pool := templates
	if drillTopic != "" {
		var drilled []questionTemplate
		for _, t := range templates {
			if strings.EqualFold(t.Category, drillTopic) {
				drilled = append(drilled, t)
			}
		}
		if len(drilled) > 0 {
			// Top up with the rest of the bank if the drill pool runs short.
			for _, t := range templates {
				if !strings.EqualFold(t.Category, drillTopic) {
					drilled = append(drilled, t)
				}
			}
			pool = drilled
		}
	}

	// Fisher–Yates over a copy, then take the head. With a drill topic the
	// drilled templates lead the pool, so shuffle only the tail groups.
	candidates := make([]questionTemplate, len(pool))
	copy(candidates, pool)
	if drillTopic == "" {
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	if count > len(candidates) {
		count = len(candidates)
	}

	out := make([]model.Question, 0, count)
	for _, t := range candidates[:count] {
		out = append(out, model.Question{
			ID:               g.newID(),
			Kind:             kind,
			Text:             t.Text,
			Category:         t.Category,
			Difficulty:       t.Difficulty,
			ExpectedElements: t.ExpectedElements,
		})
	}
	return out
}

var resumeTechnicalTemplates = []string{
	"Your resume lists experience with %s. Walk me through the hardest problem you solved using it.",
	"You mention %s on your resume. How did you decide it was the right tool, and what were its limits?",
	"Tell me about the most complex thing you built with %s and how you validated it worked.",
}

var resumeBehavioralTemplates = []string{
	"Your resume highlights %s — specifically: \"%s\". Tell me more about your role in that.",
	"You call out %s as a strength, citing \"%s\". Walk me through a concrete example.",
}

// resumeTechnicalQuestions derives up to limit technical questions from the
// resume's skill list, each carrying a reference back to the skills section.
func (g *Generator) resumeTechnicalQuestions(resume *model.ResumeAnalysis, limit int) []model.Question {
	if limit <= 0 || len(resume.Skills) == 0 {
		return nil
	}

	skills := make([]string, len(resume.Skills))
	copy(skills, resume.Skills)
	g.rng.Shuffle(len(skills), func(i, j int) {
		skills[i], skills[j] = skills[j], skills[i]
	})
	if limit > len(skills) {
		limit = len(skills)
	}

	out := make([]model.Question, 0, limit)
	for _, skill := range skills[:limit] {
		tpl := resumeTechnicalTemplates[g.rng.Intn(len(resumeTechnicalTemplates))]
		out = append(out, model.Question{
			ID:              g.newID(),
			Kind:            model.QuestionKindTechnical,
			Text:            fmt.Sprintf(tpl, skill),
			Category:        "resume-skills",
			Difficulty:      6,
			ResumeReference: "skills: " + skill,
		})
	}
	return out
}

// resumeBehavioralQuestions derives up to limit behavioral questions from the
// resume's strength evidence.
func (g *Generator) resumeBehavioralQuestions(resume *model.ResumeAnalysis, limit int) []model.Question {
	if limit <= 0 || len(resume.Strengths) == 0 {
		return nil
	}
	if limit > len(resume.Strengths) {
		limit = len(resume.Strengths)
	}

	out := make([]model.Question, 0, limit)
	for i := 0; i < limit; i++ {
		strength := resume.Strengths[g.rng.Intn(len(resume.Strengths))]
		tpl := resumeBehavioralTemplates[g.rng.Intn(len(resumeBehavioralTemplates))]
		out = append(out, model.Question{
			ID:              g.newID(),
			Kind:            model.QuestionKindBehavioral,
			Text:            fmt.Sprintf(tpl, strength.Area, strength.Evidence),
			Category:        "resume-strengths",
			Difficulty:      4,
			ResumeReference: "strengths: " + strength.Area,
		})
	}
	return out
}
