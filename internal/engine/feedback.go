package engine

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/praxise/interview-backend/internal/model"
)

// Section and overall scores share the same percentage grade bands.
func gradeFor(pct float64) model.Grade {
	switch {
	case pct >= 90:
		return model.GradeA
	case pct >= 80:
		return model.GradeB
	case pct >= 70:
		return model.GradeC
	case pct >= 60:
		return model.GradeD
	default:
		return model.GradeF
	}
}

const sectionMax = 40.0

// BuildReport synthesizes the final feedback report from finalized session
// state. Pure: it never mutates the session and two calls yield identical
// reports.
func BuildReport(sess *model.Session, profile *model.RoleProfile) *model.FeedbackReport {
	comm := ScoreCommunication(sess)
	tech := ScoreTechnicalFit(sess, profile)
	overall := OverallScore(comm, tech)

	evals := answeredEvaluations(sess)
	followUpRate := followUpShare(evals)

	strengths := identifyStrengths(comm, tech, evals, followUpRate, overall.Score)
	improvements := generateImprovements(comm, tech, followUpRate)

	report := &model.FeedbackReport{
		SessionID:         sess.ID,
		Communication:     comm,
		TechnicalFit:      tech,
		Overall:           overall,
		Strengths:         strengths,
		Improvements:      improvements,
		QuestionBreakdown: buildBreakdown(sess),
	}
	if sess.Resume != nil {
		report.ResumeAlignment = EvaluateResumeAlignment(sess)
	}
	report.Summary = buildSummary(overall, strengths, improvements)
	return report
}

// ScoreCommunication produces the four communication sub-scores (0–10 each,
// 0–40 total): clarity, articulation, structure, professionalism.
func ScoreCommunication(sess *model.Session) model.SectionScore {
	evals := answeredEvaluations(sess)
	responses := answeredResponses(sess)

	clarity := meanOf(evals, func(e model.Evaluation) float64 { return e.Clarity })

	return buildSection([]model.SubScore{
		{Name: "Clarity", Score: clarity},
		{Name: "Articulation", Score: scoreArticulation(responses)},
		{Name: "Structure", Score: scoreStructure(responses)},
		{Name: "Professionalism", Score: scoreProfessionalism(responses)},
	})
}

// ScoreTechnicalFit produces the four technical sub-scores: depth, accuracy,
// relevance to the role's declared skills, and problem solving.
func ScoreTechnicalFit(sess *model.Session, profile *model.RoleProfile) model.SectionScore {
	evals := answeredEvaluations(sess)
	responses := answeredResponses(sess)

	depth := meanOf(evals, func(e model.Evaluation) float64 { return e.Depth })

	accuracy, haveAccuracy := meanAccuracy(evals)
	if !haveAccuracy {
		accuracy = depth // No technical questions answered: fall back to depth.
	}

	problemSolving := meanOf(evals, func(e model.Evaluation) float64 { return e.Completeness })

	return buildSection([]model.SubScore{
		{Name: "Depth", Score: depth},
		{Name: "Accuracy", Score: accuracy},
		{Name: "Relevance", Score: scoreRelevance(responses, profile)},
		{Name: "Problem Solving", Score: problemSolving},
	})
}

// OverallScore weights communication at 40% and technical fit at 60% on a
// 0–100 scale.
func OverallScore(comm, tech model.SectionScore) model.OverallScore {
	weighted := 0.4*(comm.Total/sectionMax*100) + 0.6*(tech.Total/sectionMax*100)
	weighted = math.Round(weighted*10) / 10
	return model.OverallScore{Score: weighted, Grade: gradeFor(weighted)}
}

func buildSection(subs []model.SubScore) model.SectionScore {
	total := 0.0
	for i := range subs {
		subs[i].Score = math.Round(clamp(subs[i].Score)*10) / 10
		total += subs[i].Score
	}
	total = math.Round(total*10) / 10
	return model.SectionScore{
		SubScores: subs,
		Total:     total,
		Grade:     gradeFor(total / sectionMax * 100),
	}
}

// scoreArticulation rewards vocabulary richness and technical wording,
// penalizing filler words.
func scoreArticulation(responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}

	richness := 0.0
	fillers := 0
	techPresent := false
	for _, r := range responses {
		richness += uniqueWordRatio(r.Text)
		fillers += countTerms(r.Text, fillerWords)
		if containsAnyTerm(r.Text, generalTechTerms) || containsAnyTerm(r.Text, techVocabulary) {
			techPresent = true
		}
	}
	richness /= float64(len(responses))

	score := 3 + richness*5
	if techPresent {
		score++
	}
	penalty := float64(fillers) * 0.5
	if penalty > 3 {
		penalty = 3
	}
	return clamp(score - penalty)
}

// scoreStructure rewards connector density and multi-sentence answers.
func scoreStructure(responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}

	connectors := 0
	sentences := 0
	for _, r := range responses {
		connectors += countTerms(r.Text, logicalConnectors)
		sentences += len(sentenceLengths(r.Text))
	}
	perResponse := float64(connectors) / float64(len(responses))
	meanSentences := float64(sentences) / float64(len(responses))

	score := 4.0
	score += math.Min(4, perResponse*2)
	if meanSentences >= 2 {
		score++
	}
	if meanSentences >= 4 {
		score++
	}
	return clamp(score)
}

// scoreProfessionalism starts at 8 and deducts for casual phrasing, very
// short answers, and missing capitalization.
func scoreProfessionalism(responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}

	score := 8.0

	casual := 0
	short := 0
	uncapitalized := 0
	for _, r := range responses {
		casual += countTerms(r.Text, casualPhrases)
		if r.WordCount < 10 {
			short++
		}
		if first := firstLetter(r.Text); first != 0 && !unicode.IsUpper(first) {
			uncapitalized++
		}
	}

	penalty := float64(casual)
	if penalty > 3 {
		penalty = 3
	}
	score -= penalty

	n := float64(len(responses))
	if float64(short)/n > 0.3 {
		score -= 2
	}
	if float64(uncapitalized)/n > 0.3 {
		score--
	}
	return clamp(score)
}

// scoreRelevance rewards mentions of the role's declared skills and
// competencies across the answers.
func scoreRelevance(responses []model.Response, profile *model.RoleProfile) float64 {
	if len(responses) == 0 {
		return 0
	}

	terms := append(append([]string{}, profile.Skills...), profile.Competencies...)
	for i := range terms {
		terms[i] = strings.ToLower(terms[i])
	}

	mentions := 0
	for _, r := range responses {
		mentions += countTerms(r.Text, terms)
	}
	return clamp(3 + math.Min(7, float64(mentions)))
}

// Advice text per deficient sub-score, keyed by sub-score name.
var improvementAdvice = map[string]string{
	"Clarity":         "Lead with your main point, then support it. Shorter sentences with explicit connectors read far clearer.",
	"Articulation":    "Trim filler words and vary your vocabulary; precise technical terms carry more weight than hedging.",
	"Structure":       "Organize answers as situation, action, result. Connectors like \"because\" and \"as a result\" signal your reasoning.",
	"Professionalism": "Keep a professional register: full sentences, capitalization, and no shorthand.",
	"Depth":           "Go beyond what you did into how and why — name the mechanisms, not just the outcomes.",
	"Accuracy":        "Ground technical claims in correct terminology and concrete examples from systems you've worked on.",
	"Relevance":       "Tie your answers back to the skills this role calls for; generic answers score lower than targeted ones.",
	"Problem Solving": "Cover the full arc: the problem, your approach, and the measurable outcome.",
}

// highPriorityAreas get HIGH improvement priority; every other deficient
// sub-score is MEDIUM.
var highPriorityAreas = map[string]bool{
	"Structure":       true,
	"Depth":           true,
	"Accuracy":        true,
	"Problem Solving": true,
}

const deficiencyFloor = 7.0

// generateImprovements emits one entry per sub-score below 7, plus a
// completeness entry when over half the evaluations triggered a follow-up.
func generateImprovements(comm, tech model.SectionScore, followUpRate float64) []model.Improvement {
	var out []model.Improvement
	for _, sub := range append(append([]model.SubScore{}, comm.SubScores...), tech.SubScores...) {
		if sub.Score >= deficiencyFloor {
			continue
		}
		priority := model.PriorityMedium
		if highPriorityAreas[sub.Name] {
			priority = model.PriorityHigh
		}
		out = append(out, model.Improvement{
			Area:     sub.Name,
			Advice:   improvementAdvice[sub.Name],
			Priority: priority,
		})
	}

	if followUpRate > 0.5 {
		out = append(out, model.Improvement{
			Area:     "Response Completeness",
			Advice:   "Most answers needed a follow-up to get the full picture. Aim to cover the problem, your approach, and the outcome on the first pass.",
			Priority: model.PriorityHigh,
		})
	}
	return out
}

// Strength phrasing per strong sub-score.
var strengthPhrases = map[string]string{
	"Clarity":         "Communicates ideas clearly and directly",
	"Articulation":    "Articulate, with a precise and varied vocabulary",
	"Structure":       "Structures answers logically from problem to result",
	"Professionalism": "Consistently professional tone",
	"Depth":           "Strong technical depth — explains the how, not just the what",
	"Accuracy":        "Technically accurate with well-grounded terminology",
	"Relevance":       "Keeps answers highly relevant to the role's core skills",
	"Problem Solving": "Strong problem-solving narrative across answers",
}

const strengthFloor = 8.0

// identifyStrengths emits one strength per sub-score of 8 or better, plus
// consistency and low-follow-up strengths, with a generic fallback for
// decent overall performances that matched nothing specific.
func identifyStrengths(comm, tech model.SectionScore, evals []model.Evaluation, followUpRate, overall float64) []string {
	var out []string
	for _, sub := range append(append([]model.SubScore{}, comm.SubScores...), tech.SubScores...) {
		if sub.Score >= strengthFloor {
			out = append(out, strengthPhrases[sub.Name])
		}
	}

	if len(evals) > 0 {
		consistent := 0
		for _, e := range evals {
			if e.Depth >= 8 && e.Clarity >= 8 && e.Completeness >= 8 {
				consistent++
			}
		}
		if float64(consistent)/float64(len(evals)) >= 0.7 {
			out = append(out, "Consistently high quality across all answers")
		}
		if followUpRate <= 0.2 {
			out = append(out, "Answers rarely needed follow-up — complete on the first pass")
		}
	}

	if len(out) == 0 && overall >= 70 {
		out = append(out, "Solid overall interview performance")
	}
	return out
}

// EvaluateResumeAlignment verifies resume claims against interview evidence.
// A skill is matched only when some response mentions it AND the mentioning
// responses averaged depth ≥ 5 — a bare mention is not verification.
func EvaluateResumeAlignment(sess *model.Session) *model.ResumeAlignmentFeedback {
	resume := sess.Resume
	fb := &model.ResumeAlignmentFeedback{}

	meanDepthAll := 0.0
	evals := answeredEvaluations(sess)
	if len(evals) > 0 {
		meanDepthAll = meanOf(evals, func(e model.Evaluation) float64 { return e.Depth })
	}

	for _, skill := range resume.Skills {
		depthSum, mentions := 0.0, 0
		for qid, r := range sess.Responses {
			if !containsTerm(r.Text, strings.ToLower(skill)) {
				continue
			}
			if e, ok := sess.Evaluations[qid]; ok {
				depthSum += e.Depth
				mentions++
			}
		}
		if mentions > 0 && depthSum/float64(mentions) >= 5 {
			fb.MatchedSkills = append(fb.MatchedSkills, skill)
		} else {
			fb.UnverifiedSkills = append(fb.UnverifiedSkills, skill)
		}
	}

	for _, gap := range resume.Gaps {
		fb.MissingSkills = append(fb.MissingSkills, gap.Skill)
		if strings.EqualFold(gap.Importance, "high") {
			fb.ExperienceGaps = append(fb.ExperienceGaps, fmt.Sprintf("Resume gap in %s (high importance for this role)", gap.Skill))
		}
	}

	if acc, ok := meanAccuracy(evals); ok && acc < 6 {
		fb.ExperienceGaps = append(fb.ExperienceGaps, "Technical accuracy in the interview fell below the expected bar")
	}
	if len(evals) > 0 && meanOf(evals, func(e model.Evaluation) float64 { return e.Completeness }) < 6 {
		fb.ExperienceGaps = append(fb.ExperienceGaps, "Answers often left out parts of the expected ground")
	}

	switch {
	case resume.Alignment.Overall < 50:
		fb.Suggestions = append(fb.Suggestions, "Your resume shows limited alignment with this role — consider targeting roles closer to your demonstrated experience, or closing the highlighted gaps first.")
	case resume.Alignment.Overall < 70:
		fb.Suggestions = append(fb.Suggestions, "Your resume shows moderate alignment with this role — emphasize the overlapping skills and address the gaps directly in your materials.")
	}
	if len(fb.MatchedSkills) > 0 {
		fb.Suggestions = append(fb.Suggestions, fmt.Sprintf("You backed up %d resume skill(s) with substantive answers — keep those front and center.", len(fb.MatchedSkills)))
	}
	if len(fb.UnverifiedSkills) > 0 {
		fb.Suggestions = append(fb.Suggestions, fmt.Sprintf("%d skill(s) listed on your resume never came up convincingly — prepare concrete stories for each before the next interview.", len(fb.UnverifiedSkills)))
	}
	if meanDepthAll >= 7 {
		fb.Suggestions = append(fb.Suggestions, "Your answer depth supports the experience your resume claims.")
	} else {
		fb.Suggestions = append(fb.Suggestions, "Practice answering with more depth — interviewers verify resume claims through the detail you can produce on demand.")
	}
	for _, generic := range []string{
		"Quantify achievements on your resume so interview stories map directly to listed results.",
		"Keep the resume's skill list limited to what you can discuss in depth for several minutes.",
	} {
		if len(fb.Suggestions) >= 3 {
			break
		}
		fb.Suggestions = append(fb.Suggestions, generic)
	}

	return fb
}

// buildBreakdown produces the per-question report lines, in question order,
// for answered questions only.
func buildBreakdown(sess *model.Session) []model.QuestionReview {
	var out []model.QuestionReview
	for _, q := range sess.Questions {
		eval, ok := sess.Evaluations[q.ID]
		if !ok {
			continue
		}
		out = append(out, model.QuestionReview{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Kind:         q.Kind,
			Category:     q.Category,
			Evaluation:   eval,
			Remark:       remarkFor(eval),
		})
	}
	return out
}

func remarkFor(e model.Evaluation) string {
	switch mean := e.CoreMean(); {
	case mean >= 8:
		return "Strong answer — clear, deep, and complete."
	case mean >= 6:
		return "Solid answer with room to go deeper."
	case mean >= 4:
		return "Adequate, but missed several expected points."
	default:
		return "Weak answer — revisit this topic."
	}
}

var gradeOpeners = map[model.Grade]string{
	model.GradeA: "Excellent interview.",
	model.GradeB: "Strong interview.",
	model.GradeC: "A reasonable interview with clear room to improve.",
	model.GradeD: "This interview surfaced significant gaps.",
	model.GradeF: "This interview did not demonstrate readiness for the role.",
}

// buildSummary assembles the narrative: grade opener, up to three strengths,
// up to three high-priority improvements.
func buildSummary(overall model.OverallScore, strengths []string, improvements []model.Improvement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Overall score: %.1f/100 (grade %s).", gradeOpeners[overall.Grade], overall.Score, overall.Grade)

	if len(strengths) > 0 {
		n := min(3, len(strengths))
		b.WriteString(" Strengths: ")
		b.WriteString(strings.Join(strengths[:n], "; "))
		b.WriteString(".")
	}

	var high []string
	for _, imp := range improvements {
		if imp.Priority == model.PriorityHigh {
			high = append(high, imp.Area)
		}
		if len(high) == 3 {
			break
		}
	}
	if len(high) > 0 {
		b.WriteString(" Priority focus areas: ")
		b.WriteString(strings.Join(high, "; "))
		b.WriteString(".")
	}

	return b.String()
}

// ─── shared helpers ─────────────────────────────────────────────────────────

func answeredEvaluations(sess *model.Session) []model.Evaluation {
	var out []model.Evaluation
	for _, q := range sess.Questions {
		if e, ok := sess.Evaluations[q.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

func answeredResponses(sess *model.Session) []model.Response {
	var out []model.Response
	for _, q := range sess.Questions {
		if r, ok := sess.Responses[q.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func meanOf(evals []model.Evaluation, pick func(model.Evaluation) float64) float64 {
	if len(evals) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range evals {
		sum += pick(e)
	}
	return sum / float64(len(evals))
}

func meanAccuracy(evals []model.Evaluation) (float64, bool) {
	sum, n := 0.0, 0
	for _, e := range evals {
		if e.TechnicalAccuracy != nil {
			sum += *e.TechnicalAccuracy
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func followUpShare(evals []model.Evaluation) float64 {
	if len(evals) == 0 {
		return 0
	}
	n := 0
	for _, e := range evals {
		if e.NeedsFollowUp {
			n++
		}
	}
	return float64(n) / float64(len(evals))
}

func firstLetter(s string) rune {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return 0
}
