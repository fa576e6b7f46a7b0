package engine

import (
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// Word-count minimums a solid answer is expected to clear.
const (
	technicalMinWords  = 30
	behavioralMinWords = 50
)

// Follow-up trigger thresholds.
const (
	depthFloor        = 6
	completenessFloor = 6
	accuracyFloor     = 6
	clarityFloor      = 4
)

// Evaluate scores a response against its question on the four quality axes.
// It is pure: the same question and response always yield the same evaluation.
func Evaluate(q model.Question, resp model.Response) model.Evaluation {
	eval := model.Evaluation{
		QuestionID:   resp.QuestionID,
		Depth:        scoreDepth(q, resp),
		Clarity:      scoreClarity(resp),
		Completeness: scoreCompleteness(q, resp),
	}

	if q.Kind == model.QuestionKindTechnical {
		acc := scoreTechnicalAccuracy(q, resp)
		eval.TechnicalAccuracy = &acc
	}

	var reasons []string
	if eval.Depth < depthFloor {
		reasons = append(reasons, "insufficient depth")
	}
	if eval.Completeness < completenessFloor {
		reasons = append(reasons, "incomplete answer")
	}
	if eval.TechnicalAccuracy != nil && *eval.TechnicalAccuracy < accuracyFloor {
		reasons = append(reasons, "technical accuracy concerns")
	}
	if eval.Clarity < clarityFloor {
		reasons = append(reasons, "unclear response")
	}
	if len(reasons) > 0 {
		eval.NeedsFollowUp = true
		eval.FollowUpReason = strings.Join(reasons, "; ")
	}

	return eval
}

// scoreDepth combines a word-count band score — peaking when the answer runs
// one to two times the per-kind minimum — with a technical keyword density
// bonus.
func scoreDepth(q model.Question, resp model.Response) float64 {
	minWords := technicalMinWords
	if q.Kind == model.QuestionKindBehavioral {
		minWords = behavioralMinWords
	}

	ratio := float64(resp.WordCount) / float64(minWords)

	var band float64
	switch {
	case ratio < 0.25:
		band = 1
	case ratio < 0.5:
		band = 2
	case ratio < 0.75:
		band = 3
	case ratio < 1:
		band = 5
	case ratio <= 2:
		band = 7
	case ratio <= 3:
		band = 6
	default:
		band = 5 // Rambling past 3× the minimum stops adding depth.
	}

	terms := accuracyTermsFor(q.Category)
	hits := countTerms(resp.Text, terms) + countTerms(resp.Text, techVocabulary)
	density := float64(hits)
	if density > 3 {
		density = 3
	}

	return clamp(band + density)
}

// scoreClarity starts from a baseline of 5 and rewards logical connectors and
// healthy sentence-length variety, penalizing very short or meandering text.
func scoreClarity(resp model.Response) float64 {
	score := 5.0

	connectors := countTerms(resp.Text, logicalConnectors)
	bonus := float64(connectors)
	if bonus > 3 {
		bonus = 3
	}
	score += bonus

	lengths := sentenceLengths(resp.Text)
	if len(lengths) >= 2 {
		shortest, longest := lengths[0], lengths[0]
		for _, l := range lengths[1:] {
			if l < shortest {
				shortest = l
			}
			if l > longest {
				longest = l
			}
		}
		if spread := longest - shortest; spread >= 3 && spread <= 20 {
			score += 2
		}
	}

	if resp.WordCount < 20 {
		score -= 2
	}
	if resp.WordCount > 300 && connectors < 3 {
		score--
	}

	return clamp(score)
}

// scoreCompleteness measures expected-element coverage when the question
// declares expected elements, otherwise falls back to a problem/solution/
// outcome narrative heuristic.
func scoreCompleteness(q model.Question, resp model.Response) float64 {
	if len(q.ExpectedElements) > 0 {
		matched := 0
		for _, el := range q.ExpectedElements {
			if elementCovered(resp.Text, el) {
				matched++
			}
		}
		if matched == len(q.ExpectedElements) {
			return 10
		}
		return clamp(float64(matched) / float64(len(q.ExpectedElements)) * 10)
	}

	score := 2.0
	if containsAnyTerm(resp.Text, problemMarkers) {
		score += 2
	}
	if containsAnyTerm(resp.Text, solutionMarkers) {
		score += 2
	}
	if containsAnyTerm(resp.Text, outcomeMarkers) {
		score += 2
	}
	switch {
	case resp.WordCount >= 50:
		score += 2
	case resp.WordCount >= 30:
		score++
	}

	return clamp(score)
}

// elementCovered reports whether the response covers one expected element:
// either the full phrase appears, or at least half of a multi-word element's
// words do.
func elementCovered(text, element string) bool {
	element = strings.ToLower(strings.TrimSpace(element))
	if element == "" {
		return false
	}
	if strings.Contains(strings.ToLower(text), element) {
		return true
	}

	parts := strings.Fields(element)
	if len(parts) < 2 {
		return false
	}
	set := wordSet(text)
	present := 0
	for _, p := range parts {
		if set[p] {
			present++
		}
	}
	return present*2 >= len(parts)
}

// scoreTechnicalAccuracy starts at 5 and adjusts by category keyword matches
// plus a bonus for concrete examples.
func scoreTechnicalAccuracy(q model.Question, resp model.Response) float64 {
	score := 5.0

	hits := countTerms(resp.Text, accuracyTermsFor(q.Category))
	adj := float64(hits)
	if adj > 4 {
		adj = 4
	}
	if hits == 0 {
		adj = -1
	}
	score += adj

	if containsAnyTerm(resp.Text, exampleMarkers) {
		score++
	}

	return clamp(score)
}

// accuracyTermsFor returns the category keyword list, defaulting to the
// general technical vocabulary for unknown categories.
func accuracyTermsFor(category string) []string {
	if terms, ok := categoryTechTerms[category]; ok {
		return terms
	}
	return generalTechTerms
}
