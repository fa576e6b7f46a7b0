package engine

import (
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// Classification thresholds: fraction of the response history that must
// exhibit a signal before the category applies.
const (
	confusedShare  = 0.3
	efficientShare = 0.7
	chattyShare    = 0.5
)

// offTopicOverlapFloor is the minimum keyword overlap ratio between a
// response and its question before the response counts as off-topic.
const offTopicOverlapFloor = 0.3

// Classify maps a response/interaction history to a behavior category.
// Rules run in strict priority order — the first match wins:
// confused > efficient > chatty > edge-case > standard.
func Classify(responses []model.Response, interactions []model.Interaction) model.BehaviorCategory {
	if len(responses) == 0 {
		return model.BehaviorStandard
	}

	total := float64(len(responses))

	confused := 0
	for _, r := range responses {
		if showsConfusion(r) {
			confused++
		}
	}
	if float64(confused)/total > confusedShare {
		return model.BehaviorConfused
	}

	efficient := 0
	for _, r := range responses {
		if isConciseSubstantive(r) {
			efficient++
		}
	}
	if float64(efficient)/total > efficientShare {
		return model.BehaviorEfficient
	}

	chatty := 0
	for _, r := range responses {
		if isVerbose(r) {
			chatty++
		}
	}
	if float64(chatty)/total > chattyShare {
		return model.BehaviorChatty
	}

	for _, it := range interactions {
		if containsAnyTerm(it.Content, gamingPhrases) {
			return model.BehaviorEdgeCase
		}
	}

	return model.BehaviorStandard
}

// showsConfusion flags confusion keyword matches or very short answers
// stacked with question marks.
func showsConfusion(r model.Response) bool {
	lower := strings.ToLower(r.Text)
	for _, sig := range confusionSignals {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return r.WordCount < 5 && strings.Count(r.Text, "?") >= 2
}

// isConciseSubstantive flags answers in the 15–50 word band that carry
// structure or were typed at a brisk rate.
func isConciseSubstantive(r model.Response) bool {
	if r.WordCount < 15 || r.WordCount > 50 {
		return false
	}
	if hasListStructure(r.Text) {
		return true
	}
	return r.ResponseSeconds > 0 && float64(r.WordCount)/r.ResponseSeconds > 1.5
}

// isVerbose flags long answers, or medium-length answers with heavy
// word repetition.
func isVerbose(r model.Response) bool {
	if r.WordCount > 200 {
		return true
	}
	return r.WordCount > 100 && uniqueWordRatio(r.Text) < 0.5
}

// DetectOffTopic compares the stop-word-filtered keyword sets of a response
// and its question. The response is off-topic when fewer than 30% of either
// side's keywords find a mutual substring match on the other side.
func DetectOffTopic(resp model.Response, q model.Question) bool {
	respKeys := keywords(resp.Text)
	questionKeys := keywords(q.Text)
	if len(respKeys) == 0 || len(questionKeys) == 0 {
		return false
	}

	matched := 0
	for _, qk := range questionKeys {
		for _, rk := range respKeys {
			if strings.Contains(rk, qk) || strings.Contains(qk, rk) {
				matched++
				break
			}
		}
	}

	ratio := float64(matched) / float64(len(questionKeys))
	return ratio < offTopicOverlapFloor
}
