package engine

import (
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// AdaptContent transforms outgoing interviewer content for the candidate's
// behavior category. Pure: no category-dependent state.
func AdaptContent(category model.BehaviorCategory, content string) string {
	switch category {
	case model.BehaviorConfused:
		return "Let me put this another way. " + content +
			"\n\nTake your time — if anything is unclear, say so and I will rephrase."
	case model.BehaviorEfficient:
		return firstLines(content, 3)
	case model.BehaviorChatty:
		return "Keeping us on track: " + content +
			"\n\nA focused answer covering the key points works best here."
	case model.BehaviorEdgeCase:
		return "As a reminder, this session only accepts direct answers to interview questions. " +
			content
	default:
		return content
	}
}

// Acknowledgment returns the short phrase spoken before the next question.
func Acknowledgment(category model.BehaviorCategory) string {
	switch category {
	case model.BehaviorConfused:
		return "No problem, that was a tricky one."
	case model.BehaviorEfficient:
		return "Noted."
	case model.BehaviorChatty:
		return "Thanks — I have what I need on that topic."
	case model.BehaviorEdgeCase:
		return "Let's continue with the interview."
	default:
		return "Thank you for that answer."
	}
}

// Transition returns the bridge phrase into the next question.
func Transition(category model.BehaviorCategory) string {
	switch category {
	case model.BehaviorConfused:
		return "Here is the next one — I will keep it concrete."
	case model.BehaviorEfficient:
		return "Next question:"
	case model.BehaviorChatty:
		return "Moving on to the next question:"
	case model.BehaviorEdgeCase:
		return "The next interview question is:"
	default:
		return "Let's move on to the next question."
	}
}

// firstLines keeps the first n non-empty lines of content.
func firstLines(content string, n int) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, "\n")
}
