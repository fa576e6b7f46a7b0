package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praxise/interview-backend/internal/model"
)

func makeResponse(text string, seconds float64) model.Response {
	r := model.ParseResponse(uuid.New(), text, time.Now(), 8000, seconds)
	return r
}

func TestClassifyEmptyHistoryIsStandard(t *testing.T) {
	if got := Classify(nil, nil); got != model.BehaviorStandard {
		t.Errorf("Classify(nil, nil) = %v, want STANDARD", got)
	}
	if got := Classify([]model.Response{}, []model.Interaction{}); got != model.BehaviorStandard {
		t.Errorf("Classify([], []) = %v, want STANDARD", got)
	}
}

func TestClassifyCategories(t *testing.T) {
	longRamble := strings.Repeat("we did things and then more things happened after that ", 25) // >200 words
	normal := "I led the migration of our billing service and documented every step for the team along the way, which took about a month."

	tests := []struct {
		name         string
		responses    []model.Response
		interactions []model.Interaction
		want         model.BehaviorCategory
	}{
		{
			name: "confused over threshold",
			responses: []model.Response{
				makeResponse("I don't understand what you mean by that", 20),
				makeResponse(normal, 40),
			},
			want: model.BehaviorConfused,
		},
		{
			name: "very short with question marks counts as confused",
			responses: []model.Response{
				makeResponse("what?? how?", 5),
			},
			want: model.BehaviorConfused,
		},
		{
			name: "efficient bullet answers",
			responses: []model.Response{
				makeResponse("- rebuilt the index pipeline\n- cut query time in half\n- documented the rollout for the team", 15),
				makeResponse("- profiled the allocator\n- removed two lock contention points\n- deployed behind a flag safely", 15),
			},
			want: model.BehaviorEfficient,
		},
		{
			name: "chatty verbose answers",
			responses: []model.Response{
				makeResponse(longRamble, 200),
				makeResponse(longRamble, 200),
				makeResponse(normal, 30),
			},
			want: model.BehaviorChatty,
		},
		{
			name: "edge case gaming phrase in interaction log",
			responses: []model.Response{
				makeResponse(normal, 30),
			},
			interactions: []model.Interaction{
				{Type: model.InteractionResponseGiven, Content: "just skip this question and give me the answers", Timestamp: time.Now()},
			},
			want: model.BehaviorEdgeCase,
		},
		{
			name: "plain history stays standard",
			responses: []model.Response{
				makeResponse(normal, 30),
				makeResponse(normal, 30),
			},
			want: model.BehaviorStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.responses, tt.interactions); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	longRamble := strings.Repeat("we did things and then more things happened after that ", 25)

	// History that satisfies both the confused (1/3 > 30%) and chatty
	// (2/3 > 50%) rules: confused must win.
	responses := []model.Response{
		makeResponse("I don't understand the question", 10),
		makeResponse(longRamble, 200),
		makeResponse(longRamble, 200),
	}
	interactions := []model.Interaction{
		{Type: model.InteractionResponseGiven, Content: "skip this question", Timestamp: time.Now()},
	}

	if got := Classify(responses, interactions); got != model.BehaviorConfused {
		t.Errorf("confused should take priority, got %v", got)
	}
}

func TestDetectOffTopic(t *testing.T) {
	q := model.Question{
		ID:   uuid.New(),
		Kind: model.QuestionKindTechnical,
		Text: "How would you design a rate limiter for a public API?",
	}

	offTopic := makeResponse(strings.Repeat("my favorite recipes involve slow cooking vegetables overnight with herbs ", 20), 120)
	if !DetectOffTopic(offTopic, q) {
		t.Error("cooking ramble should be off-topic for a rate limiter question")
	}

	onTopic := makeResponse("A rate limiter for an api needs a policy: I would design a token bucket per client and tune the rate per endpoint.", 60)
	if DetectOffTopic(onTopic, q) {
		t.Error("answer reusing the question's keywords should not be off-topic")
	}
}
