package engine

// questionTemplate is one entry in a role's static question bank.
type questionTemplate struct {
	Text             string
	Category         string
	Difficulty       int
	ExpectedElements []string
}

// roleBank holds a role's technical and behavioral template pools.
type roleBank struct {
	Technical  []questionTemplate
	Behavioral []questionTemplate
}

// behavioralCore is shared across roles; role banks extend it.
var behavioralCore = []questionTemplate{
	{
		Text:             "Tell me about a time you disagreed with a teammate on a technical decision. How was it resolved?",
		Category:         "collaboration",
		Difficulty:       4,
		ExpectedElements: []string{"disagreement", "resolution", "outcome"},
	},
	{
		Text:             "Describe a project that failed or missed its goals. What did you learn from it?",
		Category:         "growth",
		Difficulty:       5,
		ExpectedElements: []string{"failure", "lesson learned"},
	},
	{
		Text:             "Walk me through a situation where you had to deliver under a tight deadline. What did you cut and why?",
		Category:         "prioritization",
		Difficulty:       5,
		ExpectedElements: []string{"deadline", "trade-off", "result"},
	},
	{
		Text:       "Tell me about a time you received difficult feedback. How did you respond?",
		Category:   "growth",
		Difficulty: 3,
	},
	{
		Text:             "Describe a time you had to bring a struggling teammate or new hire up to speed.",
		Category:         "mentoring",
		Difficulty:       4,
		ExpectedElements: []string{"teammate", "support", "improvement"},
	},
	{
		Text:       "Tell me about the piece of work you are most proud of and why.",
		Category:   "motivation",
		Difficulty: 3,
	},
}

// roleBanks is the static per-role question template catalog.
var roleBanks = map[string]roleBank{
	"software-engineer": {
		Technical: []questionTemplate{
			{
				Text:             "How would you design a rate limiter for a public API?",
				Category:         "system-design",
				Difficulty:       6,
				ExpectedElements: []string{"token bucket", "distributed state", "failure mode"},
			},
			{
				Text:             "Explain the trade-offs between a hash map and a balanced tree for an in-memory index.",
				Category:         "data-structures",
				Difficulty:       5,
				ExpectedElements: []string{"lookup complexity", "ordering", "memory"},
			},
			{
				Text:             "Walk me through how you would debug a service whose p99 latency doubled overnight.",
				Category:         "system-design",
				Difficulty:       7,
				ExpectedElements: []string{"metrics", "recent changes", "isolation"},
			},
			{
				Text:             "How do database transactions provide isolation, and when would you relax it?",
				Category:         "databases",
				Difficulty:       6,
				ExpectedElements: []string{"isolation levels", "locking", "trade-off"},
			},
			{
				Text:             "Describe how you would make a batch job safe to retry after a partial failure.",
				Category:         "system-design",
				Difficulty:       6,
				ExpectedElements: []string{"idempotency", "checkpoint", "partial failure"},
			},
			{
				Text:       "What causes a race condition, and what tools or patterns do you use to prevent them?",
				Category:   "concurrency",
				Difficulty: 5,
			},
			{
				Text:             "How would you paginate a large, frequently changing dataset over an API?",
				Category:         "web",
				Difficulty:       5,
				ExpectedElements: []string{"cursor", "consistency", "ordering"},
			},
			{
				Text:       "Explain how you decide between optimizing code and scaling hardware when a system slows down.",
				Category:   "system-design",
				Difficulty: 6,
			},
		},
		Behavioral: behavioralCore,
	},
	"frontend-developer": {
		Technical: []questionTemplate{
			{
				Text:             "What techniques do you use to keep a large single-page application fast on first load?",
				Category:         "frontend",
				Difficulty:       6,
				ExpectedElements: []string{"code splitting", "lazy loading", "bundle size"},
			},
			{
				Text:             "How do you approach accessibility when building a complex interactive component?",
				Category:         "frontend",
				Difficulty:       5,
				ExpectedElements: []string{"aria", "keyboard", "screen reader"},
			},
			{
				Text:       "Explain how the browser renders a page and where layout thrashing comes from.",
				Category:   "frontend",
				Difficulty: 6,
			},
			{
				Text:             "How do you manage shared state across a large component tree without prop drilling?",
				Category:         "frontend",
				Difficulty:       5,
				ExpectedElements: []string{"state management", "context", "trade-off"},
			},
			{
				Text:       "Describe your strategy for testing UI behavior without making tests brittle.",
				Category:   "frontend",
				Difficulty: 5,
			},
			{
				Text:             "How would you implement optimistic updates for a collaborative editing feature?",
				Category:         "web",
				Difficulty:       7,
				ExpectedElements: []string{"rollback", "conflict", "server reconciliation"},
			},
			{
				Text:       "What do you watch for when a page's Core Web Vitals regress after a release?",
				Category:   "frontend",
				Difficulty: 6,
			},
			{
				Text:       "How does HTTP caching work for static assets, and how do you bust it safely?",
				Category:   "web",
				Difficulty: 4,
			},
		},
		Behavioral: append([]questionTemplate{
			{
				Text:       "Tell me about a time a designer and you disagreed about feasibility. How did you land it?",
				Category:   "collaboration",
				Difficulty: 4,
			},
		}, behavioralCore...),
	},
	"data-scientist": {
		Technical: []questionTemplate{
			{
				Text:             "How do you detect and handle overfitting in a model you are about to ship?",
				Category:         "machine-learning",
				Difficulty:       6,
				ExpectedElements: []string{"validation", "regularization", "holdout"},
			},
			{
				Text:             "Walk me through how you would evaluate a classifier on heavily imbalanced data.",
				Category:         "machine-learning",
				Difficulty:       6,
				ExpectedElements: []string{"precision", "recall", "baseline"},
			},
			{
				Text:       "Explain the bias-variance trade-off to a non-technical stakeholder.",
				Category:   "machine-learning",
				Difficulty: 5,
			},
			{
				Text:             "How would you design a feature pipeline that must stay consistent between training and serving?",
				Category:         "machine-learning",
				Difficulty:       7,
				ExpectedElements: []string{"feature store", "skew", "versioning"},
			},
			{
				Text:       "When does a simple linear model beat a deep network in practice?",
				Category:   "machine-learning",
				Difficulty: 5,
			},
			{
				Text:             "Describe how you would run and analyze an A/B test for a ranking change.",
				Category:         "machine-learning",
				Difficulty:       6,
				ExpectedElements: []string{"hypothesis", "significance", "metric"},
			},
			{
				Text:       "How do you communicate model uncertainty to product teams making decisions on it?",
				Category:   "machine-learning",
				Difficulty: 5,
			},
			{
				Text:       "What data quality checks do you run before trusting a new dataset?",
				Category:   "databases",
				Difficulty: 4,
			},
		},
		Behavioral: behavioralCore,
	},
	"devops-engineer": {
		Technical: []questionTemplate{
			{
				Text:             "Design a zero-downtime deployment strategy for a stateful service.",
				Category:         "infrastructure",
				Difficulty:       7,
				ExpectedElements: []string{"rolling", "migration", "rollback"},
			},
			{
				Text:             "How do you decide what to alert on versus what to only dashboard?",
				Category:         "infrastructure",
				Difficulty:       5,
				ExpectedElements: []string{"symptom", "noise", "severity"},
			},
			{
				Text:       "Walk me through your first hour responding to a production-wide outage.",
				Category:   "infrastructure",
				Difficulty: 7,
			},
			{
				Text:             "How would you structure Terraform (or similar) for many teams sharing one cloud account?",
				Category:         "infrastructure",
				Difficulty:       6,
				ExpectedElements: []string{"module", "state isolation", "review"},
			},
			{
				Text:       "What belongs in a CI pipeline for a service deployed many times a day?",
				Category:   "infrastructure",
				Difficulty: 5,
			},
			{
				Text:             "Explain how Kubernetes schedules a pod and what you check when one stays pending.",
				Category:         "infrastructure",
				Difficulty:       6,
				ExpectedElements: []string{"resources", "taints", "events"},
			},
			{
				Text:       "How do you keep secrets out of images, repos, and logs across many services?",
				Category:   "infrastructure",
				Difficulty: 5,
			},
			{
				Text:       "Describe a capacity planning exercise you would run before a traffic surge event.",
				Category:   "infrastructure",
				Difficulty: 6,
			},
		},
		Behavioral: append([]questionTemplate{
			{
				Text:             "Tell me about an incident you were on call for that went badly. What changed afterwards?",
				Category:         "growth",
				Difficulty:       5,
				ExpectedElements: []string{"incident", "postmortem", "change"},
			},
		}, behavioralCore...),
	},
}
