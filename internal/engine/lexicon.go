package engine

// Fixed vocabularies behind the lexical heuristics. These are surface-level
// word lists, not language understanding.

// stopWords are filtered out before keyword overlap comparison.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "can": true,
	"may": true, "might": true, "it": true, "its": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "we": true, "they": true, "me": true, "my": true,
	"your": true, "what": true, "which": true, "who": true, "how": true,
	"when": true, "where": true, "why": true, "about": true, "into": true,
	"through": true, "during": true, "if": true, "then": true, "than": true,
	"so": true, "not": true, "no": true, "yes": true, "tell": true, "describe": true,
}

// logicalConnectors signal structured reasoning in an answer.
var logicalConnectors = []string{
	"because", "therefore", "however", "although", "since", "thus",
	"consequently", "furthermore", "moreover", "additionally", "first",
	"second", "third", "finally", "for example", "for instance", "as a result",
	"in contrast", "on the other hand", "specifically", "in particular",
}

// fillerWords penalize articulation scoring.
var fillerWords = []string{
	"um", "uh", "like", "you know", "sort of", "kind of", "basically",
	"actually", "literally", "stuff", "things", "whatever",
}

// casualPhrases penalize the professionalism score.
var casualPhrases = []string{
	"gonna", "wanna", "gotta", "kinda", "dunno", "yeah", "nah", "lol",
	"idk", "tbh", "omg", "btw",
}

// confusionSignals mark a response as confused.
var confusionSignals = []string{
	"i don't understand", "i dont understand", "not sure what", "confused",
	"what do you mean", "can you repeat", "can you clarify", "don't know what",
	"huh", "no idea", "what is that", "never heard",
}

// gamingPhrases are disallowed attempts to manipulate or bypass the interview.
var gamingPhrases = []string{
	"ignore previous instructions", "ignore your instructions",
	"skip this question", "skip all questions", "give me the answers",
	"what is the answer", "just pass me", "pretend i answered",
	"you are an ai", "jailbreak", "system prompt",
}

// exampleMarkers indicate an answer grounds itself in something concrete.
var exampleMarkers = []string{
	"for example", "for instance", "such as", "e.g.", "in one case",
	"one time", "specifically",
}

// Narrative markers for the completeness heuristic when a question defines
// no expected elements.
var (
	problemMarkers  = []string{"problem", "challenge", "issue", "difficult", "struggle", "blocker", "bug"}
	solutionMarkers = []string{"solved", "solution", "implemented", "built", "fixed", "approach", "designed", "refactored", "decided"}
	outcomeMarkers  = []string{"result", "outcome", "improved", "reduced", "increased", "shipped", "learned", "impact", "saved"}
)

// generalTechTerms is the fallback keyword list for technical-accuracy
// scoring and depth keyword density.
var generalTechTerms = []string{
	"algorithm", "api", "architecture", "async", "cache", "complexity",
	"concurrency", "database", "deployment", "design pattern", "index",
	"latency", "memory", "performance", "protocol", "queue", "scalability",
	"schema", "testing", "thread", "throughput", "transaction",
}

// categoryTechTerms maps a question category to its accuracy keyword list.
// Categories not present fall back to generalTechTerms.
var categoryTechTerms = map[string][]string{
	"data-structures": {
		"array", "hash", "map", "tree", "graph", "heap", "stack", "queue",
		"linked list", "complexity", "o(n)", "o(1)", "o(log n)", "big o",
	},
	"system-design": {
		"scalability", "load balancer", "cache", "shard", "replication",
		"consistency", "availability", "partition", "queue", "microservice",
		"latency", "throughput", "cdn", "database",
	},
	"databases": {
		"index", "query", "transaction", "acid", "normalization", "join",
		"schema", "replication", "shard", "sql", "nosql", "lock", "isolation",
	},
	"concurrency": {
		"goroutine", "thread", "mutex", "lock", "race", "channel", "atomic",
		"deadlock", "synchronization", "parallel", "worker", "semaphore",
	},
	"web": {
		"http", "rest", "api", "request", "response", "header", "cookie",
		"session", "cors", "websocket", "tls", "dns", "cdn", "browser",
	},
	"frontend": {
		"component", "state", "render", "dom", "css", "accessibility",
		"bundle", "hydration", "responsive", "virtual dom", "event",
	},
	"machine-learning": {
		"model", "training", "feature", "overfitting", "regression",
		"classification", "dataset", "validation", "accuracy", "precision",
		"recall", "neural", "gradient",
	},
	"infrastructure": {
		"container", "docker", "kubernetes", "ci/cd", "pipeline", "terraform",
		"monitoring", "alerting", "rollback", "deployment", "incident",
		"autoscaling", "load",
	},
}

// techVocabulary is the fixed list of technology/framework terms scanned for
// targeted follow-up synthesis.
var techVocabulary = []string{
	"go", "golang", "python", "java", "javascript", "typescript", "rust",
	"react", "vue", "angular", "node", "django", "spring", "kubernetes",
	"docker", "terraform", "aws", "gcp", "azure", "postgres", "postgresql",
	"mysql", "mongodb", "redis", "kafka", "rabbitmq", "elasticsearch",
	"graphql", "grpc", "tensorflow", "pytorch", "spark", "airflow",
}
