package model

// ResumeStrength is one highlighted strength from a parsed resume.
type ResumeStrength struct {
	Area     string `json:"area"`
	Evidence string `json:"evidence"`
}

// ResumeGap is a skill or experience area the resume analysis flagged as weak
// or absent relative to the target role.
type ResumeGap struct {
	Skill      string `json:"skill"`
	Importance string `json:"importance"` // "high", "medium", "low"
}

// AlignmentScore is the 4-part resume-to-role alignment measure, each part
// on a 0–100 scale.
type AlignmentScore struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Overall    int `json:"overall"`
}

// ResumeAnalysis is the precomputed record attached at session creation.
// Resume parsing itself happens upstream; this core only consumes the result.
type ResumeAnalysis struct {
	Sections  map[string]string `json:"sections"`
	Skills    []string          `json:"skills"`
	Strengths []ResumeStrength  `json:"strengths"`
	Gaps      []ResumeGap       `json:"gaps"`
	Alignment AlignmentScore    `json:"alignment"`
}
