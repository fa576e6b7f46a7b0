package model

// RoleProfile describes an interviewable role: its declared skills and
// competencies drive both question generation and relevance scoring.
type RoleProfile struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	Competencies []string `json:"competencies"`
}
