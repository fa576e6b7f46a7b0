package service

import (
	"strings"

	"github.com/praxise/interview-backend/internal/model"
)

// RoleCatalog holds the interviewable role profiles. Lookups are
// case-insensitive on the slug.
type RoleCatalog struct {
	roles []model.RoleProfile
}

// NewRoleCatalog builds the catalog with the built-in role profiles.
func NewRoleCatalog() *RoleCatalog {
	return &RoleCatalog{
		roles: []model.RoleProfile{
			{
				Slug:         "software-engineer",
				Name:         "Software Engineer",
				Skills:       []string{"go", "postgres", "system design", "testing", "api design"},
				Competencies: []string{"problem solving", "code quality", "collaboration"},
			},
			{
				Slug:         "frontend-developer",
				Name:         "Frontend Developer",
				Skills:       []string{"javascript", "typescript", "react", "css", "accessibility"},
				Competencies: []string{"user empathy", "attention to detail", "collaboration"},
			},
			{
				Slug:         "data-scientist",
				Name:         "Data Scientist",
				Skills:       []string{"python", "statistics", "machine learning", "sql", "data visualization"},
				Competencies: []string{"analytical thinking", "communication", "experimentation"},
			},
			{
				Slug:         "devops-engineer",
				Name:         "DevOps Engineer",
				Skills:       []string{"kubernetes", "terraform", "ci/cd", "monitoring", "linux"},
				Competencies: []string{"reliability mindset", "automation", "incident response"},
			},
		},
	}
}

// Resolve returns the profile for a role slug, or ErrUnknownRole.
func (c *RoleCatalog) Resolve(role string) (*model.RoleProfile, error) {
	slug := strings.ToLower(strings.TrimSpace(role))
	for i := range c.roles {
		if c.roles[i].Slug == slug {
			return &c.roles[i], nil
		}
	}
	return nil, ErrUnknownRole
}

// ResolveLevel validates an experience level string.
func (c *RoleCatalog) ResolveLevel(level string) (model.ExperienceLevel, error) {
	switch model.ExperienceLevel(strings.ToUpper(strings.TrimSpace(level))) {
	case model.LevelEntry:
		return model.LevelEntry, nil
	case model.LevelMid:
		return model.LevelMid, nil
	case model.LevelSenior:
		return model.LevelSenior, nil
	case model.LevelLead:
		return model.LevelLead, nil
	}
	return "", ErrUnknownLevel
}

// List returns all role profiles.
func (c *RoleCatalog) List() []model.RoleProfile {
	return c.roles
}
