package model

import (
	"time"
)

type ProblemDifficulty string

const (
	DifficultyEasy   ProblemDifficulty = "Easy"
	DifficultyMedium ProblemDifficulty = "Medium"
	DifficultyHard   ProblemDifficulty = "Hard"
)

// ProblemScale holds free-text load estimates shown to the user and embedded
// into the evaluation prompt.
type ProblemScale struct {
	Users    string `json:"users,omitempty"`
	Requests string `json:"requests,omitempty"`
	Data     string `json:"data,omitempty"`
}

type Problem struct {
	ID                        string            `json:"id"`
	Title                     string            `json:"title"`
	Slug                      string            `json:"slug"`
	Difficulty                ProblemDifficulty `json:"difficulty"`
	Description               string            `json:"description"`
	FunctionalRequirements    []string          `json:"functional_requirements"`
	NonFunctionalRequirements []string          `json:"non_functional_requirements"`
	Scale                     ProblemScale      `json:"scale"`
	IsPro                     bool              `json:"is_pro"`
	CreatedAt                 time.Time         `json:"created_at"`
	UpdatedAt                 time.Time         `json:"updated_at"`
}
