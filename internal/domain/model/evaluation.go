package model

// RequirementAssessment is the evaluator's verdict on a single problem
// requirement.
type RequirementAssessment struct {
	Requirement string `json:"requirement"`
	Met         bool   `json:"met"`
	Comment     string `json:"comment"`
}

// EvaluationResult is the structured outcome of scoring one design against
// one problem. It is owned by its design and fully overwritten on
// re-evaluation.
type EvaluationResult struct {
	Score                int                     `json:"score"` // 0-100
	Summary              string                  `json:"summary"`
	RequirementsAnalysis []RequirementAssessment `json:"requirements_analysis"`
	Strengths            []string                `json:"strengths"`
	Warnings             []string                `json:"warnings"`
	Errors               []string                `json:"errors"`
	Suggestions          []string                `json:"suggestions"`
	SecurityConcerns     string                  `json:"security_concerns"`
	ScalabilityNotes     string                  `json:"scalability_notes"`
}
