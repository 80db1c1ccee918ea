package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
)

// AIEvaluator scores designs through an external generative model. Any
// transport failure or response that cannot be parsed into the expected
// shape is reported as common.ErrEvaluatorUnavailable so the caller can
// fall back; a degraded model response is never silently turned into a
// plausible-looking score.
type AIEvaluator struct {
	gen TextGenerator
}

func NewAIEvaluator(gen TextGenerator) *AIEvaluator {
	return &AIEvaluator{gen: gen}
}

// aiResponse mirrors the JSON shape requested in the prompt. Score and
// summary are pointers so a missing field is distinguishable from a zero
// value.
type aiResponse struct {
	Score                *int                          `json:"score"`
	Summary              *string                       `json:"summary"`
	RequirementsAnalysis []model.RequirementAssessment `json:"requirements_analysis"`
	Strengths            []string                      `json:"strengths"`
	Warnings             []string                      `json:"warnings"`
	Errors               []string                      `json:"errors"`
	Suggestions          []string                      `json:"suggestions"`
	SecurityConcerns     string                        `json:"security_concerns"`
	ScalabilityNotes     string                        `json:"scalability_notes"`
}

func (e *AIEvaluator) Evaluate(ctx context.Context, design *model.Design, problem *model.Problem) (*model.EvaluationResult, error) {
	prompt := BuildPrompt(design, problem)

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generative call failed: %v: %w", err, common.ErrEvaluatorUnavailable)
	}

	result, err := parseEvaluation(raw)
	if err != nil {
		return nil, fmt.Errorf("unusable evaluator response: %v: %w", err, common.ErrEvaluatorUnavailable)
	}
	return result, nil
}

// parseEvaluation decodes the model's JSON reply. Unparseable content or a
// reply missing score/summary is an error. A reply that parses is then
// normalized: the score is clamped into [0,100] and absent list fields
// become empty slices.
func parseEvaluation(raw string) (*model.EvaluationResult, error) {
	text := strings.TrimSpace(raw)
	// Models sometimes fence the JSON despite instructions.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var resp aiResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if resp.Score == nil {
		return nil, fmt.Errorf("response is missing score")
	}
	if resp.Summary == nil || strings.TrimSpace(*resp.Summary) == "" {
		return nil, fmt.Errorf("response is missing summary")
	}

	score := *resp.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &model.EvaluationResult{
		Score:                score,
		Summary:              *resp.Summary,
		RequirementsAnalysis: orEmptyAnalysis(resp.RequirementsAnalysis),
		Strengths:            orEmpty(resp.Strengths),
		Warnings:             orEmpty(resp.Warnings),
		Errors:               orEmpty(resp.Errors),
		Suggestions:          orEmpty(resp.Suggestions),
		SecurityConcerns:     resp.SecurityConcerns,
		ScalabilityNotes:     resp.ScalabilityNotes,
	}, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyAnalysis(s []model.RequirementAssessment) []model.RequirementAssessment {
	if s == nil {
		return []model.RequirementAssessment{}
	}
	return s
}
