package service

import (
	"context"
	"fmt"
	"log"
	"sysdesignlab/internal/app/evaluator"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"sysdesignlab/internal/domain/repository"
	"time"
)

// EvaluationService orchestrates scoring a design: fetch the records, run
// the primary evaluator, fall back to the deterministic one on failure, and
// persist the result onto the design.
type EvaluationService struct {
	designRepo  repository.DesignRepository
	problemRepo repository.ProblemRepository
	primary     evaluator.Evaluator
	fallback    evaluator.Evaluator
	timeout     time.Duration
}

func NewEvaluationService(
	designRepo repository.DesignRepository,
	problemRepo repository.ProblemRepository,
	primary evaluator.Evaluator,
	timeout time.Duration,
) *EvaluationService {
	fallback := evaluator.NewMockEvaluator()
	if primary == nil {
		primary = fallback
	}
	return &EvaluationService{
		designRepo:  designRepo,
		problemRepo: problemRepo,
		primary:     primary,
		fallback:    fallback,
		timeout:     timeout,
	}
}

// EvaluateDesign scores the design against the problem and stores the result.
// Both IDs must resolve; beyond that the caller is trusted to pass a
// consistent pair (the design's own problem reference is not cross-checked).
// Evaluator failures never surface: the deterministic fallback result is
// substituted and persisted instead. Exactly one write happens per call,
// fully replacing any previous result.
func (s *EvaluationService) EvaluateDesign(ctx context.Context, designID, problemID string) (*model.EvaluationResult, error) {
	design, err := s.designRepo.FindDesignByID(ctx, designID)
	if err != nil {
		return nil, fmt.Errorf("design not found: %w", err)
	}
	problem, err := s.problemRepo.FindProblemByID(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("problem not found: %w", err)
	}

	evalCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		evalCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.primary.Evaluate(evalCtx, design, problem)
	if err != nil {
		log.Printf("WARN: evaluator failed for design %s, using fallback: %v", designID, err)
		result, err = s.fallback.Evaluate(ctx, design, problem)
		if err != nil {
			// The mock evaluator cannot fail; guard anyway.
			return nil, common.Errorf("fallback evaluation failed: %w", err)
		}
	}

	if err := s.designRepo.SaveEvaluationResult(ctx, designID, result); err != nil {
		return nil, common.Errorf("failed to persist evaluation result: %w", err)
	}
	return result, nil
}
