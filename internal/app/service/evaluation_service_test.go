package service

import (
	"context"
	"errors"
	"fmt"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEvaluator struct {
	calls int
}

func (e *failingEvaluator) Evaluate(ctx context.Context, design *model.Design, problem *model.Problem) (*model.EvaluationResult, error) {
	e.calls++
	return nil, fmt.Errorf("upstream degraded: %w", common.ErrEvaluatorUnavailable)
}

type fixedEvaluator struct {
	result model.EvaluationResult
}

func (e *fixedEvaluator) Evaluate(ctx context.Context, design *model.Design, problem *model.Problem) (*model.EvaluationResult, error) {
	copied := e.result
	return &copied, nil
}

func seededRepos() (*fakeDesignRepo, *fakeProblemRepo) {
	designRepo := newFakeDesignRepo()
	designRepo.designs["d1"] = &model.Design{
		ID:        "d1",
		UserID:    "u1",
		ProblemID: "p1",
		Nodes: []model.Node{
			{ID: "n1", Type: model.NodeLoadBalancer, Label: "LB"},
			{ID: "n2", Type: model.NodeCache, Label: "Cache"},
		},
		Edges: []model.Edge{{Source: "n1", Target: "n2"}},
	}
	problemRepo := newFakeProblemRepo(&model.Problem{
		ID:                     "p1",
		Title:                  "Design URL Shortener",
		Difficulty:             model.DifficultyEasy,
		Description:            "Shorten URLs.",
		FunctionalRequirements: []string{"Generate short URL"},
		IsPro:                  false,
	})
	return designRepo, problemRepo
}

func TestEvaluateDesignReturnsNotFoundForMissingRecords(t *testing.T) {
	designRepo, problemRepo := seededRepos()
	svc := NewEvaluationService(designRepo, problemRepo, nil, time.Second)

	_, err := svc.EvaluateDesign(context.Background(), "missing", "p1")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = svc.EvaluateDesign(context.Background(), "d1", "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	assert.Equal(t, 0, designRepo.saves)
}

func TestEvaluateDesignWithoutAIUsesMock(t *testing.T) {
	designRepo, problemRepo := seededRepos()
	svc := NewEvaluationService(designRepo, problemRepo, nil, time.Second)

	result, err := svc.EvaluateDesign(context.Background(), "d1", "p1")
	require.NoError(t, err)

	assert.Equal(t, 75, result.Score)
	require.NotNil(t, designRepo.designs["d1"].EvaluationResult)
	assert.Equal(t, 75, designRepo.designs["d1"].EvaluationResult.Score)
	assert.Equal(t, 1, designRepo.saves)
}

func TestEvaluateDesignFallsBackWhenAIFails(t *testing.T) {
	designRepo, problemRepo := seededRepos()
	primary := &failingEvaluator{}
	svc := NewEvaluationService(designRepo, problemRepo, primary, time.Second)

	result, err := svc.EvaluateDesign(context.Background(), "d1", "p1")
	require.NoError(t, err, "evaluator failures must not surface to the caller")

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 75, result.Score)
	// The fallback path still writes exactly once.
	assert.Equal(t, 1, designRepo.saves)
}

func TestEvaluateDesignUsesPrimaryResult(t *testing.T) {
	designRepo, problemRepo := seededRepos()
	primary := &fixedEvaluator{result: model.EvaluationResult{Score: 91, Summary: "excellent"}}
	svc := NewEvaluationService(designRepo, problemRepo, primary, time.Second)

	result, err := svc.EvaluateDesign(context.Background(), "d1", "p1")
	require.NoError(t, err)

	assert.Equal(t, 91, result.Score)
	assert.Equal(t, "excellent", designRepo.designs["d1"].EvaluationResult.Summary)
}

func TestEvaluateDesignOverwritesPriorResult(t *testing.T) {
	designRepo, problemRepo := seededRepos()

	first := NewEvaluationService(designRepo, problemRepo, &fixedEvaluator{result: model.EvaluationResult{Score: 40, Summary: "first", Warnings: []string{"w1"}}}, time.Second)
	_, err := first.EvaluateDesign(context.Background(), "d1", "p1")
	require.NoError(t, err)

	second := NewEvaluationService(designRepo, problemRepo, &fixedEvaluator{result: model.EvaluationResult{Score: 88, Summary: "second"}}, time.Second)
	result, err := second.EvaluateDesign(context.Background(), "d1", "p1")
	require.NoError(t, err)

	stored := designRepo.designs["d1"].EvaluationResult
	require.NotNil(t, stored)
	assert.Equal(t, result, stored)
	assert.Equal(t, 88, stored.Score)
	assert.Equal(t, "second", stored.Summary)
	assert.Empty(t, stored.Warnings, "previous result must be replaced, not merged")
	assert.Equal(t, 2, designRepo.saves)
}

func TestEvaluateDesignSurfacesPersistenceFailure(t *testing.T) {
	designRepo, problemRepo := seededRepos()
	designRepo.saveErr = fmt.Errorf("connection reset")
	svc := NewEvaluationService(designRepo, problemRepo, nil, time.Second)

	_, err := svc.EvaluateDesign(context.Background(), "d1", "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist")
}

func TestEvaluateDesignDoesNotCrossCheckProblemReference(t *testing.T) {
	designRepo, problemRepo := seededRepos()
	problemRepo.problems["p2"] = &model.Problem{
		ID:          "p2",
		Title:       "Design Twitter",
		Difficulty:  model.DifficultyMedium,
		Description: "Microblogging.",
	}
	svc := NewEvaluationService(designRepo, problemRepo, nil, time.Second)

	// d1 belongs to p1 but the caller asks for p2; both resolve, so the
	// evaluation proceeds against p2.
	result, err := svc.EvaluateDesign(context.Background(), "d1", "p2")
	require.NoError(t, err)
	assert.Equal(t, 75, result.Score)
}
