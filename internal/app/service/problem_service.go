package service

import (
	"context"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"sysdesignlab/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ProblemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

type CreateProblemRequest struct {
	Title                     string                  `json:"title"`
	Difficulty                model.ProblemDifficulty `json:"difficulty"`
	Description               string                  `json:"description"`
	FunctionalRequirements    []string                `json:"functional_requirements"`
	NonFunctionalRequirements []string                `json:"non_functional_requirements"`
	Scale                     model.ProblemScale      `json:"scale"`
	IsPro                     bool                    `json:"is_pro"`
}

// CreateProblem adds a problem to the catalog. Used by the seeder; problems
// are immutable once seeded.
func (s *ProblemService) CreateProblem(ctx context.Context, req CreateProblemRequest) (*model.Problem, error) {
	if req.Title == "" || req.Description == "" {
		return nil, common.Errorf("title and description are required: %w", common.ErrBadRequest)
	}
	switch req.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return nil, common.Errorf("invalid difficulty %q: %w", req.Difficulty, common.ErrBadRequest)
	}

	problem := &model.Problem{
		ID:                        uuid.NewString(),
		Title:                     req.Title,
		Slug:                      slug.Make(req.Title),
		Difficulty:                req.Difficulty,
		Description:               req.Description,
		FunctionalRequirements:    req.FunctionalRequirements,
		NonFunctionalRequirements: req.NonFunctionalRequirements,
		Scale:                     req.Scale,
		IsPro:                     req.IsPro,
	}
	if err := s.problemRepo.CreateProblem(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// ListProblems returns the catalog visible to the given role: free users do
// not see pro-only problems.
func (s *ProblemService) ListProblems(ctx context.Context, userRole string) ([]model.Problem, error) {
	return s.problemRepo.ListProblems(ctx, userRole == model.RolePro)
}

// GetProblem fetches one problem, enforcing the pro gate.
func (s *ProblemService) GetProblem(ctx context.Context, problemID, userRole string) (*model.Problem, error) {
	problem, err := s.problemRepo.FindProblemByID(ctx, problemID)
	if err != nil {
		return nil, err // common.ErrNotFound or other errors
	}
	if problem.IsPro && userRole != model.RolePro {
		return nil, common.Errorf("pro subscription required to access this problem: %w", common.ErrForbidden)
	}
	return problem, nil
}
