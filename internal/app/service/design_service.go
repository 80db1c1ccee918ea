package service

import (
	"context"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"sysdesignlab/internal/domain/repository"

	"github.com/google/uuid"
)

type DesignService struct {
	designRepo  repository.DesignRepository
	problemRepo repository.ProblemRepository
}

func NewDesignService(designRepo repository.DesignRepository, problemRepo repository.ProblemRepository) *DesignService {
	return &DesignService{designRepo: designRepo, problemRepo: problemRepo}
}

type CreateDesignRequest struct {
	ProblemID string       `json:"problem_id"`
	Nodes     []model.Node `json:"nodes"`
	Edges     []model.Edge `json:"edges"`
}

// CreateDesign stores a new submission for the caller. Edges must reference
// node IDs present in the same submission.
func (s *DesignService) CreateDesign(ctx context.Context, userID string, req CreateDesignRequest) (*model.Design, error) {
	if req.ProblemID == "" {
		return nil, common.Errorf("problem_id is required: %w", common.ErrBadRequest)
	}
	if _, err := s.problemRepo.FindProblemByID(ctx, req.ProblemID); err != nil {
		return nil, common.Errorf("problem not found: %w", err)
	}

	nodeIDs := make(map[string]bool, len(req.Nodes))
	for _, n := range req.Nodes {
		if n.ID == "" {
			return nil, common.Errorf("every node needs an id: %w", common.ErrValidation)
		}
		nodeIDs[n.ID] = true
	}
	for _, e := range req.Edges {
		if !nodeIDs[e.Source] || !nodeIDs[e.Target] {
			return nil, common.Errorf("edge %s->%s references an unknown node: %w", e.Source, e.Target, common.ErrValidation)
		}
	}

	if req.Nodes == nil {
		req.Nodes = []model.Node{}
	}
	if req.Edges == nil {
		req.Edges = []model.Edge{}
	}

	design := &model.Design{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProblemID: req.ProblemID,
		Nodes:     req.Nodes,
		Edges:     req.Edges,
	}
	if err := s.designRepo.CreateDesign(ctx, design); err != nil {
		return nil, err
	}
	return design, nil
}

// GetUserDesigns lists the caller's submissions, newest first.
func (s *DesignService) GetUserDesigns(ctx context.Context, userID string) ([]model.Design, error) {
	return s.designRepo.FindDesignsByUserID(ctx, userID)
}

// GetDesignByID fetches one design. Other users' designs are reported as
// not found rather than forbidden, so IDs cannot be probed.
func (s *DesignService) GetDesignByID(ctx context.Context, designID, userID string) (*model.Design, error) {
	design, err := s.designRepo.FindDesignByID(ctx, designID)
	if err != nil {
		return nil, err
	}
	if design.UserID != userID {
		return nil, common.ErrNotFound
	}
	return design, nil
}

// GetDesignByProblem returns the caller's latest design for a problem.
func (s *DesignService) GetDesignByProblem(ctx context.Context, problemID, userID string) (*model.Design, error) {
	return s.designRepo.FindDesignByUserAndProblem(ctx, userID, problemID)
}
