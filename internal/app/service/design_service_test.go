package service

import (
	"context"
	"errors"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func designServiceFixture() (*DesignService, *fakeDesignRepo) {
	designRepo := newFakeDesignRepo()
	problemRepo := newFakeProblemRepo(&model.Problem{ID: "p1", Title: "Design URL Shortener", Slug: "design-url-shortener"})
	return NewDesignService(designRepo, problemRepo), designRepo
}

func TestCreateDesignStoresSubmission(t *testing.T) {
	svc, repo := designServiceFixture()

	design, err := svc.CreateDesign(context.Background(), "u1", CreateDesignRequest{
		ProblemID: "p1",
		Nodes: []model.Node{
			{ID: "n1", Type: model.NodeLoadBalancer, Label: "LB"},
			{ID: "n2", Type: model.NodeCache, Label: "Cache"},
		},
		Edges: []model.Edge{{Source: "n1", Target: "n2"}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, design.ID)
	assert.Equal(t, "u1", design.UserID)
	assert.Nil(t, design.EvaluationResult)
	assert.Contains(t, repo.designs, design.ID)
}

func TestCreateDesignRejectsDanglingEdges(t *testing.T) {
	svc, _ := designServiceFixture()

	_, err := svc.CreateDesign(context.Background(), "u1", CreateDesignRequest{
		ProblemID: "p1",
		Nodes:     []model.Node{{ID: "n1", Type: model.NodeDatabase}},
		Edges:     []model.Edge{{Source: "n1", Target: "nowhere"}},
	})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestCreateDesignRequiresExistingProblem(t *testing.T) {
	svc, _ := designServiceFixture()

	_, err := svc.CreateDesign(context.Background(), "u1", CreateDesignRequest{ProblemID: "missing"})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGetDesignByIDHidesOtherUsersDesigns(t *testing.T) {
	svc, repo := designServiceFixture()
	repo.designs["d1"] = &model.Design{ID: "d1", UserID: "owner", ProblemID: "p1"}

	_, err := svc.GetDesignByID(context.Background(), "d1", "intruder")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	design, err := svc.GetDesignByID(context.Background(), "d1", "owner")
	require.NoError(t, err)
	assert.Equal(t, "d1", design.ID)
}
