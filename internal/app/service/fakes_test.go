package service

import (
	"context"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
)

// In-memory repository fakes implementing the domain repository interfaces.

type fakeDesignRepo struct {
	designs map[string]*model.Design
	scores  []model.DesignScore
	saveErr error
	listErr error
	saves   int
}

func newFakeDesignRepo() *fakeDesignRepo {
	return &fakeDesignRepo{designs: make(map[string]*model.Design)}
}

func (f *fakeDesignRepo) CreateDesign(ctx context.Context, d *model.Design) error {
	f.designs[d.ID] = d
	return nil
}

func (f *fakeDesignRepo) FindDesignByID(ctx context.Context, id string) (*model.Design, error) {
	d, ok := f.designs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDesignRepo) FindDesignsByUserID(ctx context.Context, userID string) ([]model.Design, error) {
	var out []model.Design
	for _, d := range f.designs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDesignRepo) FindDesignByUserAndProblem(ctx context.Context, userID, problemID string) (*model.Design, error) {
	for _, d := range f.designs {
		if d.UserID == userID && d.ProblemID == problemID {
			return d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeDesignRepo) SaveEvaluationResult(ctx context.Context, designID string, result *model.EvaluationResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	d, ok := f.designs[designID]
	if !ok {
		return common.ErrNotFound
	}
	copied := *result
	d.EvaluationResult = &copied
	f.saves++
	return nil
}

func (f *fakeDesignRepo) ListScores(ctx context.Context) ([]model.DesignScore, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.scores != nil {
		return f.scores, nil
	}
	var scores []model.DesignScore
	for _, d := range f.designs {
		if d.EvaluationResult != nil {
			scores = append(scores, model.DesignScore{UserID: d.UserID, Score: d.EvaluationResult.Score})
		}
	}
	return scores, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return common.ErrConflict
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []string) (map[string]*model.User, error) {
	out := make(map[string]*model.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeProblemRepo struct {
	problems map[string]*model.Problem
}

func newFakeProblemRepo(problems ...*model.Problem) *fakeProblemRepo {
	f := &fakeProblemRepo{problems: make(map[string]*model.Problem)}
	for _, p := range problems {
		f.problems[p.ID] = p
	}
	return f
}

func (f *fakeProblemRepo) CreateProblem(ctx context.Context, p *model.Problem) error {
	for _, existing := range f.problems {
		if existing.Slug == p.Slug {
			return common.ErrConflict
		}
	}
	f.problems[p.ID] = p
	return nil
}

func (f *fakeProblemRepo) FindProblemByID(ctx context.Context, id string) (*model.Problem, error) {
	p, ok := f.problems[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

func (f *fakeProblemRepo) FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	for _, p := range f.problems {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeProblemRepo) ListProblems(ctx context.Context, proVisible bool) ([]model.Problem, error) {
	var out []model.Problem
	for _, p := range f.problems {
		if p.IsPro && !proVisible {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}
