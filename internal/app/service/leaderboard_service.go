package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sysdesignlab/internal/domain/model"
	"sysdesignlab/internal/domain/repository"
)

const (
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

// LeaderboardService derives rankings from the scored designs. It holds no
// state of its own: every query re-aggregates the current score store
// snapshot.
type LeaderboardService struct {
	designRepo repository.DesignRepository
	userRepo   repository.UserRepository
}

func NewLeaderboardService(designRepo repository.DesignRepository, userRepo repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{designRepo: designRepo, userRepo: userRepo}
}

type userTotals struct {
	userID string
	total  int
	count  int
}

// aggregate groups the score rows by user, summing scores and counting
// scored designs.
func aggregate(scores []model.DesignScore) map[string]*userTotals {
	totals := make(map[string]*userTotals)
	for _, s := range scores {
		t, ok := totals[s.UserID]
		if !ok {
			t = &userTotals{userID: s.UserID}
			totals[s.UserID] = t
		}
		t.total += s.Score
		t.count++
	}
	return totals
}

// GlobalLeaderboard returns the top users by total score. limit defaults to
// 20 when non-positive and is capped at 100. Users that no longer resolve
// (deleted accounts with surviving designs) are dropped from the output.
func (s *LeaderboardService) GlobalLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	scores, err := s.designRepo.ListScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load design scores: %w", err)
	}

	totals := aggregate(scores)
	ranked := make([]*userTotals, 0, len(totals))
	for _, t := range totals {
		ranked = append(ranked, t)
	}
	// Total score descending; user ID breaks ties so the ordering is stable
	// across queries. Tied users still share a rank (see UserRank).
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		return ranked[i].userID < ranked[j].userID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]string, len(ranked))
	for i, t := range ranked {
		ids[i] = t.userID
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard users: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(ranked))
	for _, t := range ranked {
		user, ok := users[t.userID]
		if !ok {
			continue // orphaned scores: owner no longer exists
		}
		avg := float64(t.total) / float64(t.count)
		entries = append(entries, model.LeaderboardEntry{
			UserID:         t.userID,
			Name:           user.Name,
			ProfileImage:   user.ProfileImage,
			Role:           user.Role,
			TotalScore:     t.total,
			AverageScore:   math.Round(avg*10) / 10,
			ProblemsSolved: t.count,
		})
	}
	return entries, nil
}

// UserRank reports the user's total score and 1-based rank. Rank counts the
// distinct users with a strictly greater total, plus one, so tied users
// share a rank. A user with no scored designs has total 0 and ranks below
// everyone who has scored.
func (s *LeaderboardService) UserRank(ctx context.Context, userID string) (*model.UserRank, error) {
	scores, err := s.designRepo.ListScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load design scores: %w", err)
	}

	totals := aggregate(scores)
	target := 0
	if t, ok := totals[userID]; ok {
		target = t.total
	}

	higher := 0
	for id, t := range totals {
		if id != userID && t.total > target {
			higher++
		}
	}
	return &model.UserRank{Rank: higher + 1, TotalScore: target}, nil
}
