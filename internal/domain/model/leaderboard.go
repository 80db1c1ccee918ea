package model

type LeaderboardEntry struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	ProfileImage   *string `json:"profile_image,omitempty"`
	Role           string  `json:"role"`
	TotalScore     int     `json:"total_score"`
	AverageScore   float64 `json:"average_score"` // Rounded to 1 decimal
	ProblemsSolved int     `json:"problems_solved"`
}

type UserRank struct {
	Rank       int `json:"rank"`
	TotalScore int `json:"total_score"`
}

// DesignScore is the slice of a design the leaderboard aggregation reads:
// who owns it and what it scored.
type DesignScore struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}
