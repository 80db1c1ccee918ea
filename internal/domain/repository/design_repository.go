package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
)

type DesignRepository interface {
	CreateDesign(ctx context.Context, design *model.Design) error
	FindDesignByID(ctx context.Context, id string) (*model.Design, error)
	FindDesignsByUserID(ctx context.Context, userID string) ([]model.Design, error)
	FindDesignByUserAndProblem(ctx context.Context, userID, problemID string) (*model.Design, error)
	// SaveEvaluationResult replaces the design's evaluation result wholesale.
	// The underlying column update is atomic, so concurrent evaluations race
	// only at the whole-result level (last write wins).
	SaveEvaluationResult(ctx context.Context, designID string, result *model.EvaluationResult) error
	// ListScores returns one row per design that carries an evaluation score.
	// This is the score store snapshot the leaderboard aggregates over.
	ListScores(ctx context.Context) ([]model.DesignScore, error)
}

type pgDesignRepository struct {
	db *sql.DB
}

func NewPgDesignRepository(db *sql.DB) DesignRepository {
	return &pgDesignRepository{db: db}
}

func (r *pgDesignRepository) CreateDesign(ctx context.Context, d *model.Design) error {
	nodes, err := json.Marshal(d.Nodes)
	if err != nil {
		return fmt.Errorf("pgDesignRepository.CreateDesign marshal nodes: %w", err)
	}
	edges, err := json.Marshal(d.Edges)
	if err != nil {
		return fmt.Errorf("pgDesignRepository.CreateDesign marshal edges: %w", err)
	}

	query := `INSERT INTO designs (id, user_id, problem_id, nodes, edges)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, d.ID, d.UserID, d.ProblemID, nodes, edges); err != nil {
		return fmt.Errorf("pgDesignRepository.CreateDesign: %w", err)
	}
	return nil
}

func (r *pgDesignRepository) FindDesignByID(ctx context.Context, id string) (*model.Design, error) {
	query := `SELECT d.id, d.user_id, d.problem_id, d.nodes, d.edges, d.evaluation_result, d.created_at, d.updated_at, p.title
	          FROM designs d
	          LEFT JOIN problems p ON p.id = d.problem_id
	          WHERE d.id = $1`
	return r.scanDesign(r.db.QueryRowContext(ctx, query, id), "FindDesignByID")
}

func (r *pgDesignRepository) FindDesignsByUserID(ctx context.Context, userID string) ([]model.Design, error) {
	query := `SELECT d.id, d.user_id, d.problem_id, d.nodes, d.edges, d.evaluation_result, d.created_at, d.updated_at, p.title
	          FROM designs d
	          LEFT JOIN problems p ON p.id = d.problem_id
	          WHERE d.user_id = $1
	          ORDER BY d.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgDesignRepository.FindDesignsByUserID: %w", err)
	}
	defer rows.Close()

	var designs []model.Design
	for rows.Next() {
		d, err := r.scanDesign(rows, "FindDesignsByUserID")
		if err != nil {
			return nil, err
		}
		designs = append(designs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgDesignRepository.FindDesignsByUserID rows: %w", err)
	}
	return designs, nil
}

func (r *pgDesignRepository) FindDesignByUserAndProblem(ctx context.Context, userID, problemID string) (*model.Design, error) {
	query := `SELECT d.id, d.user_id, d.problem_id, d.nodes, d.edges, d.evaluation_result, d.created_at, d.updated_at, p.title
	          FROM designs d
	          LEFT JOIN problems p ON p.id = d.problem_id
	          WHERE d.user_id = $1 AND d.problem_id = $2
	          ORDER BY d.created_at DESC
	          LIMIT 1`
	return r.scanDesign(r.db.QueryRowContext(ctx, query, userID, problemID), "FindDesignByUserAndProblem")
}

func (r *pgDesignRepository) SaveEvaluationResult(ctx context.Context, designID string, result *model.EvaluationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("pgDesignRepository.SaveEvaluationResult marshal: %w", err)
	}

	query := `UPDATE designs SET evaluation_result = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, payload, designID)
	if err != nil {
		return fmt.Errorf("pgDesignRepository.SaveEvaluationResult: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgDesignRepository.SaveEvaluationResult rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgDesignRepository) ListScores(ctx context.Context) ([]model.DesignScore, error) {
	query := `SELECT user_id, (evaluation_result->>'score')::int
	          FROM designs
	          WHERE evaluation_result IS NOT NULL AND evaluation_result->>'score' IS NOT NULL`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgDesignRepository.ListScores: %w", err)
	}
	defer rows.Close()

	var scores []model.DesignScore
	for rows.Next() {
		var s model.DesignScore
		if err := rows.Scan(&s.UserID, &s.Score); err != nil {
			return nil, fmt.Errorf("pgDesignRepository.ListScores scan: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgDesignRepository.ListScores rows: %w", err)
	}
	return scores, nil
}

func (r *pgDesignRepository) scanDesign(row rowScanner, method string) (*model.Design, error) {
	d := &model.Design{}
	var nodes, edges, result []byte
	err := row.Scan(&d.ID, &d.UserID, &d.ProblemID, &nodes, &edges, &result, &d.CreatedAt, &d.UpdatedAt, &d.ProblemTitle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgDesignRepository.%s: %w", method, err)
	}
	if err := json.Unmarshal(nodes, &d.Nodes); err != nil {
		return nil, fmt.Errorf("pgDesignRepository.%s unmarshal nodes: %w", method, err)
	}
	if err := json.Unmarshal(edges, &d.Edges); err != nil {
		return nil, fmt.Errorf("pgDesignRepository.%s unmarshal edges: %w", method, err)
	}
	if result != nil {
		d.EvaluationResult = &model.EvaluationResult{}
		if err := json.Unmarshal(result, d.EvaluationResult); err != nil {
			return nil, fmt.Errorf("pgDesignRepository.%s unmarshal evaluation result: %w", method, err)
		}
	}
	return d, nil
}
