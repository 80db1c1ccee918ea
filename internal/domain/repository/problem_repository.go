package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type ProblemRepository interface {
	CreateProblem(ctx context.Context, problem *model.Problem) error
	FindProblemByID(ctx context.Context, id string) (*model.Problem, error)
	FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error)
	// ListProblems returns problems newest first. When proVisible is false,
	// pro-only problems are excluded.
	ListProblems(ctx context.Context, proVisible bool) ([]model.Problem, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

const problemColumns = `id, title, slug, difficulty, description, functional_requirements, non_functional_requirements, scale, is_pro, created_at, updated_at`

func (r *pgProblemRepository) CreateProblem(ctx context.Context, p *model.Problem) error {
	funcReqs, err := json.Marshal(p.FunctionalRequirements)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.CreateProblem marshal functional requirements: %w", err)
	}
	nonFuncReqs, err := json.Marshal(p.NonFunctionalRequirements)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.CreateProblem marshal non-functional requirements: %w", err)
	}
	scale, err := json.Marshal(p.Scale)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.CreateProblem marshal scale: %w", err)
	}

	query := `INSERT INTO problems (id, title, slug, difficulty, description, functional_requirements, non_functional_requirements, scale, is_pro)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, query, p.ID, p.Title, p.Slug, p.Difficulty, p.Description, funcReqs, nonFuncReqs, scale, p.IsPro)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("problem with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgProblemRepository.CreateProblem: %w", err)
	}
	return nil
}

func (r *pgProblemRepository) FindProblemByID(ctx context.Context, id string) (*model.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE id = $1`
	return r.scanProblem(r.db.QueryRowContext(ctx, query, id), "FindProblemByID")
}

func (r *pgProblemRepository) FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE slug = $1`
	return r.scanProblem(r.db.QueryRowContext(ctx, query, slug), "FindProblemBySlug")
}

func (r *pgProblemRepository) ListProblems(ctx context.Context, proVisible bool) ([]model.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE ($1 OR NOT is_pro) ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, proVisible)
	if err != nil {
		return nil, fmt.Errorf("pgProblemRepository.ListProblems: %w", err)
	}
	defer rows.Close()

	var problems []model.Problem
	for rows.Next() {
		p, err := r.scanProblem(rows, "ListProblems")
		if err != nil {
			return nil, err
		}
		problems = append(problems, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.ListProblems rows: %w", err)
	}
	return problems, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *pgProblemRepository) scanProblem(row rowScanner, method string) (*model.Problem, error) {
	p := &model.Problem{}
	var funcReqs, nonFuncReqs, scale []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Difficulty, &p.Description, &funcReqs, &nonFuncReqs, &scale, &p.IsPro, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.%s: %w", method, err)
	}
	if err := json.Unmarshal(funcReqs, &p.FunctionalRequirements); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.%s unmarshal functional requirements: %w", method, err)
	}
	if err := json.Unmarshal(nonFuncReqs, &p.NonFunctionalRequirements); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.%s unmarshal non-functional requirements: %w", method, err)
	}
	if err := json.Unmarshal(scale, &p.Scale); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.%s unmarshal scale: %w", method, err)
	}
	return p, nil
}
