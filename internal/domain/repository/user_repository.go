package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByIDs returns the users that exist for the given IDs, keyed by ID.
	// IDs that do not resolve are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, name, email, hashed_password, role, subscription_status, profile_image)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword, user.Role, user.SubscriptionStatus, user.ProfileImage)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, name, email, hashed_password, role, subscription_status, profile_image, created_at, updated_at
	          FROM users WHERE email = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.SubscriptionStatus, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, name, email, hashed_password, role, subscription_status, profile_image, created_at, updated_at
	          FROM users WHERE id = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.SubscriptionStatus, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*model.User, error) {
	users := make(map[string]*model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	query := `SELECT id, name, email, hashed_password, role, subscription_status, profile_image, created_at, updated_at
	          FROM users WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.FindByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.SubscriptionStatus, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgUserRepository.FindByIDs scan: %w", err)
		}
		users[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.FindByIDs rows: %w", err)
	}
	return users, nil
}
