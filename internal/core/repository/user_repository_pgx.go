package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentinelshield/shield/internal/core/domain"
)

const userColumns = `id, email, name, created_at, updated_at`

// PgxUserRepository implements domain.UserRepository using pgxpool.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

// GetByEmail returns the user matching the given email.
// Returns (nil, nil) when no user is found.
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1`

	var row domain.UserRow
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&row.ID, &row.Email, &row.Name, &row.PasswordHash, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// GetByID returns the user with the given id.
// Returns (nil, nil) when no user is found.
func (r *PgxUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return collectOne[domain.User](r.pool.Query(ctx, query, id))
}

// ExistsByEmail returns true when a user with the given email exists.
func (r *PgxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// Create inserts a new user and returns it.
func (r *PgxUserRepository) Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error) {
	query := `INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING ` + userColumns
	return collectOne[domain.User](r.pool.Query(ctx, query, email, name, passwordHash))
}

// Update replaces email and name, and the password hash when one is given.
func (r *PgxUserRepository) Update(ctx context.Context, id int, email, name string, passwordHash *string) (*domain.User, error) {
	if passwordHash != nil {
		query := `
			UPDATE users
			SET email = $2, name = $3, password_hash = $4, updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
			RETURNING ` + userColumns
		return collectOne[domain.User](r.pool.Query(ctx, query, id, email, name, *passwordHash))
	}

	query := `
		UPDATE users
		SET email = $2, name = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + userColumns
	return collectOne[domain.User](r.pool.Query(ctx, query, id, email, name))
}

// UpdateName changes only the display name. Email is immutable here.
func (r *PgxUserRepository) UpdateName(ctx context.Context, id int, name string) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + userColumns
	return collectOne[domain.User](r.pool.Query(ctx, query, id, name))
}

// Delete removes the user with the given id.
func (r *PgxUserRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
