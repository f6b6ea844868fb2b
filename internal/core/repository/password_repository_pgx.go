package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentinelshield/shield/internal/core/domain"
)

const passwordColumns = `id, title, COALESCE(website, ''), COALESCE(username, ''), password,
	COALESCE(category, 'other'), COALESCE(notes, ''), created_at, updated_at`

// PgxPasswordRepository implements domain.PasswordRepository using pgxpool.
type PgxPasswordRepository struct {
	pool *pgxpool.Pool
}

func NewPasswordRepository(pool *pgxpool.Pool) *PgxPasswordRepository {
	return &PgxPasswordRepository{pool: pool}
}

func (r *PgxPasswordRepository) ListByUser(ctx context.Context, userID int) ([]domain.PasswordEntry, error) {
	query := `SELECT ` + passwordColumns + ` FROM passwords WHERE user_id = $1 ORDER BY created_at DESC`
	return collectAll[domain.PasswordEntry](r.pool.Query(ctx, query, userID))
}

func (r *PgxPasswordRepository) Create(ctx context.Context, userID int, in domain.PasswordInput) (*domain.PasswordEntry, error) {
	query := `
		INSERT INTO passwords (user_id, title, website, username, password, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + passwordColumns
	return collectOne[domain.PasswordEntry](r.pool.Query(ctx, query,
		userID, in.Title, in.Website, in.Username, in.Password, in.Category, in.Notes))
}

func (r *PgxPasswordRepository) Update(ctx context.Context, userID, id int, in domain.PasswordInput) (*domain.PasswordEntry, error) {
	query := `
		UPDATE passwords
		SET title = $3, website = $4, username = $5, password = $6, category = $7, notes = $8,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING ` + passwordColumns
	return collectOne[domain.PasswordEntry](r.pool.Query(ctx, query,
		id, userID, in.Title, in.Website, in.Username, in.Password, in.Category, in.Notes))
}

func (r *PgxPasswordRepository) Delete(ctx context.Context, userID, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM passwords WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
