package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentinelshield/shield/internal/core/domain"
)

const noteColumns = `id, title, COALESCE(content, ''), COALESCE(category, 'general'),
	COALESCE(is_favorite, FALSE), created_at, updated_at`

// PgxNoteRepository implements domain.NoteRepository using pgxpool.
type PgxNoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *PgxNoteRepository {
	return &PgxNoteRepository{pool: pool}
}

func (r *PgxNoteRepository) ListByUser(ctx context.Context, userID int) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY created_at DESC`
	return collectAll[domain.Note](r.pool.Query(ctx, query, userID))
}

func (r *PgxNoteRepository) Create(ctx context.Context, userID int, in domain.NoteInput) (*domain.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, category, is_favorite)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + noteColumns
	return collectOne[domain.Note](r.pool.Query(ctx, query,
		userID, in.Title, in.Content, in.Category, in.IsFavorite))
}

func (r *PgxNoteRepository) Update(ctx context.Context, userID, id int, in domain.NoteInput) (*domain.Note, error) {
	query := `
		UPDATE notes
		SET title = $3, content = $4, category = $5, is_favorite = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING ` + noteColumns
	return collectOne[domain.Note](r.pool.Query(ctx, query,
		id, userID, in.Title, in.Content, in.Category, in.IsFavorite))
}

func (r *PgxNoteRepository) Delete(ctx context.Context, userID, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
