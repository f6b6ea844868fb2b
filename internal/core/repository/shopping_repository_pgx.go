package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentinelshield/shield/internal/core/domain"
)

const itemColumns = `id, name, COALESCE(quantity, 1), price::float8, COALESCE(category, ''),
	COALESCE(is_completed, FALSE), created_at, updated_at`

// PgxShoppingRepository implements domain.ShoppingRepository using pgxpool.
type PgxShoppingRepository struct {
	pool *pgxpool.Pool
}

func NewShoppingRepository(pool *pgxpool.Pool) *PgxShoppingRepository {
	return &PgxShoppingRepository{pool: pool}
}

func (r *PgxShoppingRepository) ListsByUser(ctx context.Context, userID int) ([]domain.ShoppingList, error) {
	query := `
		SELECT sl.id, sl.name, COALESCE(sl.description, ''),
		       COUNT(si.id) AS item_count,
		       COUNT(CASE WHEN si.is_completed = TRUE THEN 1 END) AS completed_count,
		       sl.created_at, sl.updated_at
		FROM shopping_lists sl
		LEFT JOIN shopping_items si ON sl.id = si.list_id
		WHERE sl.user_id = $1
		GROUP BY sl.id, sl.name, sl.description, sl.created_at, sl.updated_at
		ORDER BY sl.created_at DESC
	`
	return collectAll[domain.ShoppingList](r.pool.Query(ctx, query, userID))
}

// CreateList inserts a list. A new list has no items, so both counters are 0.
func (r *PgxShoppingRepository) CreateList(ctx context.Context, userID int, name, description string) (*domain.ShoppingList, error) {
	query := `
		INSERT INTO shopping_lists (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, COALESCE(description, ''), 0, 0, created_at, updated_at
	`
	return collectOne[domain.ShoppingList](r.pool.Query(ctx, query, userID, name, description))
}

func (r *PgxShoppingRepository) UpdateList(ctx context.Context, userID, id int, name, description string) (*domain.ShoppingList, error) {
	query := `
		UPDATE shopping_lists sl
		SET name = $3, description = $4, updated_at = CURRENT_TIMESTAMP
		WHERE sl.id = $1 AND sl.user_id = $2
		RETURNING sl.id, sl.name, COALESCE(sl.description, ''),
		          (SELECT COUNT(*) FROM shopping_items si WHERE si.list_id = sl.id),
		          (SELECT COUNT(*) FROM shopping_items si WHERE si.list_id = sl.id AND si.is_completed = TRUE),
		          sl.created_at, sl.updated_at
	`
	return collectOne[domain.ShoppingList](r.pool.Query(ctx, query, id, userID, name, description))
}

func (r *PgxShoppingRepository) DeleteList(ctx context.Context, userID, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxShoppingRepository) ListOwnedBy(ctx context.Context, userID, listID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM shopping_lists WHERE id = $1 AND user_id = $2)`

	var owned bool
	if err := r.pool.QueryRow(ctx, query, listID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (r *PgxShoppingRepository) ItemOwnedBy(ctx context.Context, userID, itemID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM shopping_items si
			JOIN shopping_lists sl ON si.list_id = sl.id
			WHERE si.id = $1 AND sl.user_id = $2
		)
	`

	var owned bool
	if err := r.pool.QueryRow(ctx, query, itemID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (r *PgxShoppingRepository) ItemsByList(ctx context.Context, listID int) ([]domain.ShoppingItem, error) {
	query := `SELECT ` + itemColumns + ` FROM shopping_items WHERE list_id = $1 ORDER BY is_completed ASC, created_at DESC`
	return collectAll[domain.ShoppingItem](r.pool.Query(ctx, query, listID))
}

func (r *PgxShoppingRepository) CreateItem(ctx context.Context, listID int, in domain.ShoppingItemInput) (*domain.ShoppingItem, error) {
	query := `
		INSERT INTO shopping_items (list_id, name, quantity, price, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns
	return collectOne[domain.ShoppingItem](r.pool.Query(ctx, query,
		listID, in.Name, in.Quantity, in.Price, in.Category))
}

func (r *PgxShoppingRepository) UpdateItem(ctx context.Context, id int, in domain.ShoppingItemInput) (*domain.ShoppingItem, error) {
	query := `
		UPDATE shopping_items
		SET name = $2, quantity = $3, price = $4, category = $5, is_completed = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + itemColumns
	return collectOne[domain.ShoppingItem](r.pool.Query(ctx, query,
		id, in.Name, in.Quantity, in.Price, in.Category, in.IsCompleted))
}

func (r *PgxShoppingRepository) DeleteItem(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shopping_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
