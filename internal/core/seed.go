package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/sentinelshield/shield/internal/auth"
)

// Demo account created by the seeder.
const (
	DemoEmail    = "demo@example.com"
	DemoName     = "Demo User"
	DemoPassword = "password123"

	// placeholderHash is a digest shipped by early fixtures that bcrypt can
	// never match. A demo user still carrying it gets a real hash.
	placeholderHash = "$2a$10$dummy.hash.for.demo.purposes"
)

// Seeder inserts the demo user and sample data. Each resource type is only
// seeded when the demo user has none of it.
type Seeder struct {
	pool   *pgxpool.Pool
	hasher auth.Hasher
}

func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{pool: pool, hasher: auth.NewHasher(auth.SeedCost)}
}

// Seed runs all seed steps inside a single transaction.
func (s *Seeder) Seed(ctx context.Context) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		userID, err := s.demoUser(ctx, tx)
		if err != nil {
			return fmt.Errorf("demo user: %w", err)
		}
		if err := s.passwords(ctx, tx, userID); err != nil {
			return fmt.Errorf("sample passwords: %w", err)
		}
		if err := s.notes(ctx, tx, userID); err != nil {
			return fmt.Errorf("sample notes: %w", err)
		}
		if err := s.shopping(ctx, tx, userID); err != nil {
			return fmt.Errorf("sample shopping lists: %w", err)
		}
		return nil
	})
}

func (s *Seeder) demoUser(ctx context.Context, tx pgx.Tx) (int, error) {
	var (
		userID int
		hash   string
	)
	err := tx.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE email = $1 LIMIT 1`, DemoEmail).Scan(&userID, &hash)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		digest, err := s.hasher.Hash(DemoPassword)
		if err != nil {
			return 0, err
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id`,
			DemoEmail, DemoName, digest,
		).Scan(&userID)
		if err != nil {
			return 0, err
		}
		log.Info().Int("user_id", userID).Msg("Demo user created")
		return userID, nil
	case err != nil:
		return 0, err
	}

	if hash == placeholderHash {
		digest, err := s.hasher.Hash(DemoPassword)
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, digest, userID); err != nil {
			return 0, err
		}
		log.Info().Int("user_id", userID).Msg("Updated demo user password hash")
	}
	return userID, nil
}

func isEmpty(ctx context.Context, tx pgx.Tx, table string, userID int) (bool, error) {
	var n int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM `+pgx.Identifier{table}.Sanitize()+` WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *Seeder) passwords(ctx context.Context, tx pgx.Tx, userID int) error {
	empty, err := isEmpty(ctx, tx, "passwords", userID)
	if err != nil || !empty {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO passwords (user_id, title, website, username, password, category, notes)
		VALUES
			($1, 'Gmail Account', 'gmail.com', 'demo@gmail.com', 'SecurePass123!', 'email', 'Primary email account'),
			($1, 'Facebook', 'facebook.com', 'demo.user', 'MyFbPass456#', 'social', 'Social media account'),
			($1, 'Bank Account', 'mybank.com', 'demo_user', 'BankSecure789$', 'finance', 'Online banking login'),
			($1, 'Netflix', 'netflix.com', 'demo@gmail.com', 'NetflixPass321@', 'entertainment', 'Streaming service'),
			($1, 'Work Portal', 'company.com', 'demo.employee', 'WorkPass654%', 'work', 'Company intranet access')
	`, userID)
	return err
}

func (s *Seeder) notes(ctx context.Context, tx pgx.Tx, userID int) error {
	empty, err := isEmpty(ctx, tx, "notes", userID)
	if err != nil || !empty {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notes (user_id, title, content, category, is_favorite)
		VALUES
			($1, 'Meeting Notes', 'Discussed project timeline and deliverables. Next meeting scheduled for Friday.', 'work', TRUE),
			($1, 'Recipe Ideas', 'Try the new pasta recipe with garlic and herbs. Remember to buy fresh basil.', 'personal', FALSE),
			($1, 'Book Recommendations', E'The Midnight Library - Matt Haig\nAtomic Habits - James Clear\nProject Hail Mary - Andy Weir', 'personal', TRUE),
			($1, 'Travel Plans', 'Summer vacation to Italy. Check flights, book hotels in Rome and Florence.', 'travel', FALSE),
			($1, 'Important Reminders', 'Renew car insurance by end of month. Schedule dentist appointment.', 'general', TRUE)
	`, userID)
	return err
}

func (s *Seeder) shopping(ctx context.Context, tx pgx.Tx, userID int) error {
	empty, err := isEmpty(ctx, tx, "shopping_lists", userID)
	if err != nil || !empty {
		return err
	}

	rows, err := tx.Query(ctx, `
		INSERT INTO shopping_lists (user_id, name, description)
		VALUES
			($1, 'Weekly Groceries', 'Regular weekly grocery shopping'),
			($1, 'Party Supplies', 'Items needed for birthday party'),
			($1, 'Home Improvement', 'Hardware store shopping list')
		RETURNING id
	`, userID)
	if err != nil {
		return err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return err
	}
	if len(ids) != 3 {
		return fmt.Errorf("expected 3 lists, got %d", len(ids))
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO shopping_items (list_id, name, quantity, category, is_completed)
		VALUES
			($1, 'Milk', 1, 'dairy', FALSE),
			($1, 'Bread', 2, 'bakery', FALSE),
			($1, 'Apples', 6, 'produce', TRUE),
			($1, 'Chicken Breast', 2, 'meat', FALSE),
			($2, 'Balloons', 20, 'decorations', FALSE),
			($2, 'Birthday Cake', 1, 'bakery', FALSE),
			($2, 'Paper Plates', 2, 'party supplies', TRUE),
			($3, 'Screws', 1, 'hardware', FALSE),
			($3, 'Paint Brush', 3, 'tools', FALSE)
	`, ids[0], ids[1], ids[2])
	return err
}
