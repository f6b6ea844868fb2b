package domain

import (
	"context"
	"time"
)

// User is the public view of a users record.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRow represents a user record returned from the database.
// It includes the password hash so the Logic layer can verify credentials.
type UserRow struct {
	ID           int
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only, never on SQL or pgx directly.
type UserRepository interface {
	// GetByEmail returns the user matching the given email, hash included.
	// Returns (nil, nil) when no user is found.
	GetByEmail(ctx context.Context, email string) (*UserRow, error)

	// GetByID returns the user with the given id.
	// Returns (nil, nil) when no user is found.
	GetByID(ctx context.Context, id int) (*User, error)

	// ExistsByEmail returns true when a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user and returns it.
	Create(ctx context.Context, email, name, passwordHash string) (*User, error)

	// Update replaces email and name, and the password hash when non-nil.
	// Returns (nil, nil) when no user has the given id.
	Update(ctx context.Context, id int, email, name string, passwordHash *string) (*User, error)

	// UpdateName changes only the display name.
	// Returns (nil, nil) when no user has the given id.
	UpdateName(ctx context.Context, id int, name string) (*User, error)

	// Delete removes the user and, by cascade, everything they own.
	// Returns false when no user has the given id.
	Delete(ctx context.Context, id int) (bool, error)
}
