package domain

import (
	"context"
	"time"
)

// PasswordEntry is a stored credential. Values are kept as entered.
type PasswordEntry struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Website   string    `json:"website"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PasswordInput carries the writable fields of a PasswordEntry, with
// defaults already applied.
type PasswordInput struct {
	Title    string
	Website  string
	Username string
	Password string
	Category string
	Notes    string
}

// PasswordRepository defines the data-access contract for password entries.
// Every method is scoped to the owning user.
type PasswordRepository interface {
	// ListByUser returns the user's entries, newest first.
	ListByUser(ctx context.Context, userID int) ([]PasswordEntry, error)

	Create(ctx context.Context, userID int, in PasswordInput) (*PasswordEntry, error)

	// Update returns (nil, nil) when the entry does not exist or belongs to
	// someone else.
	Update(ctx context.Context, userID, id int, in PasswordInput) (*PasswordEntry, error)

	Delete(ctx context.Context, userID, id int) (bool, error)
}
