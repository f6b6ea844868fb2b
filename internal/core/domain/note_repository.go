package domain

import (
	"context"
	"time"
)

type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NoteInput struct {
	Title      string
	Content    string
	Category   string
	IsFavorite bool
}

// NoteRepository defines the data-access contract for notes, scoped to the
// owning user.
type NoteRepository interface {
	ListByUser(ctx context.Context, userID int) ([]Note, error)
	Create(ctx context.Context, userID int, in NoteInput) (*Note, error)
	Update(ctx context.Context, userID, id int, in NoteInput) (*Note, error)
	Delete(ctx context.Context, userID, id int) (bool, error)
}
