package domain

import (
	"context"
	"time"
)

// ShoppingList is a named list with item counters computed at read time.
type ShoppingList struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ItemCount      int       `json:"item_count"`
	CompletedCount int       `json:"completed_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ShoppingItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Price       *float64  `json:"price"`
	Category    string    `json:"category"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ShoppingItemInput struct {
	Name        string
	Quantity    int
	Price       *float64
	Category    string
	IsCompleted bool
}

// ShoppingRepository defines the data-access contract for shopping lists and
// their items. Lists are scoped to the owning user; items are reached only
// after ownership of their list has been checked.
type ShoppingRepository interface {
	// ListsByUser returns the user's lists with item counters, newest first.
	ListsByUser(ctx context.Context, userID int) ([]ShoppingList, error)
	CreateList(ctx context.Context, userID int, name, description string) (*ShoppingList, error)
	UpdateList(ctx context.Context, userID, id int, name, description string) (*ShoppingList, error)
	// DeleteList removes the list and, by cascade, its items.
	DeleteList(ctx context.Context, userID, id int) (bool, error)

	// ListOwnedBy reports whether listID belongs to userID.
	ListOwnedBy(ctx context.Context, userID, listID int) (bool, error)
	// ItemOwnedBy reports whether itemID sits on a list that belongs to userID.
	ItemOwnedBy(ctx context.Context, userID, itemID int) (bool, error)

	// ItemsByList returns open items first, then newest first.
	ItemsByList(ctx context.Context, listID int) ([]ShoppingItem, error)
	CreateItem(ctx context.Context, listID int, in ShoppingItemInput) (*ShoppingItem, error)
	UpdateItem(ctx context.Context, id int, in ShoppingItemInput) (*ShoppingItem, error)
	DeleteItem(ctx context.Context, id int) (bool, error)
}
