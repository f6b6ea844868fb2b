package v1

import (
	"context"
	"fmt"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
)

const defaultUpdatedItemCategory = "other"

// ShoppingService manages the caller's shopping lists and their items.
// Item operations first prove the caller owns the parent list.
type ShoppingService struct {
	repo domain.ShoppingRepository
}

func NewShoppingService(repo domain.ShoppingRepository) *ShoppingService {
	return &ShoppingService{repo: repo}
}

func (s *ShoppingService) Lists(ctx context.Context, caller *auth.Identity) ([]domain.ShoppingList, error) {
	lists, err := s.repo.ListsByUser(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	return lists, nil
}

func (s *ShoppingService) CreateList(ctx context.Context, caller *auth.Identity, req domain.ShoppingListRequest) (*domain.ShoppingList, error) {
	if req.Name == "" {
		return nil, invalid("Name is required")
	}

	list, err := s.repo.CreateList(ctx, caller.UserID, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("create shopping list: %w", err)
	}
	return list, nil
}

func (s *ShoppingService) UpdateList(ctx context.Context, caller *auth.Identity, req domain.ShoppingListRequest) (*domain.ShoppingList, error) {
	if req.ID == 0 || req.Name == "" {
		return nil, invalid("ID and name are required")
	}

	list, err := s.repo.UpdateList(ctx, caller.UserID, req.ID, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("update shopping list %d: %w", req.ID, err)
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// DeleteList removes a list together with its items.
func (s *ShoppingService) DeleteList(ctx context.Context, caller *auth.Identity, id int) error {
	if id == 0 {
		return invalid("Shopping list ID is required")
	}

	ok, err := s.repo.DeleteList(ctx, caller.UserID, id)
	if err != nil {
		return fmt.Errorf("delete shopping list %d: %w", id, err)
	}
	if !ok {
		return ErrListNotFound
	}
	return nil
}

func (s *ShoppingService) Items(ctx context.Context, caller *auth.Identity, listID int) ([]domain.ShoppingItem, error) {
	if listID == 0 {
		return nil, invalid("List ID is required")
	}
	if err := s.checkList(ctx, caller, listID); err != nil {
		return nil, err
	}

	items, err := s.repo.ItemsByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items of %d: %w", listID, err)
	}
	return items, nil
}

// CreateItem adds an item. Quantity defaults to 1, a zero price is stored
// as no price, and category defaults to empty.
func (s *ShoppingService) CreateItem(ctx context.Context, caller *auth.Identity, req domain.ShoppingItemRequest) (*domain.ShoppingItem, error) {
	if req.ListID == 0 || req.Name == "" {
		return nil, invalid("List ID and name are required")
	}
	if err := s.checkList(ctx, caller, req.ListID); err != nil {
		return nil, err
	}

	item, err := s.repo.CreateItem(ctx, req.ListID, domain.ShoppingItemInput{
		Name:     req.Name,
		Quantity: quantityOrDefault(req.Quantity),
		Price:    priceOrNil(req.Price),
		Category: req.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create item on %d: %w", req.ListID, err)
	}
	return item, nil
}

// UpdateItem replaces every writable field. Missing fields take their
// defaults rather than keeping the stored value.
func (s *ShoppingService) UpdateItem(ctx context.Context, caller *auth.Identity, req domain.ShoppingItemRequest) (*domain.ShoppingItem, error) {
	if req.ID == 0 {
		return nil, invalid("Item ID is required")
	}
	if err := s.checkItem(ctx, caller, req.ID); err != nil {
		return nil, err
	}

	item, err := s.repo.UpdateItem(ctx, req.ID, domain.ShoppingItemInput{
		Name:        req.Name,
		Quantity:    quantityOrDefault(req.Quantity),
		Price:       priceOrNil(req.Price),
		Category:    orDefault(req.Category, defaultUpdatedItemCategory),
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", req.ID, err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *ShoppingService) DeleteItem(ctx context.Context, caller *auth.Identity, id int) error {
	if id == 0 {
		return invalid("Item ID is required")
	}
	if err := s.checkItem(ctx, caller, id); err != nil {
		return err
	}

	ok, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if !ok {
		return ErrItemNotFound
	}
	return nil
}

func (s *ShoppingService) checkList(ctx context.Context, caller *auth.Identity, listID int) error {
	owned, err := s.repo.ListOwnedBy(ctx, caller.UserID, listID)
	if err != nil {
		return fmt.Errorf("check list %d: %w", listID, err)
	}
	if !owned {
		return ErrListAccessDenied
	}
	return nil
}

func (s *ShoppingService) checkItem(ctx context.Context, caller *auth.Identity, itemID int) error {
	owned, err := s.repo.ItemOwnedBy(ctx, caller.UserID, itemID)
	if err != nil {
		return fmt.Errorf("check item %d: %w", itemID, err)
	}
	if !owned {
		return ErrItemAccessDenied
	}
	return nil
}

func quantityOrDefault(q int) int {
	if q == 0 {
		return 1
	}
	return q
}

func priceOrNil(p *float64) *float64 {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}
