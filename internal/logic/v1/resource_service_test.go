package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
	"github.com/sentinelshield/shield/internal/testutil"
)

var (
	alice   = &auth.Identity{UserID: 1, Email: "alice@example.com", Name: "Alice"}
	mallory = &auth.Identity{UserID: 2, Email: "mallory@example.com", Name: "Mallory"}
)

func TestPasswordService_DefaultsAndOwnership(t *testing.T) {
	svc := NewPasswordService(testutil.NewMemStore().Passwords())
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, domain.PasswordRequest{Title: "GitHub"})
	requireValidation(t, err, "Title and password are required")

	entry, err := svc.Create(ctx, alice, domain.PasswordRequest{Title: "GitHub", Password: "p@ss"})
	require.NoError(t, err)
	assert.Equal(t, "other", entry.Category)
	assert.Equal(t, "", entry.Website)

	_, err = svc.Update(ctx, mallory, domain.PasswordRequest{ID: entry.ID, Title: "mine", Password: "x"})
	assert.ErrorIs(t, err, ErrPasswordNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, mallory, entry.ID), ErrPasswordNotFound)

	visible, err := svc.List(ctx, mallory)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.Update(ctx, alice, domain.PasswordRequest{ID: entry.ID, Title: "GitHub"})
	requireValidation(t, err, "ID, title and password are required")

	requireValidation(t, svc.Delete(ctx, alice, 0), "Password ID is required")
	require.NoError(t, svc.Delete(ctx, alice, entry.ID))
}

func TestPasswordService_ListNewestFirst(t *testing.T) {
	svc := NewPasswordService(testutil.NewMemStore().Passwords())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, alice, domain.PasswordRequest{Title: title, Password: "x"})
		require.NoError(t, err)
	}

	entries, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Title)
	assert.Equal(t, "first", entries[2].Title)
}

func TestNoteService_DefaultsAndOwnership(t *testing.T) {
	svc := NewNoteService(testutil.NewMemStore().Notes())
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, domain.NoteRequest{})
	requireValidation(t, err, "Title is required")

	note, err := svc.Create(ctx, alice, domain.NoteRequest{Title: "Ideas"})
	require.NoError(t, err)
	assert.Equal(t, "general", note.Category)
	assert.False(t, note.IsFavorite)

	updated, err := svc.Update(ctx, alice, domain.NoteRequest{ID: note.ID, Title: "Ideas", IsFavorite: true, Category: "work"})
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "work", updated.Category)

	_, err = svc.Update(ctx, mallory, domain.NoteRequest{ID: note.ID, Title: "stolen"})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = svc.Update(ctx, alice, domain.NoteRequest{Title: "no id"})
	requireValidation(t, err, "ID and title are required")
	requireValidation(t, svc.Delete(ctx, alice, 0), "Note ID is required")
}

func TestShoppingService_ItemDefaults(t *testing.T) {
	svc := NewShoppingService(testutil.NewMemStore().Shopping())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, alice, domain.ShoppingListRequest{Name: "Groceries"})
	require.NoError(t, err)

	zero := 0.0
	item, err := svc.CreateItem(ctx, alice, domain.ShoppingItemRequest{ListID: list.ID, Name: "Milk", Price: &zero})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Nil(t, item.Price)
	assert.Equal(t, "", item.Category)

	price := 2.5
	updated, err := svc.UpdateItem(ctx, alice, domain.ShoppingItemRequest{ID: item.ID, Name: "Milk", Quantity: 3, Price: &price, IsCompleted: true})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 2.5, *updated.Price)
	assert.Equal(t, "other", updated.Category)
	assert.True(t, updated.IsCompleted)
}

func TestShoppingService_ListCountsAndItemOrder(t *testing.T) {
	svc := NewShoppingService(testutil.NewMemStore().Shopping())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, alice, domain.ShoppingListRequest{Name: "Hardware"})
	require.NoError(t, err)

	done, err := svc.CreateItem(ctx, alice, domain.ShoppingItemRequest{ListID: list.ID, Name: "Nails"})
	require.NoError(t, err)
	_, err = svc.UpdateItem(ctx, alice, domain.ShoppingItemRequest{ID: done.ID, Name: "Nails", IsCompleted: true})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, alice, domain.ShoppingItemRequest{ListID: list.ID, Name: "Screws"})
	require.NoError(t, err)

	lists, err := svc.Lists(ctx, alice)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, 2, lists[0].ItemCount)
	assert.Equal(t, 1, lists[0].CompletedCount)

	items, err := svc.Items(ctx, alice, list.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Screws", items[0].Name)
	assert.Equal(t, "Nails", items[1].Name)
}

func TestShoppingService_ForeignListAndItemAreHidden(t *testing.T) {
	svc := NewShoppingService(testutil.NewMemStore().Shopping())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, alice, domain.ShoppingListRequest{Name: "Private"})
	require.NoError(t, err)
	item, err := svc.CreateItem(ctx, alice, domain.ShoppingItemRequest{ListID: list.ID, Name: "Gift"})
	require.NoError(t, err)

	_, err = svc.Items(ctx, mallory, list.ID)
	assert.ErrorIs(t, err, ErrListAccessDenied)

	_, err = svc.CreateItem(ctx, mallory, domain.ShoppingItemRequest{ListID: list.ID, Name: "Spam"})
	assert.ErrorIs(t, err, ErrListAccessDenied)

	_, err = svc.UpdateItem(ctx, mallory, domain.ShoppingItemRequest{ID: item.ID, Name: "Mine"})
	assert.ErrorIs(t, err, ErrItemAccessDenied)
	assert.ErrorIs(t, svc.DeleteItem(ctx, mallory, item.ID), ErrItemAccessDenied)

	_, err = svc.UpdateList(ctx, mallory, domain.ShoppingListRequest{ID: list.ID, Name: "Mine"})
	assert.ErrorIs(t, err, ErrListNotFound)
	assert.ErrorIs(t, svc.DeleteList(ctx, mallory, list.ID), ErrListNotFound)
}

func TestShoppingService_DeleteListRemovesItems(t *testing.T) {
	svc := NewShoppingService(testutil.NewMemStore().Shopping())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, alice, domain.ShoppingListRequest{Name: "Party"})
	require.NoError(t, err)
	item, err := svc.CreateItem(ctx, alice, domain.ShoppingItemRequest{ListID: list.ID, Name: "Cake"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteList(ctx, alice, list.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, alice, item.ID), ErrItemAccessDenied)

	_, err = svc.Items(ctx, alice, list.ID)
	assert.ErrorIs(t, err, ErrListAccessDenied)
}

func TestShoppingService_Validation(t *testing.T) {
	svc := NewShoppingService(testutil.NewMemStore().Shopping())
	ctx := context.Background()

	_, err := svc.CreateList(ctx, alice, domain.ShoppingListRequest{})
	requireValidation(t, err, "Name is required")
	_, err = svc.UpdateList(ctx, alice, domain.ShoppingListRequest{Name: "x"})
	requireValidation(t, err, "ID and name are required")
	requireValidation(t, svc.DeleteList(ctx, alice, 0), "Shopping list ID is required")
	_, err = svc.Items(ctx, alice, 0)
	requireValidation(t, err, "List ID is required")
	_, err = svc.CreateItem(ctx, alice, domain.ShoppingItemRequest{Name: "x"})
	requireValidation(t, err, "List ID and name are required")
	_, err = svc.UpdateItem(ctx, alice, domain.ShoppingItemRequest{})
	requireValidation(t, err, "Item ID is required")
	requireValidation(t, svc.DeleteItem(ctx, alice, 0), "Item ID is required")
}
