package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentinelshield/shield/internal/core/domain"
)

func (h *Handler) ListShoppingLists(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller := h.viewer(ctx, c)
	if caller == nil {
		unauthenticated(c)
		return
	}

	lists, err := h.svc.Shopping.Lists(ctx, caller)
	if err != nil {
		respondError(c, span, err, "Failed to fetch shopping lists")
		return
	}
	respond(c, http.StatusOK, lists)
}

func (h *Handler) CreateShoppingList(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to create shopping list")
		return
	}

	var req domain.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	list, err := h.svc.Shopping.CreateList(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to create shopping list")
		return
	}
	respond(c, http.StatusCreated, list)
}

func (h *Handler) UpdateShoppingList(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to update shopping list")
		return
	}

	var req domain.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	list, err := h.svc.Shopping.UpdateList(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to update shopping list")
		return
	}
	respond(c, http.StatusOK, list)
}

// DeleteShoppingList handles DELETE /api/shopping-lists?id=. Items on the
// list are removed with it.
func (h *Handler) DeleteShoppingList(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to delete shopping list")
		return
	}

	if err := h.svc.Shopping.DeleteList(ctx, caller, queryID(c, "id")); err != nil {
		respondError(c, span, err, "Failed to delete shopping list")
		return
	}
	deleted(c, "Shopping list deleted successfully")
}

// ListShoppingItems handles GET /api/shopping-items?listId=.
func (h *Handler) ListShoppingItems(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller := h.viewer(ctx, c)
	if caller == nil {
		unauthenticated(c)
		return
	}

	items, err := h.svc.Shopping.Items(ctx, caller, queryID(c, "listId"))
	if err != nil {
		respondError(c, span, err, "Failed to fetch shopping items")
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) CreateShoppingItem(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to create shopping item")
		return
	}

	var req domain.ShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	item, err := h.svc.Shopping.CreateItem(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to create shopping item")
		return
	}
	respond(c, http.StatusCreated, item)
}

func (h *Handler) UpdateShoppingItem(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to update shopping item")
		return
	}

	var req domain.ShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	item, err := h.svc.Shopping.UpdateItem(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to update shopping item")
		return
	}
	respond(c, http.StatusOK, item)
}

func (h *Handler) DeleteShoppingItem(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to delete shopping item")
		return
	}

	if err := h.svc.Shopping.DeleteItem(ctx, caller, queryID(c, "id")); err != nil {
		respondError(c, span, err, "Failed to delete shopping item")
		return
	}
	deleted(c, "Shopping item deleted successfully")
}
