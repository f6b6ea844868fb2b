package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentinelshield/shield/internal/core/domain"
)

// GetProfile handles GET /api/users/me.
func (h *Handler) GetProfile(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller := h.viewer(ctx, c)
	if caller == nil {
		unauthenticated(c)
		return
	}

	user, err := h.svc.Users.Profile(ctx, caller)
	if err != nil {
		respondError(c, span, err, "Failed to fetch user profile")
		return
	}
	respond(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/me. Only the name can change.
func (h *Handler) UpdateProfile(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to update user profile")
		return
	}

	var req domain.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	user, err := h.svc.Users.UpdateProfile(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to update user profile")
		return
	}
	respond(c, http.StatusOK, user)
}

// GetUser handles GET /api/users?id= or ?email=.
func (h *Handler) GetUser(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if h.viewer(ctx, c) == nil {
		unauthenticated(c)
		return
	}

	user, err := h.svc.Users.Lookup(ctx, queryID(c, "id"), c.Query("email"))
	if err != nil {
		respondError(c, span, err, "Failed to fetch user")
		return
	}
	respond(c, http.StatusOK, user)
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if _, err := h.actor(ctx, c); err != nil {
		respondError(c, span, err, "Failed to create user")
		return
	}

	var req domain.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	user, err := h.svc.Users.Create(ctx, req)
	if err != nil {
		respondError(c, span, err, "Failed to create user")
		return
	}
	respond(c, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users.
func (h *Handler) UpdateUser(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if _, err := h.actor(ctx, c); err != nil {
		respondError(c, span, err, "Failed to update user")
		return
	}

	var req domain.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	user, err := h.svc.Users.Update(ctx, req)
	if err != nil {
		respondError(c, span, err, "Failed to update user")
		return
	}
	respond(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users?id=. Owned records go with the user.
func (h *Handler) DeleteUser(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if _, err := h.actor(ctx, c); err != nil {
		respondError(c, span, err, "Failed to delete user")
		return
	}

	if err := h.svc.Users.Delete(ctx, queryID(c, "id")); err != nil {
		respondError(c, span, err, "Failed to delete user")
		return
	}
	deleted(c, "User deleted successfully")
}
