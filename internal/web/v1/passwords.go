package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentinelshield/shield/internal/core/domain"
)

func (h *Handler) ListPasswords(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller := h.viewer(ctx, c)
	if caller == nil {
		unauthenticated(c)
		return
	}

	entries, err := h.svc.Passwords.List(ctx, caller)
	if err != nil {
		respondError(c, span, err, "Failed to fetch passwords")
		return
	}
	respond(c, http.StatusOK, entries)
}

func (h *Handler) CreatePassword(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to create password")
		return
	}

	var req domain.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	entry, err := h.svc.Passwords.Create(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to create password")
		return
	}
	respond(c, http.StatusCreated, entry)
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to update password")
		return
	}

	var req domain.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	entry, err := h.svc.Passwords.Update(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to update password")
		return
	}
	respond(c, http.StatusOK, entry)
}

func (h *Handler) DeletePassword(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to delete password")
		return
	}

	if err := h.svc.Passwords.Delete(ctx, caller, queryID(c, "id")); err != nil {
		respondError(c, span, err, "Failed to delete password")
		return
	}
	deleted(c, "Password deleted successfully")
}
