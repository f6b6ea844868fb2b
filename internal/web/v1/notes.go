package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentinelshield/shield/internal/core/domain"
)

func (h *Handler) ListNotes(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller := h.viewer(ctx, c)
	if caller == nil {
		unauthenticated(c)
		return
	}

	notes, err := h.svc.Notes.List(ctx, caller)
	if err != nil {
		respondError(c, span, err, "Failed to fetch notes")
		return
	}
	respond(c, http.StatusOK, notes)
}

func (h *Handler) CreateNote(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to create note")
		return
	}

	var req domain.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	note, err := h.svc.Notes.Create(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to create note")
		return
	}
	respond(c, http.StatusCreated, note)
}

func (h *Handler) UpdateNote(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to update note")
		return
	}

	var req domain.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, span, err)
		return
	}

	note, err := h.svc.Notes.Update(ctx, caller, req)
	if err != nil {
		respondError(c, span, err, "Failed to update note")
		return
	}
	respond(c, http.StatusOK, note)
}

func (h *Handler) DeleteNote(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	caller, err := h.actor(ctx, c)
	if err != nil {
		respondError(c, span, err, "Failed to delete note")
		return
	}

	if err := h.svc.Notes.Delete(ctx, caller, queryID(c, "id")); err != nil {
		respondError(c, span, err, "Failed to delete note")
		return
	}
	deleted(c, "Note deleted successfully")
}
