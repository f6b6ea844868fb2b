package v1

import (
	"context"
	"fmt"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
)

const defaultNoteCategory = "general"

// NoteService manages the caller's notes.
type NoteService struct {
	repo domain.NoteRepository
}

func NewNoteService(repo domain.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) List(ctx context.Context, caller *auth.Identity) ([]domain.Note, error) {
	notes, err := s.repo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, caller *auth.Identity, req domain.NoteRequest) (*domain.Note, error) {
	if req.Title == "" {
		return nil, invalid("Title is required")
	}

	note, err := s.repo.Create(ctx, caller.UserID, noteInput(req))
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, caller *auth.Identity, req domain.NoteRequest) (*domain.Note, error) {
	if req.ID == 0 || req.Title == "" {
		return nil, invalid("ID and title are required")
	}

	note, err := s.repo.Update(ctx, caller.UserID, req.ID, noteInput(req))
	if err != nil {
		return nil, fmt.Errorf("update note %d: %w", req.ID, err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, caller *auth.Identity, id int) error {
	if id == 0 {
		return invalid("Note ID is required")
	}

	ok, err := s.repo.Delete(ctx, caller.UserID, id)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if !ok {
		return ErrNoteNotFound
	}
	return nil
}

func noteInput(req domain.NoteRequest) domain.NoteInput {
	return domain.NoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   orDefault(req.Category, defaultNoteCategory),
		IsFavorite: req.IsFavorite,
	}
}
