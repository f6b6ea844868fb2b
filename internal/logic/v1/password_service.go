package v1

import (
	"context"
	"fmt"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
)

const defaultPasswordCategory = "other"

// PasswordService manages the caller's stored credentials.
type PasswordService struct {
	repo domain.PasswordRepository
}

func NewPasswordService(repo domain.PasswordRepository) *PasswordService {
	return &PasswordService{repo: repo}
}

func (s *PasswordService) List(ctx context.Context, caller *auth.Identity) ([]domain.PasswordEntry, error) {
	entries, err := s.repo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list passwords: %w", err)
	}
	return entries, nil
}

func (s *PasswordService) Create(ctx context.Context, caller *auth.Identity, req domain.PasswordRequest) (*domain.PasswordEntry, error) {
	if req.Title == "" || req.Password == "" {
		return nil, invalid("Title and password are required")
	}

	entry, err := s.repo.Create(ctx, caller.UserID, passwordInput(req))
	if err != nil {
		return nil, fmt.Errorf("create password: %w", err)
	}
	return entry, nil
}

func (s *PasswordService) Update(ctx context.Context, caller *auth.Identity, req domain.PasswordRequest) (*domain.PasswordEntry, error) {
	if req.ID == 0 || req.Title == "" || req.Password == "" {
		return nil, invalid("ID, title and password are required")
	}

	entry, err := s.repo.Update(ctx, caller.UserID, req.ID, passwordInput(req))
	if err != nil {
		return nil, fmt.Errorf("update password %d: %w", req.ID, err)
	}
	if entry == nil {
		return nil, ErrPasswordNotFound
	}
	return entry, nil
}

func (s *PasswordService) Delete(ctx context.Context, caller *auth.Identity, id int) error {
	if id == 0 {
		return invalid("Password ID is required")
	}

	ok, err := s.repo.Delete(ctx, caller.UserID, id)
	if err != nil {
		return fmt.Errorf("delete password %d: %w", id, err)
	}
	if !ok {
		return ErrPasswordNotFound
	}
	return nil
}

func passwordInput(req domain.PasswordRequest) domain.PasswordInput {
	return domain.PasswordInput{
		Title:    req.Title,
		Website:  req.Website,
		Username: req.Username,
		Password: req.Password,
		Category: orDefault(req.Category, defaultPasswordCategory),
		Notes:    req.Notes,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
