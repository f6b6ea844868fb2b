package v1

import (
	"context"
	"fmt"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
)

// UserService manages account records and the caller's own profile.
type UserService struct {
	users  domain.UserRepository
	hasher auth.Hasher
}

func NewUserService(users domain.UserRepository, hasher auth.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Lookup finds a user by id or, when id is 0, by email.
func (s *UserService) Lookup(ctx context.Context, id int, email string) (*domain.User, error) {
	if id == 0 && email == "" {
		return nil, invalid("User ID or email is required")
	}

	var (
		user *domain.User
		err  error
	)
	if id != 0 {
		user, err = s.users.GetByID(ctx, id)
	} else {
		var row *domain.UserRow
		row, err = s.users.GetByEmail(ctx, email)
		if row != nil {
			user, err = s.users.GetByID(ctx, row.ID)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create stores a new user. Unlike Register it returns the full record.
func (s *UserService) Create(ctx context.Context, req domain.UserRequest) (*domain.User, error) {
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return nil, invalid("Email, name, and password are required")
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("create %q: %w", req.Email, ErrUserExists)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, req.Email, req.Name, hash)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Update replaces email and name; a non-empty password is re-hashed.
func (s *UserService) Update(ctx context.Context, req domain.UserRequest) (*domain.User, error) {
	if req.ID == 0 {
		return nil, invalid("User ID is required")
	}

	var hash *string
	if req.Password != "" {
		h, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		hash = &h
	}

	user, err := s.users.Update(ctx, req.ID, req.Email, req.Name, hash)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", req.ID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if id == 0 {
		return invalid("User ID is required")
	}

	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// Profile returns the caller's own record.
func (s *UserService) Profile(ctx context.Context, caller *auth.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile %d: %w", caller.UserID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the caller's display name. Email cannot be changed
// here. Tokens already issued keep the old name until they expire.
func (s *UserService) UpdateProfile(ctx context.Context, caller *auth.Identity, req domain.ProfileRequest) (*domain.User, error) {
	if req.Name == "" {
		return nil, invalid("Name is required")
	}

	user, err := s.users.UpdateName(ctx, caller.UserID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("update profile %d: %w", caller.UserID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
