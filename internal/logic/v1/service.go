package v1

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
	"github.com/sentinelshield/shield/middleware"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// TokenIssuer mints session tokens for a verified identity.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

// AuthService implements registration and login.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type AuthService struct {
	users  domain.UserRepository
	hasher auth.Hasher
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher auth.Hasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if req.Email == "" || req.Password == "" {
		return nil, invalid("Email and password are required")
	}
	email := strings.ToLower(req.Email)

	row, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", email, err)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
	}

	if !s.hasher.Verify(req.Password, row.PasswordHash) {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(auth.Identity{
		UserID: row.ID,
		Email:  row.Email,
		Name:   row.Name,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.Int("user.id", row.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &domain.AuthResponse{
		Token: token,
		User: domain.AccountSummary{
			ID:        row.ID,
			Email:     row.Email,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		},
	}, nil
}

// Register validates and stores a new account. It does not sign the user in.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AccountSummary, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, invalid("Email, password, and name are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, invalid("Invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalid("Password must be at least 6 characters long")
	}
	email := strings.ToLower(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, fmt.Errorf("register %q: %w", email, ErrUserExists)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	user, err := s.users.Create(ctx, email, req.Name, passwordHash)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(
		attribute.Int("user.id", user.ID),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")

	return &domain.AccountSummary{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}
