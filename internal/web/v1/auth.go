package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
	"github.com/sentinelshield/shield/internal/logger"
	logicv1 "github.com/sentinelshield/shield/internal/logic/v1"
)

// Register handles POST /api/auth/register. It creates the account but does
// not sign the user in.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		log.Warn().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	user, err := h.svc.Auth.Register(ctx, req)
	if err != nil {
		span.RecordError(err)

		var verr *logicv1.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, logicv1.ErrUserExists):
			log.Warn().Err(err).Msg("Registration rejected")
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		default:
			log.Error().Err(err).Msg("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	log.Info().Int("user_id", user.ID).Msg("Registration successful")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles POST /api/auth/login. On success the session token is
// delivered only through the auth-token cookie.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		log.Warn().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	response, err := h.svc.Auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)

		var verr *logicv1.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, logicv1.ErrInvalidCredentials):
			log.Warn().Msg("Login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			log.Error().Err(err).Msg("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	http.SetCookie(c.Writer, auth.NewSessionCookie(response.Token, h.secureCookies))

	log.Info().Int("user_id", response.User.ID).Msg("Login successful")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    response.User,
	})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
// The token itself stays valid until its exp claim passes.
func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, auth.ClearSessionCookie(h.secureCookies))
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
