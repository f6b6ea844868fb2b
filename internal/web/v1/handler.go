package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/logger"
	logicv1 "github.com/sentinelshield/shield/internal/logic/v1"
	"github.com/sentinelshield/shield/middleware"
)

// Services bundles the business logic the handlers call into.
type Services struct {
	Auth      *logicv1.AuthService
	Users     *logicv1.UserService
	Passwords *logicv1.PasswordService
	Notes     *logicv1.NoteService
	Shopping  *logicv1.ShoppingService
}

// Handler groups HTTP handlers for the JSON API.
// Dependencies are injected via the constructor, no global state.
type Handler struct {
	svc           Services
	resolver      *auth.Resolver
	secureCookies bool
}

// NewHandler creates a Handler. secureCookies sets the Secure attribute on
// session cookies and should be true in production.
func NewHandler(svc Services, resolver *auth.Resolver, secureCookies bool) *Handler {
	return &Handler{svc: svc, resolver: resolver, secureCookies: secureCookies}
}

// RegisterRoutes registers all API routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)

	rg.GET("/users/me", h.GetProfile)
	rg.PUT("/users/me", h.UpdateProfile)
	rg.GET("/users", h.GetUser)
	rg.POST("/users", h.CreateUser)
	rg.PUT("/users", h.UpdateUser)
	rg.DELETE("/users", h.DeleteUser)

	rg.GET("/passwords", h.ListPasswords)
	rg.POST("/passwords", h.CreatePassword)
	rg.PUT("/passwords", h.UpdatePassword)
	rg.DELETE("/passwords", h.DeletePassword)

	rg.GET("/notes", h.ListNotes)
	rg.POST("/notes", h.CreateNote)
	rg.PUT("/notes", h.UpdateNote)
	rg.DELETE("/notes", h.DeleteNote)

	rg.GET("/shopping-lists", h.ListShoppingLists)
	rg.POST("/shopping-lists", h.CreateShoppingList)
	rg.PUT("/shopping-lists", h.UpdateShoppingList)
	rg.DELETE("/shopping-lists", h.DeleteShoppingList)

	rg.GET("/shopping-items", h.ListShoppingItems)
	rg.POST("/shopping-items", h.CreateShoppingItem)
	rg.PUT("/shopping-items", h.UpdateShoppingItem)
	rg.DELETE("/shopping-items", h.DeleteShoppingItem)
}

func startSpan(c *gin.Context) (context.Context, trace.Span) {
	return middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
}

// viewer resolves the session for read endpoints. It returns nil when the
// request carries no usable session.
func (h *Handler) viewer(ctx context.Context, c *gin.Context) *auth.Identity {
	id, ok := h.resolver.Resolve(ctx, auth.SessionToken(c.Request))
	if !ok {
		return nil
	}
	middleware.SetIdentity(c, id)
	return id
}

// actor resolves the session for write endpoints.
func (h *Handler) actor(ctx context.Context, c *gin.Context) (*auth.Identity, error) {
	id, err := h.resolver.RequireResolve(ctx, auth.SessionToken(c.Request))
	if err != nil {
		return nil, err
	}
	middleware.SetIdentity(c, id)
	return id, nil
}

func queryID(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func unauthenticated(c *gin.Context) {
	fail(c, http.StatusUnauthorized, "Authentication required")
}

func badBody(c *gin.Context, span trace.Span, err error) {
	span.SetAttributes(attribute.Bool("request.valid", false))
	span.RecordError(err)
	fail(c, http.StatusBadRequest, "Invalid request body")
}

var notFound = []struct {
	err error
	msg string
}{
	{logicv1.ErrUserNotFound, "User not found"},
	{logicv1.ErrPasswordNotFound, "Password not found"},
	{logicv1.ErrNoteNotFound, "Note not found"},
	{logicv1.ErrListNotFound, "Shopping list not found"},
	{logicv1.ErrListAccessDenied, "Shopping list not found or access denied"},
	{logicv1.ErrItemAccessDenied, "Shopping item not found or access denied"},
	{logicv1.ErrItemNotFound, "Shopping item not found"},
}

// respondError maps a logic-layer error onto the failure envelope. Anything
// unrecognised becomes a 500 carrying fallback.
func respondError(c *gin.Context, span trace.Span, err error, fallback string) {
	span.RecordError(err)
	log := logger.FromContext(c.Request.Context())

	var verr *logicv1.ValidationError
	if errors.As(err, &verr) {
		fail(c, http.StatusBadRequest, verr.Message)
		return
	}
	if errors.Is(err, auth.ErrAuthenticationRequired) {
		unauthenticated(c)
		return
	}
	if errors.Is(err, logicv1.ErrUserExists) {
		fail(c, http.StatusConflict, "User with this email already exists")
		return
	}
	for _, nf := range notFound {
		if errors.Is(err, nf.err) {
			log.Warn().Err(err).Msg("Resource not found")
			fail(c, http.StatusNotFound, nf.msg)
			return
		}
	}

	log.Error().Err(err).Msg(fallback)
	fail(c, http.StatusInternalServerError, fallback)
}
