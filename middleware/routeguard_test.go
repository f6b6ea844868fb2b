package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelshield/shield/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(resolver *auth.Resolver) *gin.Engine {
	r := gin.New()
	r.Use(RouteGuard(resolver))

	page := func(c *gin.Context) {
		name := "anonymous"
		if id, ok := IdentityFromContext(c); ok {
			name = id.Name
		}
		c.String(http.StatusOK, name)
	}
	r.GET("/", page)
	r.GET("/login", page)
	r.GET("/register", page)
	r.GET("/dashboard", page)
	r.GET("/dashboard/*rest", page)
	r.GET("/api/notes", page)
	return r
}

func validToken(t *testing.T, resolver *auth.Resolver) string {
	t.Helper()
	token, err := resolver.Issue(auth.Identity{UserID: 7, Email: "a@b.com", Name: "A"})
	require.NoError(t, err)
	return token
}

func TestClassifyPath(t *testing.T) {
	cases := map[string]RouteClass{
		"/":                       RouteOpen,
		"/about":                  RouteOpen,
		"/api/passwords":          RouteOpen,
		"/api/auth/login":         RouteOpen,
		"/dashboard":              RouteProtected,
		"/dashboard/passwords":    RouteProtected,
		"/passwords":              RouteProtected,
		"/notes/12":               RouteProtected,
		"/shopping-lists":         RouteProtected,
		"/login":                  RoutePublicAuth,
		"/login?redirect=/notes":  RoutePublicAuth,
		"/register":               RoutePublicAuth,
		"/registered-trademarks":  RoutePublicAuth,
		"/favicon.ico":            RouteOpen,
	}
	for path, want := range cases {
		assert.Equal(t, want, ClassifyPath(path), path)
	}
}

func TestRouteGuard_ProtectedWithoutSessionRedirectsToLogin(t *testing.T) {
	resolver := auth.NewResolver(auth.NewCodec("s1"))

	apitest.New().
		Handler(guardedRouter(resolver)).
		Get("/dashboard/passwords").
		Expect(t).
		Status(http.StatusTemporaryRedirect).
		Header("Location", "/login?redirect=%2Fdashboard%2Fpasswords").
		End()
}

func TestRouteGuard_ProtectedWithForeignTokenRedirects(t *testing.T) {
	issuer := auth.NewResolver(auth.NewCodec("other-secret"))
	resolver := auth.NewResolver(auth.NewCodec("s1"))

	apitest.New().
		Handler(guardedRouter(resolver)).
		Get("/dashboard").
		Cookie(auth.CookieName, validToken(t, issuer)).
		Expect(t).
		Status(http.StatusTemporaryRedirect).
		Header("Location", "/login?redirect=%2Fdashboard").
		End()
}

func TestRouteGuard_ProtectedWithSessionPassesThrough(t *testing.T) {
	resolver := auth.NewResolver(auth.NewCodec("s1"))

	apitest.New().
		Handler(guardedRouter(resolver)).
		Get("/dashboard/notes").
		Cookie(auth.CookieName, validToken(t, resolver)).
		Expect(t).
		Status(http.StatusOK).
		Body("A").
		End()
}

func TestRouteGuard_LoginWithSessionRedirectsToDashboard(t *testing.T) {
	resolver := auth.NewResolver(auth.NewCodec("s1"))

	apitest.New().
		Handler(guardedRouter(resolver)).
		Get("/login").
		Cookie(auth.CookieName, validToken(t, resolver)).
		Expect(t).
		Status(http.StatusTemporaryRedirect).
		Header("Location", "/dashboard").
		End()
}

func TestRouteGuard_LoginWithoutSessionIsServed(t *testing.T) {
	resolver := auth.NewResolver(auth.NewCodec("s1"))

	apitest.New().
		Handler(guardedRouter(resolver)).
		Get("/register").
		Cookie(auth.CookieName, "garbage").
		Expect(t).
		Status(http.StatusOK).
		Body("anonymous").
		End()
}

func TestRouteGuard_OpenPathsIgnoreSession(t *testing.T) {
	resolver := auth.NewResolver(auth.NewCodec("s1"))
	router := guardedRouter(resolver)

	apitest.New().Handler(router).Get("/").Expect(t).Status(http.StatusOK).Body("anonymous").End()
	apitest.New().Handler(router).Get("/api/notes").Expect(t).Status(http.StatusOK).End()
	apitest.New().Handler(router).
		Get("/").
		Cookie(auth.CookieName, validToken(t, resolver)).
		Expect(t).
		Status(http.StatusOK).
		Body("anonymous").
		End()
}
