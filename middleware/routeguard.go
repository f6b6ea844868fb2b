package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sentinelshield/shield/internal/auth"
)

// RouteClass is the guard's classification of a request path.
type RouteClass int

const (
	// RouteOpen paths are never gated: the landing page, static assets and
	// every API route (API handlers authorize themselves).
	RouteOpen RouteClass = iota
	// RouteProtected paths require a session.
	RouteProtected
	// RoutePublicAuth paths are the login and register forms.
	RoutePublicAuth
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	identityKey = "identity"
)

var (
	protectedPrefixes  = []string{"/dashboard", "/passwords", "/notes", "/shopping"}
	publicAuthPrefixes = []string{"/login", "/register"}
)

// ClassifyPath places path in exactly one RouteClass by prefix.
func ClassifyPath(path string) RouteClass {
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return RouteProtected
		}
	}
	for _, p := range publicAuthPrefixes {
		if strings.HasPrefix(path, p) {
			return RoutePublicAuth
		}
	}
	return RouteOpen
}

// RouteGuard redirects anonymous visitors away from protected pages and
// signed-in users away from the login and register pages. It keeps no state
// between requests; the session lives entirely in the cookie.
func RouteGuard(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		class := ClassifyPath(path)
		if class == RouteOpen {
			c.Next()
			return
		}

		id, ok := resolver.ResolveRequest(c.Request)
		if ok {
			SetIdentity(c, id)
		}

		switch {
		case class == RouteProtected && !ok:
			target := LoginPath + "?" + url.Values{"redirect": {path}}.Encode()
			c.Redirect(http.StatusTemporaryRedirect, target)
			c.Abort()
			return
		case class == RoutePublicAuth && ok:
			c.Redirect(http.StatusTemporaryRedirect, DashboardPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

// SetIdentity records the resolved caller on the request context.
func SetIdentity(c *gin.Context, id *auth.Identity) {
	c.Set(identityKey, id)
}

// IdentityFromContext returns the caller resolved earlier in the chain.
func IdentityFromContext(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*auth.Identity)
	return id, ok && id != nil
}
