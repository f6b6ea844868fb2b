// Package pages serves the HTML shell for the landing, sign-in and dashboard
// pages. Access control happens earlier in middleware.RouteGuard; the
// handlers here only read the identity it resolved.
package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

const shell = "shell.html"

type section struct {
	title    string
	endpoint string
}

// sections are the pages under /dashboard/.
var sections = map[string]section{
	"profile":        {title: "Profile", endpoint: "/api/users/me"},
	"settings":       {title: "Settings", endpoint: "/api/users/me"},
	"passwords":      {title: "Password Vault", endpoint: "/api/passwords"},
	"notes":          {title: "Notes", endpoint: "/api/notes"},
	"shopping-lists": {title: "Shopping Lists", endpoint: "/api/shopping-lists"},
}

type view struct {
	Page     string
	Title    string
	Endpoint string
	Redirect string
	Identity *auth.Identity
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Register installs the templates on r and adds the page routes.
func Register(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())

	r.GET("/", landing)
	r.GET(middleware.LoginPath, login)
	r.GET("/register", register)
	r.GET(middleware.DashboardPath, dashboard)
	r.GET(middleware.DashboardPath+"/:section", dashboardSection)
}

func identity(c *gin.Context) *auth.Identity {
	id, _ := middleware.IdentityFromContext(c)
	return id
}

func landing(c *gin.Context) {
	c.HTML(http.StatusOK, shell, view{Page: "landing", Title: "Home", Identity: identity(c)})
}

func login(c *gin.Context) {
	c.HTML(http.StatusOK, shell, view{Page: "login", Title: "Sign in", Redirect: c.Query("redirect")})
}

func register(c *gin.Context) {
	c.HTML(http.StatusOK, shell, view{Page: "register", Title: "Register"})
}

func dashboard(c *gin.Context) {
	id := identity(c)
	if id == nil {
		c.Redirect(http.StatusTemporaryRedirect, middleware.LoginPath)
		return
	}
	c.HTML(http.StatusOK, shell, view{Page: "dashboard", Title: "Dashboard", Identity: id})
}

func dashboardSection(c *gin.Context) {
	id := identity(c)
	if id == nil {
		c.Redirect(http.StatusTemporaryRedirect, middleware.LoginPath)
		return
	}

	name := c.Param("section")
	s, ok := sections[name]
	if !ok {
		c.String(http.StatusNotFound, "page not found")
		return
	}
	c.HTML(http.StatusOK, shell, view{Page: name, Title: s.title, Endpoint: s.endpoint, Identity: id})
}
