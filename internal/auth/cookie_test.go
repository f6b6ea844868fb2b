package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionCookie(t *testing.T) {
	c := NewSessionCookie("tok", false)

	assert.Equal(t, "auth-token", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 604800, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	assert.True(t, NewSessionCookie("tok", true).Secure)
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	http.SetCookie(rec, ClearSessionCookie(true))

	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, "auth-token=;")
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "HttpOnly")
}

func TestSessionToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", SessionToken(req))

	req.AddCookie(&http.Cookie{Name: "other", Value: "x"})
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "abc.def.ghi"})
	assert.Equal(t, "abc.def.ghi", SessionToken(req))
}
