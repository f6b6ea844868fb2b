package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestResolver(t *testing.T, secret string) (*Resolver, *clock) {
	t.Helper()
	clk := &clock{now: fixedNow}
	return NewResolver(NewCodec(secret, WithClock(clk.Now))), clk
}

func TestResolve_ValidToken(t *testing.T) {
	r, _ := newTestResolver(t, "s1")
	token, err := r.Issue(Identity{UserID: 7, Email: "a@b.com", Name: "A"})
	require.NoError(t, err)

	id, ok := r.Resolve(context.Background(), token)
	require.True(t, ok)
	assert.Equal(t, &Identity{UserID: 7, Email: "a@b.com", Name: "A"}, id)
}

func TestResolve_Idempotent(t *testing.T) {
	r, _ := newTestResolver(t, "s1")
	token, err := r.Issue(Identity{UserID: 9, Email: "x@y.z", Name: "X"})
	require.NoError(t, err)

	first, ok := r.Resolve(context.Background(), token)
	require.True(t, ok)
	second, ok := r.Resolve(context.Background(), token)
	require.True(t, ok)

	assert.Equal(t, first, second)
}

func TestResolve_MissingCookie(t *testing.T) {
	r, _ := newTestResolver(t, "s1")

	id, ok := r.Resolve(context.Background(), "")
	assert.False(t, ok)
	assert.Nil(t, id)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	id, ok = r.ResolveRequest(req)
	assert.False(t, ok)
	assert.Nil(t, id)
}

func TestResolve_Garbage(t *testing.T) {
	r, _ := newTestResolver(t, "s1")
	for _, raw := range []string{"x", "a.b", "a.b.c", "...", "eyJhbGciOiJIUzI1NiJ9.e30"} {
		id, ok := r.Resolve(context.Background(), raw)
		assert.False(t, ok, raw)
		assert.Nil(t, id, raw)
	}
}

func TestResolve_ExpiredRegardlessOfSignature(t *testing.T) {
	r, clk := newTestResolver(t, "s1")
	token, err := r.Issue(Identity{UserID: 7})
	require.NoError(t, err)

	clk.now = fixedNow.Add(TokenLifetime + time.Second)

	_, ok := r.Resolve(context.Background(), token)
	assert.False(t, ok)
}

func TestResolve_ValidThroughExpSecond(t *testing.T) {
	r, clk := newTestResolver(t, "s1")
	token, err := r.Issue(Identity{UserID: 7})
	require.NoError(t, err)

	clk.now = fixedNow.Add(TokenLifetime)
	_, ok := r.Resolve(context.Background(), token)
	assert.True(t, ok, "exp == now")

	clk.now = fixedNow.Add(TokenLifetime + time.Second)
	_, ok = r.Resolve(context.Background(), token)
	assert.False(t, ok, "exp < now")
}

func TestResolve_WrongSecret(t *testing.T) {
	issuer, _ := newTestResolver(t, "s1")
	verifier, _ := newTestResolver(t, "s2")

	token, err := issuer.Issue(Identity{UserID: 7})
	require.NoError(t, err)

	_, ok := verifier.Resolve(context.Background(), token)
	assert.False(t, ok)
}

func TestRequireResolve(t *testing.T) {
	r, _ := newTestResolver(t, "s1")

	_, err := r.RequireResolve(context.Background(), "")
	assert.True(t, errors.Is(err, ErrAuthenticationRequired))

	token, err := r.Issue(Identity{UserID: 2, Email: "b@c.d", Name: "B"})
	require.NoError(t, err)
	id, err := r.RequireResolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 2, id.UserID)
}

func TestResolveRequest_ReadsSessionCookie(t *testing.T) {
	r, _ := newTestResolver(t, "s1")
	token, err := r.Issue(Identity{UserID: 4, Email: "d@e.f", Name: "D"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	id, ok := r.ResolveRequest(req)
	require.True(t, ok)
	assert.Equal(t, "D", id.Name)
}
