package domain

import "time"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AccountSummary is the user shape returned by the auth endpoints.
type AccountSummary struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries a freshly minted session token. The token is sent
// to the client only as a cookie, never in the JSON body.
type AuthResponse struct {
	Token string         `json:"-"`
	User  AccountSummary `json:"user"`
}
