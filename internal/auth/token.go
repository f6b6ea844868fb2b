package auth

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is fixed policy: every token expires exactly seven days after
// it was issued. Callers cannot choose a different lifetime.
const TokenLifetime = 7 * 24 * time.Hour

// Claims is the token payload. UserID, Email and Name are supplied by the
// caller; iat and exp are always computed by Encode.
type Claims struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Codec mints, decodes and verifies HS256 session tokens.
type Codec struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

// CodecOption customizes a Codec.
type CodecOption func(*Codec)

// WithClock replaces the time source used for iat and expiry checks.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec returns a Codec signing with secret.
func NewCodec(secret string, opts ...CodecOption) *Codec {
	c := &Codec{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithPaddingAllowed()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode signs claims into a compact token. Any IssuedAt or ExpiresAt set
// by the caller is overwritten: iat is now and exp is iat plus TokenLifetime.
func (c *Codec) Encode(claims Claims) (string, error) {
	issuedAt := c.now().Truncate(time.Second)
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(TokenLifetime))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Decode parses the payload segment without checking the signature.
func (c *Codec) Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	payload, err := c.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload encoding: %v", ErrMalformedToken, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload json: %v", ErrMalformedToken, err)
	}
	return &claims, nil
}

// Verify reports whether the signature segment matches the HMAC-SHA256 of
// the header and payload segments under the server secret. The comparison
// is on the encoded form, so any altered character fails.
func (c *Codec) Verify(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	sig, err := jwt.SigningMethodHS256.Sign(parts[0]+"."+parts[1], c.secret)
	if err != nil {
		return false
	}
	expected := base64.RawURLEncoding.EncodeToString(sig)

	return hmac.Equal([]byte(expected), []byte(parts[2]))
}

// Expired reports whether claims are past their exp at the codec's current
// time. A token stays valid through the second named by exp; claims without
// exp never expire here.
func (c *Codec) Expired(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Unix() < c.now().Unix()
}
