package auth

import (
	"context"
	"net/http"

	"github.com/sentinelshield/shield/internal/logger"
)

// Identity is a verified session: the caller's user id, email and display
// name as embedded in the token.
type Identity struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Resolver turns a raw cookie value into an Identity.
type Resolver struct {
	codec *Codec
}

// NewResolver returns a Resolver backed by codec.
func NewResolver(codec *Codec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve decodes the token, rejects it if expired, then checks its
// signature. Every failure, including an empty value, reports ok=false and
// is logged at debug level only.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Identity, bool) {
	log := logger.FromContext(ctx)

	if raw == "" {
		sessionResolutions.WithLabelValues(OutcomeMissing).Inc()
		return nil, false
	}

	claims, err := r.codec.Decode(raw)
	if err != nil {
		sessionResolutions.WithLabelValues(OutcomeMalformed).Inc()
		log.Debug().Err(err).Msg("Session token rejected")
		return nil, false
	}

	if r.codec.Expired(claims) {
		sessionResolutions.WithLabelValues(OutcomeExpired).Inc()
		log.Debug().Int("user_id", claims.UserID).Msg("Session token expired")
		return nil, false
	}

	if !r.codec.Verify(raw) {
		sessionResolutions.WithLabelValues(OutcomeBadSignature).Inc()
		log.Debug().Int("user_id", claims.UserID).Msg("Session token signature mismatch")
		return nil, false
	}

	sessionResolutions.WithLabelValues(OutcomeValid).Inc()
	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, true
}

// RequireResolve is Resolve for callers that must reject anonymous access.
func (r *Resolver) RequireResolve(ctx context.Context, raw string) (*Identity, error) {
	id, ok := r.Resolve(ctx, raw)
	if !ok {
		return nil, ErrAuthenticationRequired
	}
	return id, nil
}

// ResolveRequest resolves the session cookie carried by req.
func (r *Resolver) ResolveRequest(req *http.Request) (*Identity, bool) {
	return r.Resolve(req.Context(), SessionToken(req))
}

// Issue mints a token for an identity.
func (r *Resolver) Issue(id Identity) (string, error) {
	return r.codec.Encode(Claims{
		UserID: id.UserID,
		Email:  id.Email,
		Name:   id.Name,
	})
}
