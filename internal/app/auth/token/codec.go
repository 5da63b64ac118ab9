package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scope distinguishes the three token variants minted by the codec. It is
// enforced at decode time so an access token can never be redeemed where a
// refresh token is required, and vice versa.
type Scope string

const (
	ScopeAccess  Scope = "access_token"
	ScopeRefresh Scope = "refresh_token"

	// ScopeNone is the scope-less email-verification variant. A decode call
	// that passes ScopeNone skips the scope check entirely; every
	// scope-checking call rejects such a token with a wrong-scope failure.
	ScopeNone Scope = ""
)

// Claims is the fixed claim shape {sub, iat, exp, scope} plus an explicit
// extension map for anything a caller wants to piggyback.
type Claims struct {
	jwt.RegisteredClaims
	Scope string         `json:"scope,omitempty"`
	Extra map[string]any `json:"extra,omitempty"`
}

type Codec interface {
	// Issue signs a token for subject. A non-positive ttl selects the
	// per-scope default.
	Issue(subject string, scope Scope, ttl time.Duration, extra map[string]any) (string, error)
	// Decode verifies signature and expiry, then the scope when expected is
	// not ScopeNone.
	Decode(raw string, expected Scope) (Claims, error)
}
