package token

import (
	"errors"
	"time"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/infra/config"
	"github.com/golang-jwt/jwt/v5"
)

type CodecImpl struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	verifyTTL  time.Duration
}

func NewCodec(cfg *config.Config) (*CodecImpl, error) {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, customErrors.NewInvalidArgument("unknown signing algorithm " + cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, customErrors.NewInvalidArgument("signing algorithm must be HMAC-class")
	}
	if cfg.SecretKey == "" {
		return nil, customErrors.NewInvalidArgument("empty secret key")
	}

	return &CodecImpl{
		secret:     []byte(cfg.SecretKey),
		method:     method,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		verifyTTL:  cfg.VerifyTokenTTL,
	}, nil
}

func (c *CodecImpl) Issue(subject string, scope Scope, ttl time.Duration, extra map[string]any) (string, error) {
	if subject == "" {
		return "", customErrors.NewInvalidArgument("empty token subject")
	}
	if ttl <= 0 {
		ttl = c.defaultTTL(scope)
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope: string(scope),
		Extra: extra,
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}
	return signed, nil
}

func (c *CodecImpl) Decode(raw string, expected Scope) (Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, customErrors.ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, customErrors.ErrTokenExpired
		default:
			return Claims{}, customErrors.ErrInvalidToken
		}
	}
	if !tok.Valid {
		return Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return Claims{}, customErrors.WrapInternal(errors.New("claims not token.Claims"), "Decode")
	}
	if claims.Subject == "" {
		return Claims{}, customErrors.ErrInvalidToken
	}
	if expected != ScopeNone && claims.Scope != string(expected) {
		return Claims{}, customErrors.ErrWrongScope
	}

	return *claims, nil
}

func (c *CodecImpl) defaultTTL(scope Scope) time.Duration {
	switch scope {
	case ScopeAccess:
		return c.accessTTL
	case ScopeRefresh:
		return c.refreshTTL
	default:
		return c.verifyTTL
	}
}
