package middleware

import (
	"net/http"
	"strings"

	authsvc "github.com/Miraines/ContactSphere/internal/app/auth/service"
	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrUnauthorized.Error()})
}

// RequireAuth resolves the bearer access token into a principal and aborts
// with 401 otherwise. Every token failure looks the same to the client.
func RequireAuth(auth authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := BearerToken(c)
		if !ok {
			unauthorized(c)
			return
		}

		user, err := auth.Resolve(c.Request.Context(), raw)
		switch {
		case err == nil:
			c.Set(principalKey, user)
			c.Next()
		case customErrors.IsUnauthorized(err):
			unauthorized(c)
		default:
			// cache or database trouble, not the client's fault
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
	}
}

// Principal returns the authenticated user placed by RequireAuth.
func Principal(c *gin.Context) model.User {
	return c.MustGet(principalKey).(model.User)
}
