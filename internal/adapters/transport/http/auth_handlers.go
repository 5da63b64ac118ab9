package http

import (
	"net/http"
	"time"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/middleware"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/gin-gonic/gin"
)

func (r *Router) signup(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := r.auth.Register(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":   user,
		"detail": "User successfully created. Check your email for confirmation.",
	})
}

func (r *Router) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := r.auth.Login(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

// refresh expects the refresh token as the bearer credential.
func (r *Router) refresh(c *gin.Context) {
	raw, ok := middleware.BearerToken(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	pair, err := r.auth.Refresh(c.Request.Context(), raw)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (r *Router) confirmEmail(c *gin.Context) {
	if err := r.auth.ConfirmEmail(c.Request.Context(), c.Param("token")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

func (r *Router) requestEmail(c *gin.Context) {
	var body dto.RequestEmailDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.auth.ResendConfirmation(c.Request.Context(), body.Email); err != nil {
		handleError(c, err)
		return
	}
	// identical reply whether or not the account exists
	c.JSON(http.StatusOK, gin.H{"message": "Check your email for confirmation."})
}

func (r *Router) logout(c *gin.Context) {
	principal := middleware.Principal(c)
	if err := r.auth.Logout(c.Request.Context(), principal.Email); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func tokenResponse(pair model.TokenPair) dto.TokenPairResponse {
	return dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(pair.AccessTTL / time.Second),
	}
}
