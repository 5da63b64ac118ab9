package http

import (
	"net/http"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20 // 5 MiB

func (r *Router) me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Principal(c))
}

func (r *Router) updateAvatar(c *gin.Context) {
	principal := middleware.Principal(c)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer f.Close()

	url, err := r.uploader.Upload(c.Request.Context(), principal.ID.String(), f)
	if err != nil {
		handleError(c, err)
		return
	}

	user, err := r.auth.UpdateAvatar(c.Request.Context(), principal.Email, url)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
