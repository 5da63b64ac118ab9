package http

import (
	"net/http"
	"time"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/middleware"
	authsvc "github.com/Miraines/ContactSphere/internal/app/auth/service"
	"github.com/Miraines/ContactSphere/internal/app/avatar"
	contactsvc "github.com/Miraines/ContactSphere/internal/app/contacts/service"
	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/infra/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// contacts routes allow at most 10 requests per minute per client.
const contactsPerMin = 10

type Router struct {
	auth     authsvc.Service
	contacts contactsvc.Service
	uploader avatar.Uploader
	cfg      *config.Config
	log      *zap.Logger
}

func NewRouter(
	auth authsvc.Service,
	contacts contactsvc.Service,
	uploader avatar.Uploader,
	cfg *config.Config,
	log *zap.Logger,
) *Router {
	return &Router{auth: auth, contacts: contacts, uploader: uploader, cfg: cfg, log: log}
}

func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(r.log))
	engine.Use(middleware.RateLimitPerIP(50, 100, 10_000, time.Hour))

	engine.Use(cors.New(cors.Config{
		AllowOrigins: r.cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: r.cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", r.signup)
	auth.POST("/login", r.login)
	auth.GET("/refresh_token", r.refresh)
	auth.GET("/confirmed_email/:token", r.confirmEmail)
	auth.POST("/request_email", r.requestEmail)
	auth.POST("/logout", middleware.RequireAuth(r.auth), r.logout)

	users := api.Group("/users", middleware.RequireAuth(r.auth))
	users.GET("/me", r.me)
	users.PATCH("/avatar", r.updateAvatar)

	contacts := api.Group("/contacts",
		middleware.RequireAuth(r.auth),
		middleware.RateLimitPerIP(contactsPerMin/60.0, contactsPerMin, 10_000, time.Hour),
	)
	contacts.GET("", r.listContacts)
	contacts.POST("", r.createContact)
	contacts.GET("/search", r.searchContacts)
	contacts.GET("/birthdays", r.birthdays)
	contacts.GET("/:id", r.getContact)
	contacts.PUT("/:id", r.updateContact)
	contacts.DELETE("/:id", r.deleteContact)

	return engine
}

func handleError(c *gin.Context, err error) {
	switch {
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsInvalidCredentials(err):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case customErrors.IsUnauthorized(err):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrUnauthorized.Error()})
	case customErrors.IsInvalidToken(err), customErrors.IsTokenExpired(err), customErrors.IsWrongScope(err):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
	case customErrors.IsUnprocessableToken(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": customErrors.ErrUnprocessableToken.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
