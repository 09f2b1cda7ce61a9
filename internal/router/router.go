package router

import (
	"net/http"
	"time"

	"lila/config"
	"lila/internal/handler"
	"lila/internal/middleware"
	"lila/internal/repository"
	"lila/internal/service"
	"lila/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, store *storage.Store) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))
	r.MaxMultipartMemory = cfg.Upload.MaxSize

	// Repositories
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	contactHandler := handler.NewContactHandler(contactRepo)
	mediaHandler := handler.NewMediaHandler(mediaRepo, store)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/verify", authMw, authHandler.Verify)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", contactHandler.Submit)
			contact.GET("", authMw, contactHandler.List)
			contact.GET("/stats/overview", authMw, contactHandler.Stats)
			contact.GET("/:id", authMw, contactHandler.Get)
			contact.PUT("/:id", authMw, contactHandler.Update)
			contact.DELETE("/:id", authMw, contactHandler.Delete)
		}

		media := api.Group("/media")
		{
			media.GET("", mediaHandler.List)
			media.GET("/stats/overview", authMw, mediaHandler.Stats)
			media.GET("/:id", mediaHandler.Get)
			media.POST("", authMw, mediaHandler.Create)
			media.PUT("/:id", authMw, mediaHandler.Update)
			media.DELETE("/:id", authMw, mediaHandler.Delete)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingsHandler.Get)
			settings.PUT("", authMw, settingsHandler.Update)
			settings.PUT("/password", authMw, authHandler.ChangePassword)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
		})
	}

	r.Static("/uploads", store.Dir())

	return r
}
