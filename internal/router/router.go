package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/praxise/interview-backend/internal/config"
	"github.com/praxise/interview-backend/internal/handler"
	"github.com/praxise/interview-backend/internal/middleware"
	"github.com/praxise/interview-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Session   *handler.SessionHandler
	Interview *handler.InterviewHandler
	Live      *handler.LiveHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list; otherwise
	// allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally; feedback reports compress well.
	router.Use(middleware.Brotli())

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Answer submission drives evaluation work, so it sits behind a
	// tighter limiter than the read endpoints.
	turnLimiter := middleware.NewRateLimiter(30, time.Minute)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/roles", handlers.Session.Roles)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handlers.Session.Create)
			sessions.POST("/continue", handlers.Session.Continue)
			sessions.GET("/:id", handlers.Session.Get)
			sessions.GET("/:id/progress", handlers.Session.Progress)
			sessions.GET("/:id/continuations", handlers.Session.Continuations)

			sessions.POST("/:id/start", handlers.Interview.Start)
			sessions.POST("/:id/responses", turnLimiter.Middleware(), handlers.Interview.Respond)
			sessions.POST("/:id/end", handlers.Interview.End)
		}
	}

	router.GET("/ws/sessions/:id", handlers.Live.Stream)

	return router
}
