package router

import (
	"time"

	"github.com/circuitlab-dev/circuitlab/internal/handlers"
	"github.com/circuitlab-dev/circuitlab/internal/middleware"
	"github.com/circuitlab-dev/circuitlab/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		challenges := api.Group("/challenges", middleware.AuthMiddleware())
		{
			challenges.GET("", handlers.ListChallenges)
			challenges.POST("", handlers.CreateChallenge)
			challenges.GET("/:challenge_id", handlers.GetChallenge)
			challenges.DELETE("/:challenge_id", handlers.DeleteChallenge)

			// Attempt endpoints
			challenges.PUT("/:challenge_id/attempt", handlers.SaveAttempt)
			challenges.GET("/:challenge_id/attempt", handlers.GetAttempt)
			challenges.DELETE("/:challenge_id/attempt", handlers.DeleteAttempt)

			// Progress endpoints
			challenges.POST("/:challenge_id/complete", handlers.CompleteChallenge)
		}

		api.GET("/progress", middleware.AuthMiddleware(), handlers.GetProgress)
	}

	return r
}
