// File: /routes/routes.go
package routes

import (
	"net/http"

	"eventdesk-api/config"
	"eventdesk-api/controllers"
	"eventdesk-api/middleware"
	"eventdesk-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCORS allows the web frontend to talk to the API from another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	eventController := controllers.NewEventController(db, emailService)
	dashboardController := controllers.NewDashboardController(db)
	importController := controllers.NewImportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Event routes
		events := protected.Group("/events")
		{
			events.GET("/", eventController.GetEvents)
			events.POST("/", eventController.CreateEvent)
			events.GET("/search", eventController.SearchEvents)
			events.GET("/upcoming", eventController.UpcomingEvents)
			events.GET("/past", eventController.PastEvents)
			events.GET("/status/:status", eventController.GetEventsByStatus)
			events.POST("/import", importController.ImportEvents)
			events.GET("/import/template", importController.DownloadTemplate)
			events.GET("/:id", eventController.GetEvent)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
			events.PATCH("/:id/status", eventController.UpdateEventStatus)
			events.POST("/:id/join", eventController.JoinEvent)
			events.DELETE("/:id/leave", eventController.LeaveEvent)
		}

		// Dashboard routes
		protected.GET("/dashboard", dashboardController.GetDashboard)
		protected.GET("/stats", dashboardController.GetStats)
	}
}
