package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juggernaut7/Task-Tidy/controllers"
	"github.com/Juggernaut7/Task-Tidy/middleware"
)

// RegisterRoutes wires the full API surface.
func RegisterRoutes(r *gin.Engine) {
	authController := controllers.AuthController{}
	taskController := controllers.TaskController{}
	analyticsController := controllers.AnalyticsController{}
	templateController := controllers.TemplateController{}

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "TaskTidy Backend API is running!",
			"version":   "2.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Authenticated routes
	private := api.Group("")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/auth/profile", authController.GetProfile)
		private.PATCH("/auth/profile", authController.UpdateProfile)

		private.POST("/tasks", taskController.CreateTask)
		private.GET("/tasks", taskController.ListTasks)
		private.POST("/tasks/bulk", taskController.BulkAction)
		private.GET("/tasks/:id", taskController.GetTask)
		private.PATCH("/tasks/:id", taskController.UpdateTask)
		private.DELETE("/tasks/:id", taskController.DeleteTask)

		private.GET("/analytics", analyticsController.GetAnalytics)

		private.POST("/templates", templateController.CreateTemplate)
		private.GET("/templates", templateController.ListTemplates)
		private.POST("/templates/:id/create-task", templateController.CreateTaskFromTemplate)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}
