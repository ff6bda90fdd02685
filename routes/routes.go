package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/xmwu0124/predocker/controllers"
)

func SetupRoutes(router *gin.Engine) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "PreDocker API is running",
		})
	})

	// Job catalog (read-only; the scraper owns the data)
	router.GET("/jobs", controllers.GetJobs)

	// Applications and their timeline
	router.GET("/applications", controllers.GetApplications)
	router.POST("/applications/update", controllers.UpdateApplicationStatus)
	router.POST("/applications/timeline", controllers.ToggleTimelineStage)

	// CV upload and keyword matching
	cv := router.Group("/cv")
	{
		cv.POST("/upload", controllers.UploadCV)
		cv.POST("/analyze", controllers.AnalyzeCV)
	}

	// Referee management plus the token-gated referee dashboard
	referees := router.Group("/referees")
	{
		referees.GET("", controllers.GetReferees)
		referees.POST("", controllers.CreateReferee)
		referees.DELETE("/:id", controllers.DeleteReferee)
		referees.GET("/dashboard", controllers.RefereeDashboard)
		referees.POST("/update-status", controllers.UpdateRecommendationStatus)
	}

	// Pipeline statistics
	router.GET("/statistics", controllers.GetStatistics)
}
