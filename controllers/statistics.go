package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xmwu0124/predocker/services"
)

// GetStatistics summarizes pipeline progress across all applications.
func GetStatistics(c *gin.Context) {
	apps, err := applicationService.All()
	if err != nil {
		log.Printf("Error reading applications for statistics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, services.ComputeStatistics(apps))
}
