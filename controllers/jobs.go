package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xmwu0124/predocker/models"
)

// GetJobs returns every active posting. A broken or missing jobs file is
// logged and rendered as an empty list; the scraper owns that file and the
// tracker stays usable without it.
func GetJobs(c *gin.Context) {
	jobs, err := store.ActiveJobs()
	if err != nil {
		log.Printf("Error reading jobs: %v", err)
		c.JSON(http.StatusOK, []models.Job{})
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}
