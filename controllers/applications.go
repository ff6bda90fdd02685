package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xmwu0124/predocker/models"
	"github.com/xmwu0124/predocker/services"
)

type updateStatusRequest struct {
	JobID  int    `json:"jobId"`
	Status string `json:"status"`
}

type toggleStageRequest struct {
	JobID int    `json:"jobId"`
	Stage string `json:"stage"`
}

// GetApplications returns every persisted application record.
func GetApplications(c *gin.Context) {
	apps, err := applicationService.All()
	if err != nil {
		log.Printf("Error reading applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus moves a job's application to a new status, creating
// the record on first use.
func UpdateApplicationStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	app, err := applicationService.UpdateStatus(req.JobID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		log.Printf("Error updating status for job %d: %v", req.JobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, app)
}

// ToggleTimelineStage flips one timeline checkbox. An unknown job or stage is
// a no-op; the current record (or null) comes back unchanged.
func ToggleTimelineStage(c *gin.Context) {
	var req toggleStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	app, err := applicationService.ToggleStage(req.JobID, req.Stage)
	if err != nil {
		log.Printf("Error toggling stage %q for job %d: %v", req.Stage, req.JobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update timeline"})
		return
	}

	c.JSON(http.StatusOK, app)
}
