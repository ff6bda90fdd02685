package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xmwu0124/predocker/config"
	"github.com/xmwu0124/predocker/models"
	"github.com/xmwu0124/predocker/services"
)

type createRefereeRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Institution  string `json:"institution"`
	Title        string `json:"title"`
	AssignedJobs []int  `json:"assigned_jobs"`
}

type updateRecommendationRequest struct {
	Token  string `json:"token"`
	JobID  int    `json:"job_id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// GetReferees lists all referees for the management view, tokens included so
// the applicant can copy dashboard links.
func GetReferees(c *gin.Context) {
	referees, err := refereeService.All()
	if err != nil {
		log.Printf("Error reading referees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referees"})
		return
	}
	if referees == nil {
		referees = []models.Referee{}
	}
	c.JSON(http.StatusOK, referees)
}

// CreateReferee registers a referee and, when SMTP and DASHBOARD_BASE_URL
// are configured, emails them their dashboard link. Email failures never fail
// the request; the link can always be copied from the management view.
func CreateReferee(c *gin.Context) {
	var req createRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	referee, err := refereeService.Create(req.Name, req.Email, req.Institution, req.Title, req.AssignedJobs)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating referee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referee"})
		return
	}

	sendRefereeInvitation(referee)

	c.JSON(http.StatusCreated, referee)
}

// DeleteReferee removes a referee; their token and recommendations go with
// the record.
func DeleteReferee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid referee id"})
		return
	}

	if err := refereeService.Delete(id); err != nil {
		if errors.Is(err, services.ErrRefereeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referee not found"})
			return
		}
		log.Printf("Error deleting referee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete referee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RefereeDashboard serves the token-gated referee view: public referee
// fields, their assigned active jobs and their recommendation entries.
func RefereeDashboard(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	dashboard, err := refereeService.Dashboard(token)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		log.Printf("Error loading referee dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// UpdateRecommendationStatus records letter progress for one assigned job.
func UpdateRecommendationStatus(c *gin.Context) {
	var req updateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	err := refereeService.UpsertRecommendation(req.Token, req.JobID, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, services.ErrJobNotAssigned):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job is not assigned to this referee"})
		default:
			log.Printf("Error updating recommendation: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func sendRefereeInvitation(referee *models.Referee) {
	base := config.DashboardBaseURL()
	if base == "" {
		return
	}

	link := fmt.Sprintf("%s/referee?token=%s",
		strings.TrimRight(base, "/"),
		url.QueryEscape(referee.AccessToken))

	html := fmt.Sprintf(`
		<p>Dear %s %s,</p>
		<p>You have been listed as a referee for pre-doctoral applications.
		Please use your personal dashboard to track which recommendation
		letters are needed and update their status:</p>
		<p><a href="%s">%s</a></p>
		<p>This link is personal; please do not share it.</p>`,
		template.HTMLEscapeString(referee.Title),
		template.HTMLEscapeString(referee.Name),
		template.HTMLEscapeString(link),
		template.HTMLEscapeString(link))

	if err := sendMailFunc([]string{referee.Email}, "Recommendation letter dashboard", html); err != nil {
		log.Printf("Warning: failed to send referee invitation to %s: %v", referee.Email, err)
	}
}
