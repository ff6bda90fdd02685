package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xmwu0124/predocker/config"
	"github.com/xmwu0124/predocker/utils"
)

const maxCVSize = 10 * 1024 * 1024 // 10MB

var allowedCVTypes = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type analyzeCVRequest struct {
	Filename string `json:"filename"`
}

// UploadCV stores the raw CV under UPLOAD_PATH. The stored name is a UUID
// prefix plus the sanitized original name, so uploads can never traverse out
// of the directory or clobber each other.
func UploadCV(c *gin.Context) {
	file, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if file.Size > maxCVSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedCVTypes[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	safeName := utils.SanitizeFilename(file.Filename)
	if safeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	uploadPath := config.UploadPath()
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	storedName := uuid.New().String() + "_" + safeName
	fullPath := filepath.Join(uploadPath, storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		log.Printf("Error saving CV upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"filename":          storedName,
		"original_filename": file.Filename,
		"path":              fullPath,
	})
}

// AnalyzeCV runs the external parser against a previously uploaded file and
// returns its keyword/match output verbatim.
func AnalyzeCV(c *gin.Context) {
	var req analyzeCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	// The filename must be exactly what upload returned; anything with path
	// components is hostile.
	if req.Filename == "" || filepath.Base(req.Filename) != req.Filename {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	cvPath := filepath.Join(config.UploadPath(), req.Filename)
	if _, err := os.Stat(cvPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	result, err := cvAnalyzer.Analyze(c.Request.Context(), cvPath)
	if err != nil {
		log.Printf("Error analyzing CV %s: %v", req.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
