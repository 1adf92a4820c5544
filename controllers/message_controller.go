package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// CreateMessageRequest represents the request body for adding an audit row
type CreateMessageRequest struct {
	UserID    uint      `json:"user_id" binding:"required"`
	Message   string    `json:"message" binding:"required"`
	Response  string    `json:"response" binding:"required"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

// ListMessages handles GET /api/messages
func ListMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.Message
		if err := db.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// CreateMessage handles POST /api/messages
func CreateMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		message := models.Message{
			UserID:    &req.UserID,
			Message:   req.Message,
			Response:  req.Response,
			Timestamp: req.Timestamp,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Message added successfully"})
	}
}
