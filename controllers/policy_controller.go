package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// CreatePolicyRequest represents the request body for adding a store rule
type CreatePolicyRequest struct {
	Rule string `json:"rule" binding:"required"`
}

// ListStorePolicies handles GET /api/store_policies
func ListStorePolicies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var policies []models.StorePolicy
		if err := db.Find(&policies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store policies"})
			return
		}
		c.JSON(http.StatusOK, policies)
	}
}

// CreateStorePolicy handles POST /api/store_policies
func CreateStorePolicy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePolicyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rule is required"})
			return
		}

		policy := models.StorePolicy{Rule: req.Rule}
		if err := db.Create(&policy).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add store policy"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Store policy added successfully"})
	}
}
