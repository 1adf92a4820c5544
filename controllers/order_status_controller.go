package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// CreateOrderStatusRequest represents the request body for adding a status row
type CreateOrderStatusRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// ListOrderStatuses handles GET /api/order_status
func ListOrderStatuses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var statuses []models.OrderStatus
		if err := db.Find(&statuses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order statuses"})
			return
		}
		c.JSON(http.StatusOK, statuses)
	}
}

// CreateOrderStatus handles POST /api/order_status
func CreateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and status are required"})
			return
		}

		status := models.OrderStatus{ProductID: req.ProductID, Status: req.Status}
		if err := db.Create(&status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order status"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order status added successfully"})
	}
}
