package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// CreateOrderHistoryRequest represents the request body for appending an order
type CreateOrderHistoryRequest struct {
	UserID      uint      `json:"user_id" binding:"required"`
	ProductName string    `json:"product_name" binding:"required"`
	Price       float64   `json:"price" binding:"required"`
	OrderDate   time.Time `json:"order_date" binding:"required"`
}

// ListOrderHistory handles GET /api/order_history
func ListOrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var history []models.OrderHistory
		if err := db.Find(&history).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order history"})
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// CreateOrderHistory handles POST /api/order_history
func CreateOrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderHistoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		entry := models.OrderHistory{
			UserID:      &req.UserID,
			ProductName: req.ProductName,
			Price:       req.Price,
			OrderDate:   req.OrderDate,
		}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order history"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order history added successfully"})
	}
}
