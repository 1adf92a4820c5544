package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// CreateRefundRequest represents the request body for recording a refund
type CreateRefundRequest struct {
	ProductID   uint      `json:"product_id" binding:"required"`
	ReturnMoney float64   `json:"return_money" binding:"required"`
	AccountNo   string    `json:"account_no"`
	Cancelled   bool      `json:"cancelled"`
	OrderDate   time.Time `json:"order_date"`
	CancelDate  time.Time `json:"cancel_date"`
}

// ListRefunds handles GET /api/refunds
func ListRefunds(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var refunds []models.Refund
		if err := db.Find(&refunds).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch refunds"})
			return
		}
		c.JSON(http.StatusOK, refunds)
	}
}

// CreateRefund handles POST /api/refunds
func CreateRefund(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRefundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and return money are required"})
			return
		}

		refund := models.Refund{
			ProductID:   req.ProductID,
			ReturnMoney: req.ReturnMoney,
			AccountNo:   req.AccountNo,
			Cancelled:   req.Cancelled,
			OrderDate:   req.OrderDate,
			CancelDate:  req.CancelDate,
		}
		if err := db.Create(&refund).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add refund"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Refund added successfully"})
	}
}
