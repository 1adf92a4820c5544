package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/amelia-reyes/boutique-api/models"
)

func TestCreateAndListRefunds(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.GET("/api/refunds", ListRefunds(db))
	router.POST("/api/refunds", CreateRefund(db))

	w := performJSON(router, http.MethodPost, "/api/refunds", gin.H{
		"product_id":   3,
		"return_money": 39.99,
		"account_no":   "987654321",
		"cancelled":    true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Refund added successfully", decodeBody(t, w)["message"])

	w = performJSON(router, http.MethodPost, "/api/refunds", gin.H{"product_id": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product ID and return money are required", decodeBody(t, w)["error"])

	w = performJSON(router, http.MethodGet, "/api/refunds", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "987654321")
}

func TestCreateAndListOrderStatuses(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.GET("/api/order_status", ListOrderStatuses(db))
	router.POST("/api/order_status", CreateOrderStatus(db))

	w := performJSON(router, http.MethodPost, "/api/order_status", gin.H{"product_id": 5, "status": "shipped"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Order status added successfully", decodeBody(t, w)["message"])

	w = performJSON(router, http.MethodPost, "/api/order_status", gin.H{"product_id": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product ID and status are required", decodeBody(t, w)["error"])

	w = performJSON(router, http.MethodGet, "/api/order_status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shipped")
}

func TestCreateAndListOrderHistory(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.GET("/api/order_history", ListOrderHistory(db))
	router.POST("/api/order_history", CreateOrderHistory(db))

	w := performJSON(router, http.MethodPost, "/api/order_history", gin.H{
		"user_id":      1,
		"product_name": "Satin Dress",
		"price":        74.99,
		"order_date":   time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Order history added successfully", decodeBody(t, w)["message"])

	w = performJSON(router, http.MethodPost, "/api/order_history", gin.H{"user_id": 1, "price": 74.99})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, w)["error"])

	w = performJSON(router, http.MethodGet, "/api/order_history", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Satin Dress")
}

func TestCreateAndListStorePolicies(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.GET("/api/store_policies", ListStorePolicies(db))
	router.POST("/api/store_policies", CreateStorePolicy(db))

	w := performJSON(router, http.MethodPost, "/api/store_policies", gin.H{"rule": "Exchanges within 14 days"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Store policy added successfully", decodeBody(t, w)["message"])

	w = performJSON(router, http.MethodPost, "/api/store_policies", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rule is required", decodeBody(t, w)["error"])

	w = performJSON(router, http.MethodGet, "/api/store_policies", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exchanges within 14 days")
}

func TestCreateAndListMessages(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.GET("/api/messages", ListMessages(db))
	router.POST("/api/messages", CreateMessage(db))

	w := performJSON(router, http.MethodPost, "/api/messages", gin.H{
		"user_id":   1,
		"message":   "find products",
		"response":  "Hello Priya, here are the available products:",
		"timestamp": time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Message added successfully", decodeBody(t, w)["message"])

	w = performJSON(router, http.MethodPost, "/api/messages", gin.H{"user_id": 1, "message": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, w)["error"])

	w = performJSON(router, http.MethodGet, "/api/messages", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored []models.Message
	assert.NoError(t, db.Find(&stored).Error)
	assert.Len(t, stored, 1)
}
