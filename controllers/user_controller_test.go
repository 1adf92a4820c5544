package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.OrderHistory{},
		&models.OrderStatus{},
		&models.Refund{},
		&models.StorePolicy{},
		&models.Message{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.POST("/api/users/signup", Signup(db))

	tests := []struct {
		name           string
		body           gin.H
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful signup",
			body:           gin.H{"name": "Priya", "mobile_no": "5551234", "password": "secret"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate mobile number",
			body:           gin.H{"name": "Other", "mobile_no": "5551234", "password": "other"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Mobile number already exists",
		},
		{
			name:           "missing password",
			body:           gin.H{"name": "Priya", "mobile_no": "5559999"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/api/users/signup", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, "Signup successful", body["message"])
			}
		})
	}
}

func TestSignupOmitsPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.POST("/api/users/signup", Signup(db))

	w := performJSON(router, http.MethodPost, "/api/users/signup", gin.H{
		"name": "Priya", "mobile_no": "5551234", "password": "secret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter()
	router.POST("/api/users/login", Login(db))

	db.Create(&models.User{Name: "Priya", MobileNo: "5551234", Password: "secret"})

	tests := []struct {
		name           string
		body           gin.H
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful login",
			body:           gin.H{"mobile_no": "5551234", "password": "secret"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           gin.H{"mobile_no": "5551234", "password": "Secret"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid credentials",
		},
		{
			name:           "unknown mobile number",
			body:           gin.H{"mobile_no": "0000000", "password": "secret"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid credentials",
		},
		{
			name:           "missing fields",
			body:           gin.H{"mobile_no": "5551234"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Mobile number and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/api/users/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, "Login successful", body["message"])
			}
		})
	}
}
