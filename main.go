package main

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/config"
	"github.com/amelia-reyes/boutique-api/controllers"
	"github.com/amelia-reyes/boutique-api/middleware"
	"github.com/amelia-reyes/boutique-api/services"
)

func main() {
	log.Println("Starting boutique API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := config.InitSchema(db, cfg.ResetProducts); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}
	log.Println("Database migration completed successfully")

	imageService, err := services.NewImageService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	responder := services.NewDeepSeekService(cfg)
	chatService := services.NewChatService(db, responder)

	router := setupRouter(db, cfg, chatService, imageService)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires middleware and routes onto a fresh engine. Split out of
// main so the HTTP surface can be exercised end to end in tests.
func setupRouter(db *gorm.DB, cfg *config.Config, chatService *services.ChatService, imageService services.ImageService) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(secure.New(secure.Config{
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		FrameDeny:          true,
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck(db))

		api.POST("/users/signup", controllers.Signup(db))
		api.POST("/users/login", controllers.Login(db))

		api.GET("/products", controllers.ListProducts(db))
		api.POST("/products", controllers.CreateProduct(db))
		api.PUT("/products", controllers.UpdateProduct(db))
		api.DELETE("/products/:id", controllers.DeleteProduct(db))
		api.POST("/products/:id/image", controllers.UploadProductImage(db, imageService))

		api.GET("/refunds", controllers.ListRefunds(db))
		api.POST("/refunds", controllers.CreateRefund(db))

		api.GET("/order_status", controllers.ListOrderStatuses(db))
		api.POST("/order_status", controllers.CreateOrderStatus(db))

		api.GET("/order_history", controllers.ListOrderHistory(db))
		api.POST("/order_history", controllers.CreateOrderHistory(db))

		api.GET("/store_policies", controllers.ListStorePolicies(db))
		api.POST("/store_policies", controllers.CreateStorePolicy(db))

		api.GET("/messages", controllers.ListMessages(db))
		api.POST("/messages", controllers.CreateMessage(db))

		api.POST("/chat", controllers.Chat(chatService))
		api.POST("/chat/api/messages", controllers.ChatMessages(chatService))
	}

	// Product images and the bundled single-page frontend.
	router.Static("/img", cfg.ImageDir)
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
			return
		}
		c.File(filepath.Join(cfg.FrontendDir, "index.html"))
	})

	return router
}

// healthCheck reports server and database liveness
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
