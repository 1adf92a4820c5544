package config

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// SeedProducts is the fixed sample catalog. The products table is rebuilt
// from this list on every startup while ResetProducts is enabled, so catalog
// edits made at runtime are deliberately ephemeral.
var SeedProducts = []models.Product{
	{Name: "Floral Maxi Dress", Price: 59.99, Details: "Elegant floral pattern", Image: imageRef("/img/download.jpeg")},
	{Name: "Black Cocktail Dress", Price: 79.99, Details: "Sleek and stylish", Image: imageRef("/img/download (1).jpeg")},
	{Name: "Summer Sundress", Price: 39.99, Details: "Light and breezy", Image: imageRef("/img/bla foral dress.webp")},
	{Name: "Denim Jacket", Price: 49.99, Details: "Casual and cool", Image: imageRef("/img/floral dres.jpg")},
	{Name: "Red Evening Gown", Price: 99.99, Details: "Bold and elegant", Image: imageRef("/img/floral maxi dress.jpg")},
	{Name: "White Shirt Dress", Price: 45.99, Details: "Crisp and versatile", Image: imageRef("/img/floral maxi dress.jpg")},
	{Name: "Bohemian Skirt", Price: 34.99, Details: "Flowy and free", Image: imageRef("/img/flower dres.jpg")},
	{Name: "Leather Jacket", Price: 89.99, Details: "Edgy and warm", Image: imageRef("/img/images (3).jpeg")},
	{Name: "Polka Dot Blouse", Price: 29.99, Details: "Playful pattern", Image: imageRef("/img/images.jpeg")},
	{Name: "Green Midi Dress", Price: 54.99, Details: "Fresh and chic", Image: imageRef("/img/floral maxii.jpg")},
	{Name: "Striped T-Shirt", Price: 19.99, Details: "Casual comfort", Image: imageRef("/img/floral dres.jpg")},
	{Name: "Velvet Blazer", Price: 69.99, Details: "Luxurious feel", Image: imageRef("/img/images (1).jpeg")},
	{Name: "Lace Top", Price: 44.99, Details: "Delicate and feminine", Image: imageRef("/img/images (3).jpeg")},
	{Name: "Plaid Skirt", Price: 39.99, Details: "Classic pattern", Image: imageRef("/img/images (4).jpeg")},
	{Name: "Silk Scarf", Price: 24.99, Details: "Soft and elegant", Image: imageRef("/img/images (5).jpeg")},
	{Name: "Knit Sweater", Price: 49.99, Details: "Cozy and warm", Image: imageRef("/img/images (6).jpeg")},
	{Name: "Chiffon Blouse", Price: 34.99, Details: "Light and airy", Image: imageRef("/img/images (7).jpeg")},
	{Name: "Cargo Pants", Price: 59.99, Details: "Practical and trendy", Image: imageRef("/img/images.jpeg")},
	{Name: "Satin Dress", Price: 74.99, Details: "Shiny and smooth", Image: imageRef("/img/red floral.webp")},
	{Name: "Hooded Jacket", Price: 64.99, Details: "Warm and casual", Image: imageRef("/img/flower dres.jpg")},
}

// SeedPolicies are the baseline store rules, inserted once.
var SeedPolicies = []models.StorePolicy{
	{Rule: "No returns after 30 days"},
	{Rule: "Free shipping on orders over $50"},
}

// InitSchema creates all tables and seeds baseline reference data. It is
// idempotent for every table except products: when resetProducts is true the
// products table is dropped and rebuilt from SeedProducts on each call.
// Seeding is guarded by row counts so restarts never duplicate seed rows.
func InitSchema(db *gorm.DB, resetProducts bool) error {
	if resetProducts {
		if err := db.Migrator().DropTable(&models.Product{}); err != nil {
			return fmt.Errorf("failed to drop products table: %w", err)
		}
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
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount == 0 {
		products := make([]models.Product, len(SeedProducts))
		copy(products, SeedProducts)
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Println("Seeded sample products")
	}

	var policyCount int64
	if err := db.Model(&models.StorePolicy{}).Count(&policyCount).Error; err != nil {
		return fmt.Errorf("failed to count store policies: %w", err)
	}
	if policyCount == 0 {
		policies := make([]models.StorePolicy, len(SeedPolicies))
		copy(policies, SeedPolicies)
		if err := db.Create(&policies).Error; err != nil {
			return fmt.Errorf("failed to seed store policies: %w", err)
		}
		log.Println("Seeded sample policies")
	}

	return nil
}

func imageRef(path string) *string {
	return &path
}
