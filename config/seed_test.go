package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

func TestInitSchemaSeedsCatalog(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, InitSchema(db, true))

	var productCount, policyCount int64
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.StorePolicy{}).Count(&policyCount)
	assert.Equal(t, int64(len(SeedProducts)), productCount)
	assert.Equal(t, int64(len(SeedPolicies)), policyCount)

	var first models.Product
	assert.NoError(t, db.First(&first).Error)
	assert.Equal(t, "Floral Maxi Dress", first.Name)
	assert.Equal(t, 59.99, first.Price)
}

func TestInitSchemaResetRebuildsProducts(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, InitSchema(db, true))

	// Runtime catalog edits are discarded on the next reset.
	db.Create(&models.Product{Name: "Pop-up Special", Price: 9.99})
	db.Where("name = ?", "Denim Jacket").Delete(&models.Product{})

	assert.NoError(t, InitSchema(db, true))

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	assert.Equal(t, int64(len(SeedProducts)), productCount)

	var special int64
	db.Model(&models.Product{}).Where("name = ?", "Pop-up Special").Count(&special)
	assert.Zero(t, special)
}

func TestInitSchemaWithoutResetKeepsProducts(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, InitSchema(db, true))

	db.Create(&models.Product{Name: "Pop-up Special", Price: 9.99})

	assert.NoError(t, InitSchema(db, false))

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	assert.Equal(t, int64(len(SeedProducts)+1), productCount)
}

func TestInitSchemaPoliciesAreNotReseeded(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, InitSchema(db, true))

	// Policies persist across restarts; a non-empty table is left alone.
	db.Where("rule = ?", SeedPolicies[0].Rule).Delete(&models.StorePolicy{})

	assert.NoError(t, InitSchema(db, true))

	var policyCount int64
	db.Model(&models.StorePolicy{}).Count(&policyCount)
	assert.Equal(t, int64(len(SeedPolicies)-1), policyCount)
}
