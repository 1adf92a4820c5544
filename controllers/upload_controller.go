package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
	"github.com/amelia-reyes/boutique-api/services"
	"github.com/amelia-reyes/boutique-api/utils"
)

// UploadProductImage handles POST /api/products/:id/image. The stored
// reference replaces any previous image on the product row.
func UploadProductImage(db *gorm.DB, images services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}

		key, err := images.UploadImage(fileHeader)
		if err != nil {
			var uploadErr *utils.FileUploadError
			if errors.As(err, &uploadErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": uploadErr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		url, err := images.GetImageURL(key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate image URL"})
			return
		}

		if err := db.Model(&product).Update("image", url).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product image updated successfully", "image": url})
	}
}
