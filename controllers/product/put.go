package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

// UpdateProduct replaces an existing product by ID. Accepts the same body
// as CreateProduct.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product.CategoryID = input.Category
		product.ShapeID = input.Shape
		product.MaterialID = input.Material
		product.RatingID = input.Rating
		product.Price = *input.Price
		product.DiscountPrice = *input.DiscountPrice
		if input.MinimumQuantity > 0 {
			product.MinimumQuantity = input.MinimumQuantity
		}
		product.Name = input.Name
		product.Size = input.Size
		product.Weight = input.Weight
		product.Description = input.Description

		if err := db.Save(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced category, shape, material or rating does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if err := preloadAll(db).First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
