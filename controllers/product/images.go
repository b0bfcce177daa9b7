package productControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

const productImagePublicPath = "/uploads/products"

// UploadDir returns the root directory for uploaded files.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// UploadProductImages attaches one ProductImage per uploaded file.
// POST /products/:id/upload_images, multipart field "images".
func UploadProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
			return
		}

		saveDir := filepath.Join(UploadDir(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		var images []models.ProductImage
		for _, file := range files {
			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			image := models.ProductImage{
				ProductID: product.ID,
				Image:     fmt.Sprintf("%s/%s", productImagePublicPath, filename),
			}
			if err := db.Create(&image).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image record"})
				return
			}
			images = append(images, image)
		}

		c.JSON(http.StatusCreated, images)
	}
}

type ProductImageInput struct {
	Product uint   `json:"product" binding:"required"`
	Image   string `json:"image" binding:"required"`
}

// GET /product-images
func GetAllProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []models.ProductImage
		if err := db.Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product images"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// GET /product-images/:id
func GetProductImageByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var image models.ProductImage
		if err := db.First(&image, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
			return
		}
		c.JSON(http.StatusOK, image)
	}
}

// POST /product-images
func CreateProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.Product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		image := models.ProductImage{ProductID: input.Product, Image: input.Image}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product image"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// DELETE /product-images/:id
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var image models.ProductImage
		if err := db.First(&image, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
			return
		}

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product image"})
			return
		}

		// Best effort: remove the file behind the public URL.
		if image.Image != "" {
			_ = os.Remove(filepath.Join(UploadDir(), "products", filepath.Base(image.Image)))
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product image deleted successfully"})
	}
}
