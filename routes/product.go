package routes

import (
	"github.com/gin-gonic/gin"
	notificationControllers "github.com/hrshere/daksh-prototype/controllers/notification"
	productControllers "github.com/hrshere/daksh-prototype/controllers/product"
	"github.com/hrshere/daksh-prototype/middleware"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB, notifier *notificationControllers.Notifier) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.POST("", productControllers.CreateProduct(db, notifier))
		products.GET("/:id", productControllers.GetProductByID(db))
		products.PUT("/:id", productControllers.UpdateProduct(db))
		products.DELETE("/:id", productControllers.DeleteProduct(db))
		products.POST("/:id/upload_images", productControllers.UploadProductImages(db))
	}

	// Admin-only catalog dump, kept off /products so the static path does
	// not collide with the :id wildcard.
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/products/export-excel", productControllers.ExportProductsToExcel(db))
	}

	images := r.Group("/product-images")
	{
		images.GET("", productControllers.GetAllProductImages(db))
		images.POST("", productControllers.CreateProductImage(db))
		images.GET("/:id", productControllers.GetProductImageByID(db))
		images.DELETE("/:id", productControllers.DeleteProductImage(db))
	}
}
