package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/hrshere/daksh-prototype/controllers/catalog"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers CRUD for the flat lookup tables.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("", catalogControllers.GetAllCategories(db))
		categories.POST("", catalogControllers.CreateCategory(db))
		categories.GET("/:id", catalogControllers.GetCategoryByID(db))
		categories.PUT("/:id", catalogControllers.UpdateCategory(db))
		categories.DELETE("/:id", catalogControllers.DeleteCategory(db))
	}

	shapes := r.Group("/shapes")
	{
		shapes.GET("", catalogControllers.GetAllShapes(db))
		shapes.POST("", catalogControllers.CreateShape(db))
		shapes.GET("/:id", catalogControllers.GetShapeByID(db))
		shapes.PUT("/:id", catalogControllers.UpdateShape(db))
		shapes.DELETE("/:id", catalogControllers.DeleteShape(db))
	}

	materials := r.Group("/materials")
	{
		materials.GET("", catalogControllers.GetAllMaterials(db))
		materials.POST("", catalogControllers.CreateMaterial(db))
		materials.GET("/:id", catalogControllers.GetMaterialByID(db))
		materials.PUT("/:id", catalogControllers.UpdateMaterial(db))
		materials.DELETE("/:id", catalogControllers.DeleteMaterial(db))
	}

	ratings := r.Group("/ratings")
	{
		ratings.GET("", catalogControllers.GetAllRatings(db))
		ratings.POST("", catalogControllers.CreateRating(db))
		ratings.GET("/:id", catalogControllers.GetRatingByID(db))
		ratings.PUT("/:id", catalogControllers.UpdateRating(db))
		ratings.DELETE("/:id", catalogControllers.DeleteRating(db))
	}
}
