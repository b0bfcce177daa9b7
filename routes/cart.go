package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hrshere/daksh-prototype/controllers/cart"
	"github.com/hrshere/daksh-prototype/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the JWT-scoped cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddCartItem(db))
		cart.PUT("/:id/update-quantity", cartControllers.UpdateCartItemQuantity(db))
		cart.DELETE("/:id/remove-item", cartControllers.RemoveCartItem(db))
	}
}
