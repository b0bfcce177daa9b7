package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/hrshere/daksh-prototype/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, mailer *orderControllers.Mailer) {
	orders := r.Group("/orders")
	{
		// Create a new order
		orders.POST("", orderControllers.PlaceOrderHandler(db, mailer))

		// Fetch all orders
		orders.GET("", orderControllers.GetAllOrdersHandler(db))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// PDF receipt
		orders.GET("/:orderID/invoice", orderControllers.OrderInvoiceHandler(db))

		// Delete an order
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}

	// Real-time order feed, registered outside the group so the static
	// path does not collide with the :orderID wildcard.
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
