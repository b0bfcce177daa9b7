package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hrshere/daksh-prototype/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderProductInput struct {
	Product  uint `json:"product" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gte=1"`
}

// PlaceOrderRequest carries the client-supplied totals. They are stored as
// submitted, not recomputed from the line items.
type PlaceOrderRequest struct {
	UserEmail     string              `json:"user_email" binding:"required,email"`
	TotalQuantity *int                `json:"total_quantity" binding:"required"`
	TotalPrice    *float64            `json:"total_price" binding:"required"`
	OrderProducts []OrderProductInput `json:"order_products" binding:"required,dive"`
}

// -------- Core Logic --------

// getOrCreateUser resolves a user by exact email match, provisioning one on
// first reference. The placeholder credential is a bcrypt hash of a random
// string; real passwords belong to the identity provider. A concurrent
// provision for the same email loses on the unique index and refetches.
func getOrCreateUser(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return user, err
	}

	user = models.User{Username: email, Email: email, Password: string(hash)}
	if createErr := db.Create(&user).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			if fetchErr := db.Where("email = ?", email).First(&user).Error; fetchErr == nil {
				return user, nil
			}
		}
		return user, createErr
	}
	return user, nil
}

// -------- Handlers --------

// PlaceOrderHandler persists an order with its line-item snapshot, then
// sends the confirmation email and broadcasts the order on the websocket
// feed. Neither dispatch rolls back a committed order; failures are logged.
func PlaceOrderHandler(db *gorm.DB, mailer *Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := getOrCreateUser(db, req.UserEmail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}

		order := models.Order{
			UserID:        user.ID,
			TotalQuantity: *req.TotalQuantity,
			TotalPrice:    *req.TotalPrice,
		}
		for _, line := range req.OrderProducts {
			order.OrderProducts = append(order.OrderProducts, models.OrderProduct{
				ProductID: line.Product,
				Quantity:  line.Quantity,
			})
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		order.UserEmail = user.Email
		if mailer != nil {
			if err := mailer.SendOrderConfirmation(user.Email, order); err != nil {
				log.Printf("❌ Order confirmation email failed for order %d: %v", order.ID, err)
			}
		}
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("OrderProducts").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("OrderProducts").
			First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err := db.Delete(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
