package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	notificationControllers "github.com/hrshere/daksh-prototype/controllers/notification"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Category        uint                      `json:"category" binding:"required"`
	Shape           uint                      `json:"shape" binding:"required"`
	Material        uint                      `json:"material" binding:"required"`
	Rating          uint                      `json:"rating" binding:"required"`
	Price           *int                      `json:"price" binding:"required,gte=0,lte=10000"`
	DiscountPrice   *int                      `json:"discount_price" binding:"required,gte=0,lte=10000"`
	MinimumQuantity int                       `json:"minimum_quantity" binding:"omitempty,gte=1"`
	Name            string                    `json:"name" binding:"required,max=100"`
	Size            int                       `json:"size" binding:"gte=0"`
	Weight          float64                   `json:"weight" binding:"gte=0"`
	Description     models.ProductDescription `json:"description"`
}

// CreateProduct creates a new product and broadcasts a push notification to
// the products topic. Broadcast failure never fails the request.
func CreateProduct(db *gorm.DB, notifier *notificationControllers.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			CategoryID:      input.Category,
			ShapeID:         input.Shape,
			MaterialID:      input.Material,
			RatingID:        input.Rating,
			Price:           *input.Price,
			DiscountPrice:   *input.DiscountPrice,
			MinimumQuantity: input.MinimumQuantity,
			Name:            input.Name,
			Size:            input.Size,
			Weight:          input.Weight,
			Description:     input.Description,
		}

		if err := db.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced category, shape, material or rating does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if err := preloadAll(db).First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created product"})
			return
		}

		if notifier != nil {
			if _, err := notifier.BroadcastProductAdded(c.Request.Context(), product.Name); err != nil {
				log.Printf("❌ Product broadcast failed for %q: %v", product.Name, err)
			}
		}

		c.JSON(http.StatusCreated, product)
	}
}
