package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

// RatingInput uses a pointer so a zero-star rating still passes "required".
type RatingInput struct {
	Value *int `json:"value" binding:"required,gte=0,lte=5"`
}

func GetAllRatings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ratings []models.Rating
		if err := db.Find(&ratings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
			return
		}
		c.JSON(http.StatusOK, ratings)
	}
}

func GetRatingByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rating models.Rating
		if err := db.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		c.JSON(http.StatusOK, rating)
	}
}

func CreateRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rating := models.Rating{Value: *input.Value}
		if err := db.Create(&rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Rating value already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating"})
			return
		}
		c.JSON(http.StatusCreated, rating)
	}
}

func UpdateRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rating models.Rating
		if err := db.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rating.Value = *input.Value
		if err := db.Save(&rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Rating value already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
			return
		}
		c.JSON(http.StatusOK, rating)
	}
}

func DeleteRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rating models.Rating
		if err := db.First(&rating, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		if err := db.Delete(&rating).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
	}
}
