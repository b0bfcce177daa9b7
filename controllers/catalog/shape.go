package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

type ShapeInput struct {
	Name string `json:"name" binding:"required,max=50"`
}

func GetAllShapes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shapes []models.Shape
		if err := db.Find(&shapes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shapes"})
			return
		}
		c.JSON(http.StatusOK, shapes)
	}
}

func GetShapeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shape models.Shape
		if err := db.First(&shape, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shape not found"})
			return
		}
		c.JSON(http.StatusOK, shape)
	}
}

func CreateShape(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShapeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		shape := models.Shape{Name: input.Name}
		if err := db.Create(&shape).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Shape name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shape"})
			return
		}
		c.JSON(http.StatusCreated, shape)
	}
}

func UpdateShape(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shape models.Shape
		if err := db.First(&shape, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shape not found"})
			return
		}
		var input ShapeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		shape.Name = input.Name
		if err := db.Save(&shape).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Shape name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shape"})
			return
		}
		c.JSON(http.StatusOK, shape)
	}
}

func DeleteShape(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shape models.Shape
		if err := db.First(&shape, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shape not found"})
			return
		}
		if err := db.Delete(&shape).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shape"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Shape deleted successfully"})
	}
}
