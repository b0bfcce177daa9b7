package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

type MaterialInput struct {
	Name string `json:"name" binding:"required,max=50"`
}

func GetAllMaterials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var materials []models.Material
		if err := db.Find(&materials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}
		c.JSON(http.StatusOK, materials)
	}
}

func GetMaterialByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var material models.Material
		if err := db.First(&material, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusOK, material)
	}
}

func CreateMaterial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MaterialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		material := models.Material{Name: input.Name}
		if err := db.Create(&material).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Material name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
			return
		}
		c.JSON(http.StatusCreated, material)
	}
}

func UpdateMaterial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var material models.Material
		if err := db.First(&material, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		var input MaterialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		material.Name = input.Name
		if err := db.Save(&material).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Material name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
			return
		}
		c.JSON(http.StatusOK, material)
	}
}

func DeleteMaterial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var material models.Material
		if err := db.First(&material, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		if err := db.Delete(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete material"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
	}
}
