package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"gorm.io/gorm"
)

// parseIDList parses a comma-separated id list. Empty tokens are skipped;
// any non-numeric token invalidates the whole list.
func parseIDList(raw string) ([]int, bool) {
	var ids []int
	for _, tok := range strings.Split(raw, ",") {
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// GetProducts lists products. All filters are optional and AND-combined:
// category__id, shape__id, material__id, rating__id, search (name
// substring), ids (comma-separated id list).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := preloadAll(db.Model(&models.Product{}))

		filters := []struct{ param, column string }{
			{"category__id", "category_id"},
			{"shape__id", "shape_id"},
			{"material__id", "material_id"},
			{"rating__id", "rating_id"},
		}
		for _, f := range filters {
			if v := c.Query(f.param); v != "" {
				id, err := strconv.ParseUint(v, 10, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + f.param})
					return
				}
				query = query.Where(f.column+" = ?", uint(id))
			}
		}

		if search := c.Query("search"); search != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		if raw := c.Query("ids"); raw != "" {
			ids, ok := parseIDList(raw)
			if !ok {
				// A malformed id list degrades to an empty result, not an error.
				c.JSON(http.StatusOK, []models.Product{})
				return
			}
			query = query.Where("id IN ?", ids)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
