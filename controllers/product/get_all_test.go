package productControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hrshere/daksh-prototype/models"
	"github.com/hrshere/daksh-prototype/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Shape{},
		&models.Material{},
		&models.Rating{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderProduct{},
	))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupProductRoutes(r, db, nil)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fixture struct {
	rings, chains models.Category
	round         models.Shape
	gold, silver  models.Material
	four          models.Rating
	goldRing      models.Product
	silverChain   models.Product
}

func seedCatalog(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		rings:  models.Category{Name: "Rings"},
		chains: models.Category{Name: "Chains"},
		round:  models.Shape{Name: "Round"},
		gold:   models.Material{Name: "Gold"},
		silver: models.Material{Name: "Silver"},
		four:   models.Rating{Value: 4},
	}
	require.NoError(t, db.Create(&f.rings).Error)
	require.NoError(t, db.Create(&f.chains).Error)
	require.NoError(t, db.Create(&f.round).Error)
	require.NoError(t, db.Create(&f.gold).Error)
	require.NoError(t, db.Create(&f.silver).Error)
	require.NoError(t, db.Create(&f.four).Error)

	f.goldRing = models.Product{
		CategoryID: f.rings.ID, ShapeID: f.round.ID, MaterialID: f.gold.ID, RatingID: f.four.ID,
		Price: 1000, DiscountPrice: 750, Name: "Gold Ring", Size: 7, Weight: 12.50,
	}
	f.silverChain = models.Product{
		CategoryID: f.chains.ID, ShapeID: f.round.ID, MaterialID: f.silver.ID, RatingID: f.four.ID,
		Price: 400, DiscountPrice: 400, Name: "Silver Chain", Size: 18, Weight: 30.00,
	}
	require.NoError(t, db.Create(&f.goldRing).Error)
	require.NoError(t, db.Create(&f.silverChain).Error)
	return f
}

func listProducts(t *testing.T, r *gin.Engine, query string) []models.Product {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/products"+query, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestListProductsFilters(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)

	products := listProducts(t, r, "")
	assert.Len(t, products, 2)

	products = listProducts(t, r, fmt.Sprintf("?category__id=%d", f.rings.ID))
	require.Len(t, products, 1)
	assert.Equal(t, "Gold Ring", products[0].Name)

	products = listProducts(t, r, fmt.Sprintf("?material__id=%d", f.silver.ID))
	require.Len(t, products, 1)
	assert.Equal(t, "Silver Chain", products[0].Name)

	// Filters are AND-combined.
	products = listProducts(t, r, fmt.Sprintf("?category__id=%d&material__id=%d", f.rings.ID, f.silver.ID))
	assert.Empty(t, products)

	products = listProducts(t, r, fmt.Sprintf("?rating__id=%d&shape__id=%d", f.four.ID, f.round.ID))
	assert.Len(t, products, 2)
}

func TestListProductsSearch(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := newRouter(db)

	products := listProducts(t, r, "?search=ring")
	require.Len(t, products, 1)
	assert.Equal(t, "Gold Ring", products[0].Name)

	products = listProducts(t, r, "?search=nothing")
	assert.Empty(t, products)
}

func TestListProductsIDs(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)

	products := listProducts(t, r, fmt.Sprintf("?ids=%d,%d", f.goldRing.ID, f.silverChain.ID))
	assert.Len(t, products, 2)

	products = listProducts(t, r, fmt.Sprintf("?ids=%d", f.goldRing.ID))
	assert.Len(t, products, 1)

	// A malformed list degrades to an empty result, not an error.
	products = listProducts(t, r, "?ids=1,2,x")
	assert.Empty(t, products)
}

func TestListProductsDerivedFields(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)

	products := listProducts(t, r, fmt.Sprintf("?ids=%d", f.goldRing.ID))
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, 25.0, p.DiscountPercent)
	assert.Equal(t, "Rings", p.CategoryName)
	assert.Equal(t, "Round", p.ShapeName)
	assert.Equal(t, "Gold", p.MaterialName)
	assert.Equal(t, 4, p.RatingValue)
}
