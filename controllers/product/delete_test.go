package productControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/hrshere/daksh-prototype/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)

	image := models.ProductImage{ProductID: f.goldRing.ID, Image: "/uploads/products/ring.jpg"}
	require.NoError(t, db.Create(&image).Error)

	user := models.User{Username: "alice@example.com", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)
	item := models.CartItem{CartID: cart.ID, ProductID: f.goldRing.ID, Quantity: 2}
	require.NoError(t, db.Create(&item).Error)

	order := models.Order{UserID: user.ID, TotalQuantity: 2, TotalPrice: 2000,
		OrderProducts: []models.OrderProduct{{ProductID: f.goldRing.ID, Quantity: 2}}}
	require.NoError(t, db.Create(&order).Error)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", f.goldRing.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Images, cart items and order snapshots referencing the product are gone.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/product-images/%d", image.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var itemCount, lineCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	require.NoError(t, db.Model(&models.OrderProduct{}).Count(&lineCount).Error)
	assert.Zero(t, itemCount)
	assert.Zero(t, lineCount)

	// The untouched product is still there.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", f.silverChain.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)

	body := map[string]any{
		"category":       f.rings.ID,
		"shape":          f.round.ID,
		"material":       f.gold.ID,
		"rating":         f.four.ID,
		"price":          2000,
		"discount_price": 1500,
		"name":           "Signet Ring",
		"size":           9,
		"weight":         8.25,
		"description": map[string]string{
			"Dispatch_time": "3-5 days",
			"Note":          "Handmade",
		},
	}
	w := doJSON(r, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Signet Ring", created.Name)
	assert.Equal(t, 25.0, created.DiscountPercent)
	assert.Equal(t, "Rings", created.CategoryName)
	assert.Equal(t, 5, created.MinimumQuantity) // default applies when omitted
	assert.Equal(t, "3-5 days", created.Description.DispatchTime)

	// Unknown rating reference is rejected, nothing persisted.
	body["rating"] = 9999
	w = doJSON(r, http.MethodPost, "/products", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
