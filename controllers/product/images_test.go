package productControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrshere/daksh-prototype/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProductImages(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("images", "ring front.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/products/%d/upload_images", f.goldRing.ID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var images []models.ProductImage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, f.goldRing.ID, images[0].ProductID)
	assert.Contains(t, images[0].Image, "/uploads/products/")

	// The product now embeds its image.
	products := listProducts(t, r, fmt.Sprintf("?ids=%d", f.goldRing.ID))
	require.Len(t, products, 1)
	assert.Len(t, products[0].Images, 1)
}

func TestUploadImagesUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := newRouter(db)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_, err := mw.CreateFormFile("images", "ring.jpg")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/9999/upload_images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductImageCRUD(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/product-images",
		map[string]any{"product": f.goldRing.ID, "image": "/uploads/products/ring.jpg"})
	require.Equal(t, http.StatusCreated, w.Code)

	var image models.ProductImage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &image))

	w = doJSON(r, http.MethodGet, "/product-images", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/product-images/%d", image.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/product-images/%d", image.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Attaching to a missing product is rejected.
	w = doJSON(r, http.MethodPost, "/product-images",
		map[string]any{"product": uint(9999), "image": "/x.jpg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
