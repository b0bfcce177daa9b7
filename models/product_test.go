package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscountPercent(t *testing.T) {
	p := Product{Price: 100, DiscountPrice: 75}
	assert.Equal(t, 25.0, p.ComputeDiscountPercent())

	p = Product{Price: 999, DiscountPrice: 333}
	assert.InDelta(t, 66.67, p.ComputeDiscountPercent(), 0.001)

	p = Product{Price: 100, DiscountPrice: 100}
	assert.Equal(t, 0.0, p.ComputeDiscountPercent())

	// A free product carries no discount, whatever the discount price says.
	p = Product{Price: 0, DiscountPrice: 50}
	assert.Equal(t, 0.0, p.ComputeDiscountPercent())
}

func TestCartItemTotalPrice(t *testing.T) {
	item := CartItem{Product: Product{Price: 250}, Quantity: 3}
	item.FillDerived()
	assert.Equal(t, 750, item.TotalPrice)
}

func TestFillDerivedNames(t *testing.T) {
	p := Product{
		Price:         200,
		DiscountPrice: 150,
		Category:      Category{Name: "Rings"},
		Shape:         Shape{Name: "Round"},
		Material:      Material{Name: "Gold"},
		Rating:        Rating{Value: 4},
	}
	p.FillDerived()

	assert.Equal(t, "Rings", p.CategoryName)
	assert.Equal(t, "Round", p.ShapeName)
	assert.Equal(t, "Gold", p.MaterialName)
	assert.Equal(t, 4, p.RatingValue)
	assert.Equal(t, 25.0, p.DiscountPercent)
}
