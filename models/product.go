package models

import (
	"math"

	"gorm.io/gorm"
)

// ProductDescription is the recognized attribute set carried by a product.
// Stored as a single JSON column.
type ProductDescription struct {
	DispatchTime     string `json:"Dispatch_time,omitempty"`
	SuitableFor      string `json:"Suitable_for,omitempty"`
	CareInstructions string `json:"Care_Instructions,omitempty"`
	Note             string `json:"Note,omitempty"`
}

type Product struct {
	ID              uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID      uint               `gorm:"not null" json:"category"`
	Category        Category           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ShapeID         uint               `gorm:"not null" json:"shape"`
	Shape           Shape              `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MaterialID      uint               `gorm:"not null" json:"material"`
	Material        Material           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RatingID        uint               `gorm:"not null" json:"rating"`
	Rating          Rating             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Price           int                `gorm:"not null" json:"price"`
	DiscountPrice   int                `gorm:"not null" json:"discount_price"`
	MinimumQuantity int                `gorm:"default:5" json:"minimum_quantity"`
	Name            string             `gorm:"not null" json:"name"`
	Size            int                `json:"size"`
	Weight          float64            `gorm:"type:numeric(10,2)" json:"weight"`
	Description     ProductDescription `gorm:"serializer:json" json:"description"`
	Images          []ProductImage     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`

	// Derived on read, never stored.
	CategoryName    string  `gorm:"-" json:"category_name"`
	ShapeName       string  `gorm:"-" json:"shape_name"`
	MaterialName    string  `gorm:"-" json:"material_name"`
	RatingValue     int     `gorm:"-" json:"rating_value"`
	DiscountPercent float64 `gorm:"-" json:"discount_percent"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product"`
	Image     string `gorm:"not null" json:"image"`
}

// ComputeDiscountPercent returns the discount as a percentage of the price,
// rounded to two decimals. A free product has no discount.
func (p *Product) ComputeDiscountPercent() float64 {
	if p.Price <= 0 {
		return 0
	}
	pct := float64(p.Price-p.DiscountPrice) / float64(p.Price) * 100
	return math.Round(pct*100) / 100
}

// FillDerived populates the read-only response fields from the loaded
// associations and the stored prices.
func (p *Product) FillDerived() {
	p.DiscountPercent = p.ComputeDiscountPercent()
	p.CategoryName = p.Category.Name
	p.ShapeName = p.Shape.Name
	p.MaterialName = p.Material.Name
	p.RatingValue = p.Rating.Value
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.FillDerived()
	return nil
}
