package models

import (
	"time"

	"gorm.io/gorm"
)

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"not null" json:"-"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int     `gorm:"default:1;not null" json:"quantity"`

	// Derived on read from the current product price.
	TotalPrice int `gorm:"-" json:"total_price"`
}

func (i *CartItem) FillDerived() {
	i.TotalPrice = i.Product.Price * i.Quantity
}

func (i *CartItem) AfterFind(tx *gorm.DB) error {
	i.FillDerived()
	return nil
}
