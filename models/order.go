package models

import (
	"time"

	"gorm.io/gorm"
)

// Order keeps the totals as submitted by the client; they are not
// recomputed from the line items.
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null" json:"-"`
	User          User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TotalQuantity int            `gorm:"not null" json:"total_quantity"`
	TotalPrice    float64        `gorm:"not null" json:"total_price"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_products"`
	CreatedAt     time.Time      `json:"created_at"`

	// Echoed in responses in place of the numeric user id.
	UserEmail string `gorm:"-" json:"user_email"`
}

// OrderProduct is the immutable snapshot of one ordered line item.
type OrderProduct struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"not null" json:"product"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

func (o *Order) AfterFind(tx *gorm.DB) error {
	o.UserEmail = o.User.Email
	return nil
}
