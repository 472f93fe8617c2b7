package models

import "time"

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	PhoneNumber   *string     `gorm:"type:varchar(20)" json:"phone_number"`
	TotalPrice    int         `gorm:"not null" json:"total_price"`
	PackagingType string      `gorm:"type:varchar(50);not null" json:"packaging_type"`
	Status        string      `gorm:"type:varchar(50);not null;default:'completed'" json:"status"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}
