package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusShipped   = "Shipped"
	ShipmentStatusDelivered = "Delivered"
)

// Shipment: müşteriye giden sevkiyat. Yalnızca bitmiş ürün stoğundan başarılı
// düşüşten sonra oluşturulur.
type Shipment struct {
	ID           uint            `gorm:"primaryKey"`
	Code         string          `gorm:"size:20;uniqueIndex;not null"`
	OrderNumber  string          `gorm:"size:50;index"`
	Customer     string          `gorm:"size:100;not null"`
	ItemName     string          `gorm:"size:100;not null"`
	Quantity     int             `gorm:"not null"`
	Value        decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	ShipmentDate time.Time       `gorm:"index;not null"`
	Status       string          `gorm:"size:20;not null"` // Pending | Shipped | Delivered
	Destination  string          `gorm:"size:100"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
