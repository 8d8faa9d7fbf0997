package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryFinishedGoods = "Finished Goods"
	CategoryRawMaterial   = "Raw Material"
	CategoryAccessories   = "Accessories"
)

// StockItem: stok kalemi. Bitmiş ürün kalemleri ilk finiş partisiyle
// oluşturulur, sonraki partiler aynı kalemin miktarına eklenir. TotalValue her
// mutasyonda Quantity * UnitPrice olarak yeniden hesaplanır.
type StockItem struct {
	ID         uint            `gorm:"primaryKey"`
	Code       string          `gorm:"size:20;uniqueIndex;not null"`
	ItemName   string          `gorm:"size:100;index;not null"`
	Category   string          `gorm:"size:30;not null"` // Finished Goods | Raw Material | Accessories
	Quantity   int             `gorm:"not null"`
	Unit       string          `gorm:"size:20;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	TotalValue decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
