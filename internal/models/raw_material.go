package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial: hammadde (kumaş vb). Quantity kesim kayıtlarıyla azalır;
// bu çekirdekte hiç artmaz (ikmal kapsam dışı).
type RawMaterial struct {
	ID        uint            `gorm:"primaryKey"`
	Code      string          `gorm:"size:20;uniqueIndex;not null"`
	Name      string          `gorm:"size:100;not null"`
	Type      string          `gorm:"size:50"` // Fabrics, Accessories vs.
	Quantity  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Unit      string          `gorm:"size:20;not null"` // KG, Metre vs.
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Supplier  string          `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
