package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinishingRecord: finiş (ütü-paket) kaydı. Oluşturulduktan sonra değişmez;
// çıktısı bitmiş ürün stoğuna eklenir.
type FinishingRecord struct {
	ID           uint            `gorm:"primaryKey"`
	Code         string          `gorm:"size:20;uniqueIndex;not null"`
	StyleName    string          `gorm:"size:100;index;not null"`
	EmployeeCode string          `gorm:"size:20;not null"`
	EmployeeName string          `gorm:"size:100"`
	Quantity     int             `gorm:"not null"`
	Rate         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(20,4);not null"` // Quantity * Rate
	Date         time.Time       `gorm:"index;not null"`
	Status       string          `gorm:"size:20;not null"`
	CreatedAt    time.Time
}
