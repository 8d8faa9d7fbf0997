package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SewingRecord: dikim kaydı. Oluşturulduktan sonra değişmez. Kesim stoğundan
// düşüş doğrudan bir bakiye alanına yazılmaz; bakiye kayıt loglarından
// yeniden hesaplanır.
type SewingRecord struct {
	ID           uint            `gorm:"primaryKey"`
	Code         string          `gorm:"size:20;uniqueIndex;not null"`
	StyleName    string          `gorm:"size:100;index;not null"`
	EmployeeCode string          `gorm:"size:20;not null"`
	EmployeeName string          `gorm:"size:100"`
	SizeS        int             `gorm:"not null;default:0"`
	SizeM        int             `gorm:"not null;default:0"`
	SizeL        int             `gorm:"not null;default:0"`
	SizeXL       int             `gorm:"not null;default:0"`
	SizeXXL      int             `gorm:"not null;default:0"`
	Total        int             `gorm:"not null"`
	Rate         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null"` // Total * Rate
	Date         time.Time       `gorm:"index;not null"`
	Status       string          `gorm:"size:20;not null"`
	CreatedAt    time.Time
}
