package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusCompleted = "Completed"

// CuttingRecord: kesim kaydı. Oluşturulduktan sonra değişmez. Personel ve
// hammadde adları kayıt anındaki halleriyle kopyalanır; kaynak kayıt sonradan
// değişse bile güncellenmez.
type CuttingRecord struct {
	ID           uint            `gorm:"primaryKey"`
	Code         string          `gorm:"size:20;uniqueIndex;not null"`
	StyleName    string          `gorm:"size:100;index;not null"`
	EmployeeCode string          `gorm:"size:20;not null"`
	EmployeeName string          `gorm:"size:100"`
	MaterialCode string          `gorm:"size:20;not null"`
	MaterialName string          `gorm:"size:100"`
	FabricUsed   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Unit         string          `gorm:"size:20"`
	SizeS        int             `gorm:"not null;default:0"`
	SizeM        int             `gorm:"not null;default:0"`
	SizeL        int             `gorm:"not null;default:0"`
	SizeXL       int             `gorm:"not null;default:0"`
	SizeXXL      int             `gorm:"not null;default:0"`
	Total        int             `gorm:"not null"` // beden adetleri toplamı
	Rate         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null"` // Total * Rate
	Date         time.Time       `gorm:"index;not null"`
	Status       string          `gorm:"size:20;not null"`
	CreatedAt    time.Time
}
