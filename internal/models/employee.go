package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EmpStatusActive   = "Active"
	EmpStatusInactive = "Inactive"
)

// Employee: personel kaydı. Code dışarıya görünen kimliktir (AMS-0001 gibi);
// silinen kayıtların numarası tekrar kullanılmaz.
type Employee struct {
	ID             uint   `gorm:"primaryKey"`
	Code           string `gorm:"size:20;uniqueIndex;not null"`
	Name           string `gorm:"size:100;not null"`
	Designation    string `gorm:"size:50"`
	Department     string `gorm:"size:50"`
	JoinDate       time.Time
	Type           string          `gorm:"size:30"`                          // Monthly, Production, Contract, Permanent
	Status         string          `gorm:"size:20;not null;default:Active"` // Active | Inactive
	Salary         decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	SeparationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
