package production

import (
	"fmt"
	"time"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateSewingRequest struct {
	StyleName  string          `json:"style_name"`
	EmployeeID string          `json:"employee_id"`
	Sizes      SizeQuantities  `json:"sizes"`
	Rate       decimal.Decimal `json:"rate"`
	Date       string          `json:"date"`
}

type SewingRecordResponse struct {
	ID           string          `json:"id"`
	StyleName    string          `json:"style_name"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Sizes        SizeQuantities  `json:"sizes"`
	Total        int             `json:"total"`
	Rate         decimal.Decimal `json:"rate"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
}

func toSewingResponse(r models.SewingRecord) SewingRecordResponse {
	return SewingRecordResponse{
		ID:           r.Code,
		StyleName:    r.StyleName,
		EmployeeID:   r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Sizes:        SizeQuantities{S: r.SizeS, M: r.SizeM, L: r.SizeL, XL: r.SizeXL, XXL: r.SizeXXL},
		Total:        r.Total,
		Rate:         r.Rate,
		Amount:       r.Amount,
		Date:         r.Date.Format("2006-01-02"),
		Status:       r.Status,
	}
}

// GET /api/production/sewing
func ListSewingRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []models.SewingRecord
		if err := database.DB.Order("id asc").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dikim kayıtları listelenemedi")
		}

		resp := make([]SewingRecordResponse, 0, len(records))
		for _, r := range records {
			resp = append(resp, toSewingResponse(r))
		}
		return c.JSON(resp)
	}
}

// POST /api/production/sewing
// Dikim kaydı: kesim stoğu bakiyesi loglardan hesaplanır, yeterliyse kayıt
// eklenir. Saklanan bir bakiye alanı mutasyona uğramaz; düşüş, sonraki ledger
// hesaplarında kendiliğinden görünür.
func CreateSewingRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSewingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.StyleName == "" || body.EmployeeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "style_name ve employee_id zorunlu")
		}
		total := body.Sizes.Total()
		if total <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir beden için adet girilmeli")
		}
		if body.Rate.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "rate negatif olamaz")
		}
		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		database.StockMu.Lock()
		defer database.StockMu.Unlock()

		var record models.SewingRecord
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var emp models.Employee
			if err := tx.First(&emp, "code = ?", body.EmployeeID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı: "+body.EmployeeID)
			}

			stocks, err := AvailableCutStock(tx)
			if err != nil {
				return err
			}
			available, ok := findStyleStock(stocks, body.StyleName)
			if !ok || available < total {
				return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
					"Yetersiz kesim stoğu: %s için %d adet var, %d istendi",
					body.StyleName, available, total))
			}

			var count int64
			if err := tx.Model(&models.SewingRecord{}).Count(&count).Error; err != nil {
				return err
			}

			record = models.SewingRecord{
				Code:         fmt.Sprintf("SEW-%03d", count+1),
				StyleName:    body.StyleName,
				EmployeeCode: emp.Code,
				EmployeeName: emp.Name,
				SizeS:        body.Sizes.S,
				SizeM:        body.Sizes.M,
				SizeL:        body.Sizes.L,
				SizeXL:       body.Sizes.XL,
				SizeXXL:      body.Sizes.XXL,
				Total:        total,
				Rate:         body.Rate,
				Amount:       body.Rate.Mul(decimal.NewFromInt(int64(total))),
				Date:         d,
				Status:       models.StatusCompleted,
			}
			return tx.Create(&record).Error
		})
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				return e
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Dikim kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toSewingResponse(record))
	}
}
