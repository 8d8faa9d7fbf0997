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

type SizeQuantities struct {
	S   int `json:"s"`
	M   int `json:"m"`
	L   int `json:"l"`
	XL  int `json:"xl"`
	XXL int `json:"xxl"`
}

func (s SizeQuantities) Total() int {
	return s.S + s.M + s.L + s.XL + s.XXL
}

type CreateCuttingRequest struct {
	StyleName  string          `json:"style_name"`
	EmployeeID string          `json:"employee_id"`
	MaterialID string          `json:"material_id"`
	FabricUsed decimal.Decimal `json:"fabric_used"`
	Sizes      SizeQuantities  `json:"sizes"`
	Rate       decimal.Decimal `json:"rate"`
	Date       string          `json:"date"` // "2024-01-01"
}

type CuttingRecordResponse struct {
	ID           string          `json:"id"`
	StyleName    string          `json:"style_name"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	FabricUsed   decimal.Decimal `json:"fabric_used"`
	Unit         string          `json:"unit"`
	Sizes        SizeQuantities  `json:"sizes"`
	Total        int             `json:"total"`
	Rate         decimal.Decimal `json:"rate"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
}

func toCuttingResponse(r models.CuttingRecord) CuttingRecordResponse {
	return CuttingRecordResponse{
		ID:           r.Code,
		StyleName:    r.StyleName,
		EmployeeID:   r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		MaterialID:   r.MaterialCode,
		MaterialName: r.MaterialName,
		FabricUsed:   r.FabricUsed,
		Unit:         r.Unit,
		Sizes:        SizeQuantities{S: r.SizeS, M: r.SizeM, L: r.SizeL, XL: r.SizeXL, XXL: r.SizeXXL},
		Total:        r.Total,
		Rate:         r.Rate,
		Amount:       r.Amount,
		Date:         r.Date.Format("2006-01-02"),
		Status:       r.Status,
	}
}

// GET /api/production/cutting
func ListCuttingRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []models.CuttingRecord
		if err := database.DB.Order("id asc").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kesim kayıtları listelenemedi")
		}

		resp := make([]CuttingRecordResponse, 0, len(records))
		for _, r := range records {
			resp = append(resp, toCuttingResponse(r))
		}
		return c.JSON(resp)
	}
}

// POST /api/production/cutting
// Kesim kaydı: önce kimlik kontrolleri (personel, hammadde), sonra miktar
// kontrolü. Hammadde stoğu düşülür, kayıt eklenir; hata halinde hiçbir
// mutasyon kalmaz.
func CreateCuttingRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCuttingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.StyleName == "" || body.EmployeeID == "" || body.MaterialID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "style_name, employee_id ve material_id zorunlu")
		}
		if !body.FabricUsed.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, "fabric_used 0'dan büyük olmalı")
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

		var record models.CuttingRecord
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var emp models.Employee
			if err := tx.First(&emp, "code = ?", body.EmployeeID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı: "+body.EmployeeID)
			}

			var material models.RawMaterial
			if err := tx.First(&material, "code = ?", body.MaterialID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Hammadde bulunamadı: "+body.MaterialID)
			}

			if material.Quantity.LessThan(body.FabricUsed) {
				return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
					"Yetersiz hammadde: %s stoğunda %s %s var, %s istendi",
					material.Code, material.Quantity.String(), material.Unit, body.FabricUsed.String()))
			}

			material.Quantity = material.Quantity.Sub(body.FabricUsed)
			if err := tx.Save(&material).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&models.CuttingRecord{}).Count(&count).Error; err != nil {
				return err
			}

			record = models.CuttingRecord{
				Code:         fmt.Sprintf("CUT-%03d", count+1),
				StyleName:    body.StyleName,
				EmployeeCode: emp.Code,
				EmployeeName: emp.Name,
				MaterialCode: material.Code,
				MaterialName: material.Name,
				FabricUsed:   body.FabricUsed,
				Unit:         material.Unit,
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
			return fiber.NewError(fiber.StatusInternalServerError, "Kesim kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toCuttingResponse(record))
	}
}
