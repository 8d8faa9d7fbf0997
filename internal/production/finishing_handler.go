package production

import (
	"errors"
	"fmt"
	"time"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateFinishingRequest struct {
	StyleName  string          `json:"style_name"`
	EmployeeID string          `json:"employee_id"`
	Quantity   int             `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	Date       string          `json:"date"`
}

type FinishingRecordResponse struct {
	ID           string          `json:"id"`
	StyleName    string          `json:"style_name"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Quantity     int             `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
}

func toFinishingResponse(r models.FinishingRecord) FinishingRecordResponse {
	return FinishingRecordResponse{
		ID:           r.Code,
		StyleName:    r.StyleName,
		EmployeeID:   r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Quantity:     r.Quantity,
		Rate:         r.Rate,
		TotalAmount:  r.TotalAmount,
		Date:         r.Date.Format("2006-01-02"),
		Status:       r.Status,
	}
}

// GET /api/production/finishing
func ListFinishingRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []models.FinishingRecord
		if err := database.DB.Order("id asc").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Finiş kayıtları listelenemedi")
		}

		resp := make([]FinishingRecordResponse, 0, len(records))
		for _, r := range records {
			resp = append(resp, toFinishingResponse(r))
		}
		return c.JSON(resp)
	}
}

// POST /api/production/finishing
// Finiş kaydı: dikim stoğu bakiyesi kontrol edilir, kayıt eklenir ve çıktı
// bitmiş ürün stoğuna işlenir. Aynı model için stok kalemi varsa miktar ona
// eklenir; yoksa yeni kalem açılır ve bu partinin rate'i birim fiyat olarak
// sabitlenir (sonraki partiler farklı rate ile gelse de değişmez).
func CreateFinishingRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFinishingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.StyleName == "" || body.EmployeeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "style_name ve employee_id zorunlu")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
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

		var record models.FinishingRecord
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var emp models.Employee
			if err := tx.First(&emp, "code = ?", body.EmployeeID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı: "+body.EmployeeID)
			}

			stocks, err := AvailableSewnStock(tx)
			if err != nil {
				return err
			}
			available, ok := findStyleStock(stocks, body.StyleName)
			if !ok || available < body.Quantity {
				return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
					"Yetersiz dikim stoğu: %s için %d adet var, %d istendi",
					body.StyleName, available, body.Quantity))
			}

			var count int64
			if err := tx.Model(&models.FinishingRecord{}).Count(&count).Error; err != nil {
				return err
			}

			record = models.FinishingRecord{
				Code:         fmt.Sprintf("FIN-%03d", count+1),
				StyleName:    body.StyleName,
				EmployeeCode: emp.Code,
				EmployeeName: emp.Name,
				Quantity:     body.Quantity,
				Rate:         body.Rate,
				TotalAmount:  body.Rate.Mul(decimal.NewFromInt(int64(body.Quantity))),
				Date:         d,
				Status:       models.StatusCompleted,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}

			// Bitmiş ürün stoğuna işle
			var item models.StockItem
			err = tx.First(&item, "item_name = ? AND category = ?", body.StyleName, models.CategoryFinishedGoods).Error
			switch {
			case err == nil:
				item.Quantity += body.Quantity
				item.TotalValue = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
				return tx.Save(&item).Error
			case errors.Is(err, gorm.ErrRecordNotFound):
				var itemCount int64
				if err := tx.Model(&models.StockItem{}).Count(&itemCount).Error; err != nil {
					return err
				}
				item = models.StockItem{
					Code:       fmt.Sprintf("STK-%03d", itemCount+1),
					ItemName:   body.StyleName,
					Category:   models.CategoryFinishedGoods,
					Quantity:   body.Quantity,
					Unit:       "pcs",
					UnitPrice:  body.Rate,
					TotalValue: body.Rate.Mul(decimal.NewFromInt(int64(body.Quantity))),
				}
				return tx.Create(&item).Error
			default:
				return err
			}
		})
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				return e
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Finiş kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toFinishingResponse(record))
	}
}
