package dashboard

import (
	"time"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SummaryResponse struct {
	ActiveEmployees  int64           `json:"active_employees"`
	RawMaterialValue decimal.Decimal `json:"raw_material_value"`
	ProductionToday  int             `json:"production_today"`
	ShipmentCount    int64           `json:"shipment_count"`
	FinishedStockQty int             `json:"finished_stock_qty"`
}

// GET /api/dashboard/summary
func GetSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var resp SummaryResponse

		if err := database.DB.Model(&models.Employee{}).
			Where("status = ?", models.EmpStatusActive).
			Count(&resp.ActiveEmployees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		var materials []models.RawMaterial
		if err := database.DB.Find(&materials).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		total := decimal.Zero
		for _, m := range materials {
			total = total.Add(m.Quantity.Mul(m.UnitPrice))
		}
		resp.RawMaterialValue = total

		// Bugünün üretimi: kesim kayıtlarının toplam adedi
		today := time.Now().Format("2006-01-02")
		var cuts []models.CuttingRecord
		if err := database.DB.Find(&cuts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		for _, r := range cuts {
			if r.Date.Format("2006-01-02") == today {
				resp.ProductionToday += r.Total
			}
		}

		if err := database.DB.Model(&models.Shipment{}).
			Count(&resp.ShipmentCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		var items []models.StockItem
		if err := database.DB.Where("category = ?", models.CategoryFinishedGoods).
			Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		for _, item := range items {
			resp.FinishedStockQty += item.Quantity
		}

		return c.JSON(resp)
	}
}
