package inventory

import (
	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type StockItemResponse struct {
	ID         string          `json:"id"`
	ItemName   string          `json:"item_name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
}

func toStockItemResponse(s models.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:         s.Code,
		ItemName:   s.ItemName,
		Category:   s.Category,
		Quantity:   s.Quantity,
		Unit:       s.Unit,
		UnitPrice:  s.UnitPrice,
		TotalValue: s.TotalValue,
	}
}

// GET /api/stock-items
func ListStockItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.StockItem
		if err := database.DB.Order("id asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kalemleri listelenemedi")
		}

		resp := make([]StockItemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, toStockItemResponse(item))
		}
		return c.JSON(resp)
	}
}
