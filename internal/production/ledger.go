package production

import (
	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StyleStock: bir model için bekleyen adet.
type StyleStock struct {
	StyleName string `json:"style_name"`
	Quantity  int    `json:"quantity"`
}

// AvailableCutStock: kesilmiş ama henüz dikime verilmemiş adetler.
// Saklanan bir bakiye yoktur; her çağrıda kesim ve dikim loglarından yeniden
// hesaplanır. Sonuç modellerin ilk görünme sırasındadır, pozitif olmayan
// bakiyeler elenir.
func AvailableCutStock(db *gorm.DB) ([]StyleStock, error) {
	var cuts []models.CuttingRecord
	if err := db.Order("id asc").Find(&cuts).Error; err != nil {
		return nil, err
	}
	var sews []models.SewingRecord
	if err := db.Order("id asc").Find(&sews).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, r := range cuts {
		if _, ok := totals[r.StyleName]; !ok {
			order = append(order, r.StyleName)
		}
		totals[r.StyleName] += r.Total
	}
	for _, r := range sews {
		if _, ok := totals[r.StyleName]; !ok {
			order = append(order, r.StyleName)
		}
		totals[r.StyleName] -= r.Total
	}

	result := make([]StyleStock, 0, len(order))
	for _, style := range order {
		if totals[style] > 0 {
			result = append(result, StyleStock{StyleName: style, Quantity: totals[style]})
		}
	}
	return result, nil
}

// AvailableSewnStock: dikilmiş ama henüz finişe verilmemiş adetler.
func AvailableSewnStock(db *gorm.DB) ([]StyleStock, error) {
	var sews []models.SewingRecord
	if err := db.Order("id asc").Find(&sews).Error; err != nil {
		return nil, err
	}
	var fins []models.FinishingRecord
	if err := db.Order("id asc").Find(&fins).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, r := range sews {
		if _, ok := totals[r.StyleName]; !ok {
			order = append(order, r.StyleName)
		}
		totals[r.StyleName] += r.Total
	}
	for _, r := range fins {
		if _, ok := totals[r.StyleName]; !ok {
			order = append(order, r.StyleName)
		}
		totals[r.StyleName] -= r.Quantity
	}

	result := make([]StyleStock, 0, len(order))
	for _, style := range order {
		if totals[style] > 0 {
			result = append(result, StyleStock{StyleName: style, Quantity: totals[style]})
		}
	}
	return result, nil
}

func findStyleStock(stocks []StyleStock, styleName string) (int, bool) {
	for _, s := range stocks {
		if s.StyleName == styleName {
			return s.Quantity, true
		}
	}
	return 0, false
}

// GET /api/production/cut-stock
func AvailableCutStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stocks, err := AvailableCutStock(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kesim stoğu hesaplanamadı")
		}
		return c.JSON(stocks)
	}
}

// GET /api/production/sewn-stock
func AvailableSewnStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stocks, err := AvailableSewnStock(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dikim stoğu hesaplanamadı")
		}
		return c.JSON(stocks)
	}
}
