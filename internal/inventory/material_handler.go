package inventory

import (
	"fmt"
	"strings"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateRawMaterialRequest struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Supplier  string          `json:"supplier"`
}

type RawMaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Supplier  string          `json:"supplier"`
}

func toRawMaterialResponse(m models.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:        m.Code,
		Name:      m.Name,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		UnitPrice: m.UnitPrice,
		Supplier:  m.Supplier,
	}
}

// GET /api/raw-materials
func ListRawMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var materials []models.RawMaterial
		if err := database.DB.Order("id asc").Find(&materials).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hammaddeler listelenemedi")
		}

		resp := make([]RawMaterialResponse, 0, len(materials))
		for _, m := range materials {
			resp = append(resp, toRawMaterialResponse(m))
		}
		return c.JSON(resp)
	}
}

// POST /api/raw-materials
func CreateRawMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRawMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name ve unit zorunlu")
		}
		if body.Quantity.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "quantity negatif olamaz")
		}
		if body.UnitPrice.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "unit_price negatif olamaz")
		}

		// Kod ataması count+1; eşzamanlı iki insert aynı kodu almasın
		database.StockMu.Lock()
		defer database.StockMu.Unlock()

		var material models.RawMaterial
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.RawMaterial{}).Count(&count).Error; err != nil {
				return err
			}
			material = models.RawMaterial{
				Code:      fmt.Sprintf("MAT-%03d", count+1),
				Name:      body.Name,
				Type:      body.Type,
				Quantity:  body.Quantity,
				Unit:      body.Unit,
				UnitPrice: body.UnitPrice,
				Supplier:  body.Supplier,
			}
			return tx.Create(&material).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hammadde oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toRawMaterialResponse(material))
	}
}
