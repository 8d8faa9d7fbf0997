package inventory

import (
	"fmt"
	"time"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateShipmentRequest struct {
	OrderNumber string          `json:"order_number"`
	Customer    string          `json:"customer"`
	ItemName    string          `json:"item_name"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Destination string          `json:"destination"`
}

type ShipmentResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Customer    string          `json:"customer"`
	ItemName    string          `json:"item_name"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Destination string          `json:"destination"`
}

func toShipmentResponse(s models.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:          s.Code,
		OrderNumber: s.OrderNumber,
		Customer:    s.Customer,
		ItemName:    s.ItemName,
		Quantity:    s.Quantity,
		Value:       s.Value,
		Date:        s.ShipmentDate.Format("2006-01-02"),
		Status:      s.Status,
		Destination: s.Destination,
	}
}

func validShipmentStatus(status string) bool {
	switch status {
	case models.ShipmentStatusPending, models.ShipmentStatusShipped, models.ShipmentStatusDelivered:
		return true
	}
	return false
}

// GET /api/shipments
func ListShipmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shipments []models.Shipment
		if err := database.DB.Order("id asc").Find(&shipments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sevkiyatlar listelenemedi")
		}

		resp := make([]ShipmentResponse, 0, len(shipments))
		for _, s := range shipments {
			resp = append(resp, toShipmentResponse(s))
		}
		return c.JSON(resp)
	}
}

// POST /api/shipments
// Sevkiyat önce bitmiş ürün stoğundan düşülür, düşüş başarılıysa kayıt
// oluşturulur. Stok yetersizse hiçbir mutasyon kalmaz.
func CreateShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ItemName == "" || body.Customer == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_name ve customer zorunlu")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity 0'dan büyük olmalı")
		}
		if body.Value.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "value negatif olamaz")
		}
		if body.Status == "" {
			body.Status = models.ShipmentStatusPending
		}
		if !validShipmentStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sevkiyat durumu: "+body.Status)
		}
		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		database.StockMu.Lock()
		defer database.StockMu.Unlock()

		var shipment models.Shipment
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var item models.StockItem
			if err := tx.First(&item, "item_name = ? AND category = ?", body.ItemName, models.CategoryFinishedGoods).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Stok kalemi bulunamadı: "+body.ItemName)
			}

			if item.Quantity < body.Quantity {
				return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
					"Yetersiz stok: %s için %d adet var, %d istendi",
					body.ItemName, item.Quantity, body.Quantity))
			}

			item.Quantity -= body.Quantity
			item.TotalValue = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if err := tx.Save(&item).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&models.Shipment{}).Count(&count).Error; err != nil {
				return err
			}

			// Değer çağrıdan gelir (fatura tutarı birim fiyattan sapabilir);
			// verilmemişse birim fiyattan hesaplanır.
			value := body.Value
			if value.IsZero() {
				value = item.UnitPrice.Mul(decimal.NewFromInt(int64(body.Quantity)))
			}

			shipment = models.Shipment{
				Code:         fmt.Sprintf("SHP-%03d", count+1),
				OrderNumber:  body.OrderNumber,
				Customer:     body.Customer,
				ItemName:     body.ItemName,
				Quantity:     body.Quantity,
				Value:        value,
				ShipmentDate: d,
				Status:       body.Status,
				Destination:  body.Destination,
			}
			return tx.Create(&shipment).Error
		})
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				return e
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sevkiyat oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toShipmentResponse(shipment))
	}
}
