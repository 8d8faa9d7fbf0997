package main

import (
	"log"
	"strings"

	"konfeksiyon-backend/internal/config"
	"konfeksiyon-backend/internal/dashboard"
	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/inventory"
	"konfeksiyon-backend/internal/personnel"
	"konfeksiyon-backend/internal/production"
	"konfeksiyon-backend/internal/reports"
	"konfeksiyon-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(logger.New())

	api := app.Group("/api")

	// Personel
	api.Get("/employees", personnel.ListEmployeesHandler())
	api.Post("/employees", personnel.CreateEmployeeHandler())
	api.Put("/employees/:id", personnel.UpdateEmployeeHandler())
	api.Delete("/employees/:id", personnel.DeleteEmployeeHandler())

	// Hammadde
	api.Get("/raw-materials", inventory.ListRawMaterialsHandler())
	api.Post("/raw-materials", inventory.CreateRawMaterialHandler())

	// Üretim hattı: kesim -> dikim -> finiş
	api.Get("/production/cutting", production.ListCuttingRecordsHandler())
	api.Post("/production/cutting", production.CreateCuttingRecordHandler())
	api.Get("/production/sewing", production.ListSewingRecordsHandler())
	api.Post("/production/sewing", production.CreateSewingRecordHandler())
	api.Get("/production/finishing", production.ListFinishingRecordsHandler())
	api.Post("/production/finishing", production.CreateFinishingRecordHandler())
	api.Get("/production/cut-stock", production.AvailableCutStockHandler())
	api.Get("/production/sewn-stock", production.AvailableSewnStockHandler())

	// Stok ve sevkiyat
	api.Get("/stock-items", inventory.ListStockItemsHandler())
	api.Get("/shipments", inventory.ListShipmentsHandler())
	api.Post("/shipments", inventory.CreateShipmentHandler())

	// Referans veriler
	api.Get("/settings", settings.GetSettingsHandler())

	// Dashboard ve raporlar
	api.Get("/dashboard/summary", dashboard.GetSummaryHandler())
	api.Get("/reports/production", reports.GetProductionReportHandler())
	api.Get("/reports/production/excel", reports.ExportProductionReportHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
