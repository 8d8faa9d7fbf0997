package reports

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"konfeksiyon-backend/internal/models"
	"konfeksiyon-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()

	cut := models.CuttingRecord{
		Code: "CUT-001", StyleName: "Polo Shirt",
		EmployeeCode: "AMS-0001", MaterialCode: "MAT-001",
		FabricUsed: decimal.NewFromInt(10), SizeM: 60, Total: 60,
		Rate: decimal.NewFromInt(1), Amount: decimal.NewFromInt(60),
		Date: time.Now(), Status: models.StatusCompleted,
	}
	if err := db.Create(&cut).Error; err != nil {
		t.Fatalf("kesim eklenemedi: %v", err)
	}
	sew := models.SewingRecord{
		Code: "SEW-001", StyleName: "Polo Shirt",
		EmployeeCode: "AMS-0001", SizeM: 40, Total: 40,
		Rate: decimal.NewFromInt(2), Amount: decimal.NewFromInt(80),
		Date: time.Now(), Status: models.StatusCompleted,
	}
	if err := db.Create(&sew).Error; err != nil {
		t.Fatalf("dikim eklenemedi: %v", err)
	}
	fin := models.FinishingRecord{
		Code: "FIN-001", StyleName: "Polo Shirt",
		EmployeeCode: "AMS-0001", Quantity: 25,
		Rate: decimal.NewFromInt(3), TotalAmount: decimal.NewFromInt(75),
		Date: time.Now(), Status: models.StatusCompleted,
	}
	if err := db.Create(&fin).Error; err != nil {
		t.Fatalf("finiş eklenemedi: %v", err)
	}
	item := models.StockItem{
		Code: "STK-001", ItemName: "Polo Shirt",
		Category: models.CategoryFinishedGoods, Quantity: 25, Unit: "pcs",
		UnitPrice: decimal.NewFromInt(3), TotalValue: decimal.NewFromInt(75),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("stok eklenemedi: %v", err)
	}
}

func TestProductionReport(t *testing.T) {
	db := testutil.SetupDB(t)
	seedReportData(t, db)

	app := fiber.New()
	app.Get("/api/reports/production", GetProductionReportHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/production", nil), -1)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var rows []ProductionRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("yanıt çözülemedi: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("satır sayısı = %d, beklenen 1", len(rows))
	}
	r := rows[0]
	if r.StyleName != "Polo Shirt" || r.CutTotal != 60 || r.SewnTotal != 40 || r.FinishedTotal != 25 || r.InStock != 25 {
		t.Errorf("rapor satırı = %+v", r)
	}
}

func TestProductionReportExcel(t *testing.T) {
	db := testutil.SetupDB(t)
	seedReportData(t, db)

	app := fiber.New()
	app.Get("/api/reports/production/excel", ExportProductionReportHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/production/excel", nil), -1)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content-type = %s", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("gövde okunamadı: %v", err)
	}
	// xlsx bir zip dosyasıdır, "PK" imzasıyla başlar
	if len(body) < 2 || body[0] != 'P' || body[1] != 'K' {
		t.Error("yanıt xlsx dosyası değil")
	}
}
