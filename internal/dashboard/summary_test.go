package dashboard

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"konfeksiyon-backend/internal/models"
	"konfeksiyon-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func TestGetSummary(t *testing.T) {
	db := testutil.SetupDB(t)

	db.Create(&models.Employee{
		Code: "AMS-0001", Name: "Ayşe", JoinDate: time.Now(),
		Status: models.EmpStatusActive,
	})
	db.Create(&models.Employee{
		Code: "AMS-0002", Name: "Ali", JoinDate: time.Now(),
		Status: models.EmpStatusInactive,
	})
	db.Create(&models.RawMaterial{
		Code: "MAT-001", Name: "Pike Kumaş", Unit: "KG",
		Quantity:  decimal.NewFromInt(100),
		UnitPrice: decimal.NewFromInt(10),
	})
	db.Create(&models.CuttingRecord{
		Code: "CUT-001", StyleName: "Polo Shirt",
		EmployeeCode: "AMS-0001", EmployeeName: "Ayşe",
		MaterialCode: "MAT-001", MaterialName: "Pike Kumaş",
		FabricUsed: decimal.NewFromInt(10), Unit: "KG",
		SizeM: 30, Total: 30,
		Rate: decimal.NewFromInt(1), Amount: decimal.NewFromInt(30),
		Date: time.Now(), Status: models.StatusCompleted,
	})
	db.Create(&models.StockItem{
		Code: "STK-001", ItemName: "Polo Shirt",
		Category: models.CategoryFinishedGoods, Quantity: 25, Unit: "pcs",
		UnitPrice:  decimal.NewFromInt(3),
		TotalValue: decimal.NewFromInt(75),
	})
	db.Create(&models.Shipment{
		Code: "SHP-001", Customer: "Aydın Giyim", ItemName: "Polo Shirt",
		Quantity: 10, ShipmentDate: time.Now(),
		Status: models.ShipmentStatusShipped,
	})

	app := fiber.New()
	app.Get("/api/dashboard/summary", GetSummaryHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/summary", nil), -1)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var s SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatalf("yanıt çözülemedi: %v", err)
	}
	if s.ActiveEmployees != 1 {
		t.Errorf("aktif personel = %d, beklenen 1", s.ActiveEmployees)
	}
	if !s.RawMaterialValue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("hammadde değeri = %s, beklenen 1000", s.RawMaterialValue)
	}
	if s.ProductionToday != 30 {
		t.Errorf("bugünkü üretim = %d, beklenen 30", s.ProductionToday)
	}
	if s.ShipmentCount != 1 {
		t.Errorf("sevkiyat sayısı = %d, beklenen 1", s.ShipmentCount)
	}
	if s.FinishedStockQty != 25 {
		t.Errorf("bitmiş ürün stoğu = %d, beklenen 25", s.FinishedStockQty)
	}
}
