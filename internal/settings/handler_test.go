package settings

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetSettings(t *testing.T) {
	app := fiber.New()
	app.Get("/api/settings", GetSettingsHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings", nil), -1)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var b Bundle
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatalf("yanıt çözülemedi: %v", err)
	}
	if len(b.Departments) == 0 || len(b.StyleNames) == 0 {
		t.Errorf("boş referans listesi: %+v", b)
	}
	if len(b.EmpStatus) != 2 {
		t.Errorf("emp_status = %v, beklenen Active/Inactive", b.EmpStatus)
	}
}

func TestValidEmpStatus(t *testing.T) {
	if !ValidEmpStatus("Active") || !ValidEmpStatus("Inactive") {
		t.Error("geçerli durumlar reddedildi")
	}
	if ValidEmpStatus("Retired") || ValidEmpStatus("") {
		t.Error("geçersiz durum kabul edildi")
	}
}
