package personnel

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"konfeksiyon-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("geçersiz ondalık %q: %v", s, err)
	}
	return d
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	testutil.SetupDB(t)

	app := fiber.New()
	app.Get("/api/employees", ListEmployeesHandler())
	app.Post("/api/employees", CreateEmployeeHandler())
	app.Put("/api/employees/:id", UpdateEmployeeHandler())
	app.Delete("/api/employees/:id", DeleteEmployeeHandler())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("istek gövdesi kodlanamadı: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s başarısız: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("yanıt çözülemedi: %v", err)
	}
}

func createEmployee(t *testing.T, app *fiber.App, name string) EmployeeResponse {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/employees", CreateEmployeeRequest{
		Name:        name,
		Designation: "Operator",
		Department:  "Sewing",
		JoinDate:    "2024-01-15",
		Type:        "Full-time",
		Salary:      dec(t, "15000"),
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("personel oluşturma status = %d, beklenen 201", resp.StatusCode)
	}
	var out EmployeeResponse
	decodeBody(t, resp, &out)
	return out
}

func TestEmployeeCodesAreGapAware(t *testing.T) {
	app := newTestApp(t)

	for i, name := range []string{"Ayşe", "Fatma", "Mehmet"} {
		e := createEmployee(t, app, name)
		want := []string{"AMS-0001", "AMS-0002", "AMS-0003"}[i]
		if e.ID != want {
			t.Fatalf("kod = %s, beklenen %s", e.ID, want)
		}
	}

	resp := doJSON(t, app, "DELETE", "/api/employees/AMS-0002", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("silme status = %d", resp.StatusCode)
	}

	// Boşluk doldurulmaz, en büyük numaranın bir fazlası verilir
	e := createEmployee(t, app, "Zeynep")
	if e.ID != "AMS-0004" {
		t.Errorf("silme sonrası kod = %s, beklenen AMS-0004", e.ID)
	}

	resp = doJSON(t, app, "GET", "/api/employees", nil)
	var list []EmployeeResponse
	decodeBody(t, resp, &list)
	if len(list) != 3 {
		t.Errorf("liste uzunluğu = %d, beklenen 3", len(list))
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/employees", CreateEmployeeRequest{
		JoinDate: "2024-01-15",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("isimsiz personel status = %d, beklenen 400", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/employees", CreateEmployeeRequest{
		Name:     "Ali",
		JoinDate: "15.01.2024",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("bozuk tarih status = %d, beklenen 400", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/employees", CreateEmployeeRequest{
		Name:     "Ali",
		JoinDate: "2024-01-15",
		Status:   "Retired",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("geçersiz durum status = %d, beklenen 400", resp.StatusCode)
	}
}

func TestUpdateEmployee(t *testing.T) {
	app := newTestApp(t)
	createEmployee(t, app, "Ayşe")

	newDept := "Cutting"
	resp := doJSON(t, app, "PUT", "/api/employees/AMS-0001", UpdateEmployeeRequest{
		Department: &newDept,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("güncelleme status = %d", resp.StatusCode)
	}
	var out EmployeeResponse
	decodeBody(t, resp, &out)
	if out.Department != "Cutting" {
		t.Errorf("department = %s, beklenen Cutting", out.Department)
	}
	// Gönderilmeyen alanlar korunur
	if out.Name != "Ayşe" {
		t.Errorf("name = %s, beklenen Ayşe", out.Name)
	}

	resp = doJSON(t, app, "PUT", "/api/employees/AMS-9999", UpdateEmployeeRequest{
		Department: &newDept,
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("olmayan personel güncelleme status = %d, beklenen 404", resp.StatusCode)
	}
}

func TestConcurrentEmployeeCreatesGetDistinctCodes(t *testing.T) {
	app := newTestApp(t)

	const n = 8
	codes := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var buf bytes.Buffer
			_ = json.NewEncoder(&buf).Encode(CreateEmployeeRequest{
				Name:     "İşçi",
				JoinDate: "2024-01-15",
			})
			req := httptest.NewRequest("POST", "/api/employees", &buf)
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			if err != nil || resp.StatusCode != fiber.StatusCreated {
				codes <- ""
				return
			}
			var out EmployeeResponse
			_ = json.NewDecoder(resp.Body).Decode(&out)
			resp.Body.Close()
			codes <- out.ID
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool)
	for code := range codes {
		if code == "" {
			t.Error("eşzamanlı personel oluşturma başarısız oldu")
			continue
		}
		if seen[code] {
			t.Errorf("kod iki kez verildi: %s", code)
		}
		seen[code] = true
	}
	if len(seen) != n {
		t.Errorf("farklı kod sayısı = %d, beklenen %d", len(seen), n)
	}
}

func TestDeleteMissingEmployee(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "DELETE", "/api/employees/AMS-9999", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, beklenen 404", resp.StatusCode)
	}
}
