package personnel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"
	"konfeksiyon-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateEmployeeRequest struct {
	Name           string          `json:"name"`
	Designation    string          `json:"designation"`
	Department     string          `json:"department"`
	JoinDate       string          `json:"join_date"` // "2023-01-01"
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Salary         decimal.Decimal `json:"salary"`
	SeparationDate *string         `json:"separation_date"`
}

type UpdateEmployeeRequest struct {
	Name           *string          `json:"name"`
	Designation    *string          `json:"designation"`
	Department     *string          `json:"department"`
	JoinDate       *string          `json:"join_date"`
	Type           *string          `json:"type"`
	Status         *string          `json:"status"`
	Salary         *decimal.Decimal `json:"salary"`
	SeparationDate *string          `json:"separation_date"`
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Designation    string          `json:"designation"`
	Department     string          `json:"department"`
	JoinDate       string          `json:"join_date"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Salary         decimal.Decimal `json:"salary"`
	SeparationDate *string         `json:"separation_date,omitempty"`
}

func toEmployeeResponse(e models.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.Code,
		Name:        e.Name,
		Designation: e.Designation,
		Department:  e.Department,
		JoinDate:    e.JoinDate.Format("2006-01-02"),
		Type:        e.Type,
		Status:      e.Status,
		Salary:      e.Salary,
	}
	if e.SeparationDate != nil {
		s := e.SeparationDate.Format("2006-01-02")
		resp.SeparationDate = &s
	}
	return resp
}

// Yeni personel kodu: kullanımdaki en büyük numaranın bir fazlası (AMS-0004
// gibi). Silinen kayıtlar boşluk bırakabileceği için count+1 değil max+1
// kullanılıyor; aynı kod ikinci kez verilmez. Kod ataması ve insert aynı
// transaction içinde, StockMu altında çalışır; eşzamanlı iki istek aynı kodu
// alamaz.
func nextEmployeeCode(tx *gorm.DB) (string, error) {
	var codes []string
	if err := tx.Model(&models.Employee{}).Pluck("code", &codes).Error; err != nil {
		return "", err
	}

	max := 0
	for _, code := range codes {
		parts := strings.Split(code, "-")
		if len(parts) != 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[1]); err == nil && n > max {
			max = n
		}
	}

	return fmt.Sprintf("AMS-%04d", max+1), nil
}

// GET /api/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.Employee
		if err := database.DB.Order("id asc").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel listelenemedi")
		}

		resp := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			resp = append(resp, toEmployeeResponse(e))
		}
		return c.JSON(resp)
	}
}

// POST /api/employees
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
		}
		if body.Salary.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "salary negatif olamaz")
		}

		joinDate, err := time.Parse("2006-01-02", body.JoinDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "join_date formatı 'YYYY-MM-DD' olmalı")
		}

		status := body.Status
		if status == "" {
			status = models.EmpStatusActive
		}
		if !settings.ValidEmpStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "status 'Active' veya 'Inactive' olmalı")
		}

		emp := models.Employee{
			Name:        body.Name,
			Designation: body.Designation,
			Department:  body.Department,
			JoinDate:    joinDate,
			Type:        body.Type,
			Status:      status,
			Salary:      body.Salary,
		}

		if body.SeparationDate != nil && *body.SeparationDate != "" {
			sep, err := time.Parse("2006-01-02", *body.SeparationDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "separation_date formatı 'YYYY-MM-DD' olmalı")
			}
			emp.SeparationDate = &sep
		}

		database.StockMu.Lock()
		defer database.StockMu.Unlock()

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			code, err := nextEmployeeCode(tx)
			if err != nil {
				return err
			}
			emp.Code = code
			return tx.Create(&emp).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toEmployeeResponse(emp))
	}
}

// PUT /api/employees/:id
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "code = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı: "+id)
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name boş olamaz")
			}
			emp.Name = name
		}
		if body.Designation != nil {
			emp.Designation = *body.Designation
		}
		if body.Department != nil {
			emp.Department = *body.Department
		}
		if body.JoinDate != nil {
			d, err := time.Parse("2006-01-02", *body.JoinDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "join_date formatı 'YYYY-MM-DD' olmalı")
			}
			emp.JoinDate = d
		}
		if body.Type != nil {
			emp.Type = *body.Type
		}
		if body.Status != nil {
			if !settings.ValidEmpStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "status 'Active' veya 'Inactive' olmalı")
			}
			emp.Status = *body.Status
		}
		if body.Salary != nil {
			if body.Salary.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "salary negatif olamaz")
			}
			emp.Salary = *body.Salary
		}
		if body.SeparationDate != nil {
			if *body.SeparationDate == "" {
				emp.SeparationDate = nil
			} else {
				sep, err := time.Parse("2006-01-02", *body.SeparationDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "separation_date formatı 'YYYY-MM-DD' olmalı")
				}
				emp.SeparationDate = &sep
			}
		}

		if err := database.DB.Save(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel güncellenemedi")
		}

		return c.JSON(toEmployeeResponse(emp))
	}
}

// DELETE /api/employees/:id
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "code = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı: "+id)
		}

		if err := database.DB.Delete(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel silinemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
