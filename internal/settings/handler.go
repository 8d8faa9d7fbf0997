package settings

import (
	"github.com/gofiber/fiber/v2"
)

// Statik referans verileri: üretim hattı formlarının seçim listeleri.
// Bu çekirdek tarafından değiştirilmez, konfigürasyon gibi davranılır.

type Bundle struct {
	Departments  []string `json:"departments"`
	Designations []string `json:"designations"`
	EmpTypes     []string `json:"emp_types"`
	EmpStatus    []string `json:"emp_status"`
	StyleNames   []string `json:"style_names"`
}

func Get() Bundle {
	return Bundle{
		Departments:  []string{"BOD", "HR", "Production", "Admin", "Cutting", "Sewing", "Finishing"},
		Designations: []string{"MD", "Manager", "Supervisor", "Operator", "Assistant", "Management Trainee"},
		EmpTypes:     []string{"Monthly", "Production", "Contract", "Permanent"},
		EmpStatus:    []string{"Active", "Inactive"},
		StyleNames:   []string{"Polo Shirt", "Mens T-Shirt", "Magi T Shirt", "Ladies Top", "Kids Wear"},
	}
}

// ValidEmpStatus: personel durumu listedeki değerlerden biri mi
func ValidEmpStatus(status string) bool {
	for _, s := range Get().EmpStatus {
		if s == status {
			return true
		}
	}
	return false
}

// GET /api/settings
func GetSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Get())
	}
}
