package reports

import (
	"fmt"

	"konfeksiyon-backend/internal/database"
	"konfeksiyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ProductionRow: bir modelin üç aşamadaki toplam adetleri ve bitmiş ürün
// stoğundaki anlık miktarı.
type ProductionRow struct {
	StyleName     string `json:"style_name"`
	CutTotal      int    `json:"cut_total"`
	SewnTotal     int    `json:"sewn_total"`
	FinishedTotal int    `json:"finished_total"`
	InStock       int    `json:"in_stock"`
}

func buildProductionReport(db *gorm.DB) ([]ProductionRow, error) {
	totals := map[string]*ProductionRow{}
	var order []string

	row := func(style string) *ProductionRow {
		r, ok := totals[style]
		if !ok {
			r = &ProductionRow{StyleName: style}
			totals[style] = r
			order = append(order, style)
		}
		return r
	}

	var cuts []models.CuttingRecord
	if err := db.Order("id asc").Find(&cuts).Error; err != nil {
		return nil, err
	}
	for _, r := range cuts {
		row(r.StyleName).CutTotal += r.Total
	}

	var sews []models.SewingRecord
	if err := db.Order("id asc").Find(&sews).Error; err != nil {
		return nil, err
	}
	for _, r := range sews {
		row(r.StyleName).SewnTotal += r.Total
	}

	var fins []models.FinishingRecord
	if err := db.Order("id asc").Find(&fins).Error; err != nil {
		return nil, err
	}
	for _, r := range fins {
		row(r.StyleName).FinishedTotal += r.Quantity
	}

	var items []models.StockItem
	if err := db.Where("category = ?", models.CategoryFinishedGoods).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		if r, ok := totals[item.ItemName]; ok {
			r.InStock += item.Quantity
		} else {
			row(item.ItemName).InStock = item.Quantity
		}
	}

	rows := make([]ProductionRow, 0, len(order))
	for _, style := range order {
		rows = append(rows, *totals[style])
	}
	return rows, nil
}

// GET /api/reports/production
func GetProductionReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := buildProductionReport(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor hesaplanamadı")
		}
		return c.JSON(rows)
	}
}

// GET /api/reports/production/excel
func ExportProductionReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := buildProductionReport(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor hesaplanamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		f.SetCellValue("Sheet1", "A1", "Model")
		f.SetCellValue("Sheet1", "B1", "Kesim")
		f.SetCellValue("Sheet1", "C1", "Dikim")
		f.SetCellValue("Sheet1", "D1", "Finiş")
		f.SetCellValue("Sheet1", "E1", "Stok")

		for i, r := range rows {
			n := fmt.Sprint(i + 2)
			f.SetCellValue("Sheet1", "A"+n, r.StyleName)
			f.SetCellValue("Sheet1", "B"+n, r.CutTotal)
			f.SetCellValue("Sheet1", "C"+n, r.SewnTotal)
			f.SetCellValue("Sheet1", "D"+n, r.FinishedTotal)
			f.SetCellValue("Sheet1", "E"+n, r.InStock)
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", "attachment; filename=uretim-raporu.xlsx")
		return c.Send(buf.Bytes())
	}
}
