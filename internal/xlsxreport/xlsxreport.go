// Package xlsxreport renders a cost Breakdown as a print-shop-facing XLSX
// workbook, grounded on the teacher pack's internal/importer use of
// github.com/xuri/excelize/v2 (there used to read XLSX part lists; here
// used to write one, the same library's complementary capability).
package xlsxreport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/printcore/internal/costestimate"
)

const sheetName = "Cost Breakdown"

// WriteBreakdown renders b as a two-column line-item workbook and saves it
// to path.
func WriteBreakdown(path string, b costestimate.Breakdown) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rows := [][2]string{
		{"Line item", "Value"},
		{"BW n-up", fmt.Sprintf("%d", b.BWNUp)},
		{"Color n-up", fmt.Sprintf("%d", b.ColorNUp)},
		{"Cover n-up", fmt.Sprintf("%d", b.CoverNUp)},
		{"BW press sheets", fmt.Sprintf("%d", b.BWPressSheets)},
		{"Color press sheets", fmt.Sprintf("%d", b.ColorPressSheets)},
		{"Cover press sheets", fmt.Sprintf("%d", b.CoverPressSheets)},
		{"Total clicks", fmt.Sprintf("%d", b.TotalClicks)},
		{"Paper cost", fmt.Sprintf("%.2f", b.PaperCost)},
		{"Click cost", fmt.Sprintf("%.2f", b.ClickCost)},
		{"Lamination cost", fmt.Sprintf("%.2f", b.LaminationCost)},
		{"Labor cost", fmt.Sprintf("%.2f", b.LaborCost)},
		{"Shipping cost", fmt.Sprintf("%.2f", b.ShippingCost)},
		{"Subtotal", fmt.Sprintf("%.2f", b.Subtotal)},
		{"Markup", fmt.Sprintf("%.2f", b.Markup)},
		{"Total", fmt.Sprintf("%.2f", b.Total)},
		{"Price per unit", fmt.Sprintf("%.4f", b.PricePerUnit)},
		{"Production time (hours)", fmt.Sprintf("%.2f", b.ProductionTimeHours)},
	}

	for i, row := range rows {
		r := i + 1
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row[0]); err != nil {
			return fmt.Errorf("writing row %d: %w", r, err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row[1]); err != nil {
			return fmt.Errorf("writing row %d: %w", r, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return fmt.Errorf("sizing column: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
