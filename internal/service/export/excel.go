package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"prod-analytics/internal/service/kpi"
)

var excelHeaders = []string{
	"Order", "Product", "Qty", "Due date", "Sales", "Material unit cost",
	"Std h/unit", "Wage rate", "Material cost", "Labor cost", "Gross profit",
	"Actual h/unit", "Variance %",
}

// GenerateExcel renders the same report table as GenerateCSV as a styled
// xlsx workbook.
func (s *Service) GenerateExcel(ctx context.Context, from, to time.Time) ([]byte, error) {
	const op = "service.export.GenerateExcel"

	kpis, err := s.source.OrderKPIs(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "KPI Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range excelHeaders {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(excelHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, k := range kpis {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), k.OrderID)
		f.SetCellValue(sheet, cellName(2, rowNum), k.ProductName)
		f.SetCellValue(sheet, cellName(3, rowNum), k.Qty)
		f.SetCellValue(sheet, cellName(4, rowNum), k.DueDate)
		f.SetCellValue(sheet, cellName(5, rowNum), k.Sales)
		if k.Qty > 0 {
			f.SetCellValue(sheet, cellName(6, rowNum), kpi.Round2(k.MaterialCost/float64(k.Qty)))
		}
		f.SetCellValue(sheet, cellName(7, rowNum), k.StdTimePerUnit)
		f.SetCellValue(sheet, cellName(8, rowNum), s.rate)
		f.SetCellValue(sheet, cellName(9, rowNum), k.MaterialCost)
		f.SetCellValue(sheet, cellName(10, rowNum), k.LaborCost)
		f.SetCellValue(sheet, cellName(11, rowNum), k.GrossProfit)
		f.SetCellValue(sheet, cellName(12, rowNum), k.ActTimePerUnit)
		f.SetCellValue(sheet, cellName(13, rowNum), k.VariancePct)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", "M", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
