package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"prod-analytics/internal/service/kpi"
)

// CSVHeader is a compatibility contract with downstream spreadsheets: the
// column order must not change.
var CSVHeader = []string{
	"order_id",
	"product_name",
	"qty",
	"due_date",
	"sales",
	"material_unit_cost",
	"std_time_per_unit",
	"wage_rate",
	"material_cost",
	"labor_cost",
	"gross_profit",
	"actual_time_per_unit",
	"variance_pct",
}

// CSVRow flattens one KPI into the export column order. material_unit_cost
// is left empty when the order has no quantity.
func CSVRow(k *kpi.OrderKPI, wageRate float64) []string {
	unitCost := ""
	if k.Qty > 0 {
		unitCost = money(kpi.Round2(k.MaterialCost / float64(k.Qty)))
	}

	return []string{
		k.OrderID,
		k.ProductName,
		strconv.Itoa(k.Qty),
		k.DueDate,
		money(k.Sales),
		unitCost,
		money(k.StdTimePerUnit),
		money(wageRate),
		money(k.MaterialCost),
		money(k.LaborCost),
		money(k.GrossProfit),
		money(k.ActTimePerUnit),
		money(k.VariancePct),
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}

	return buf.Bytes(), nil
}
