package export

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prod-analytics/internal/service/kpi"
)

type fixtureSource struct {
	kpis []*kpi.OrderKPI
}

func (s *fixtureSource) OrderKPIs(_ context.Context, from, to time.Time) ([]*kpi.OrderKPI, error) {
	return s.kpis, nil
}

func sampleKPI() *kpi.OrderKPI {
	return &kpi.OrderKPI{
		OrderID:        "ORD-100",
		ProductName:    "Frame assembly",
		Qty:            100,
		DueDate:        "2025-06-01",
		Sales:          100000,
		StdTimePerUnit: 0.5,
		Status:         "in_progress",
		MaterialCost:   82500,
		LaborCost:      1500,
		GrossProfit:    16000,
		ActTimePerUnit: 0.6,
		VariancePct:    20,
		StdHours:       50,
		ActualHours:    60,
	}
}

// Column order is a compatibility contract with downstream spreadsheets.
func TestCSVHeaderContract(t *testing.T) {
	assert.Equal(t, []string{
		"order_id", "product_name", "qty", "due_date", "sales",
		"material_unit_cost", "std_time_per_unit", "wage_rate",
		"material_cost", "labor_cost", "gross_profit",
		"actual_time_per_unit", "variance_pct",
	}, CSVHeader)
}

func TestCSVRow(t *testing.T) {
	row := CSVRow(sampleKPI(), 25)

	require.Len(t, row, len(CSVHeader))
	assert.Equal(t, []string{
		"ORD-100", "Frame assembly", "100", "2025-06-01", "100000.00",
		"825.00", "0.50", "25.00",
		"82500.00", "1500.00", "16000.00",
		"0.60", "20.00",
	}, row)
}

func TestCSVRow_NoQuantityLeavesUnitCostEmpty(t *testing.T) {
	k := sampleKPI()
	k.Qty = 0

	row := CSVRow(k, 25)

	assert.Equal(t, "", row[5])
}

func TestGenerateCSV(t *testing.T) {
	svc := NewService(&fixtureSource{kpis: []*kpi.OrderKPI{sampleKPI()}}, 25)

	out, err := svc.GenerateCSV(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, "ORD-100", records[1][0])
	assert.Equal(t, "82500.00", records[1][8])
}

func TestGenerateExcel(t *testing.T) {
	svc := NewService(&fixtureSource{kpis: []*kpi.OrderKPI{sampleKPI()}}, 25)

	out, err := svc.GenerateExcel(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
