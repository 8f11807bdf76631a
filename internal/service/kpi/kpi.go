package kpi

import (
	"math"

	"prod-analytics/internal/storage"
)

// Advisory flags carried on results. Data-quality problems never abort a
// computation; they degrade to a safe value and report one of these.
const (
	FlagMaterialCostIncomplete = "material_cost_incomplete"
	FlagRateUnavailable        = "rate_unavailable"
	FlagNoQuantity             = "no_quantity"
	FlagNoStandard             = "no_standard"
)

// OrderKPI is the per-order metric record consumed by the dashboard and the
// report exports. It is rebuilt from current repository state on every
// request and never persisted.
type OrderKPI struct {
	OrderID        string  `json:"order_id"`
	ProductName    string  `json:"product_name"`
	Qty            int     `json:"qty"`
	DueDate        string  `json:"due_date"`
	Sales          float64 `json:"sales"`
	StdTimePerUnit float64 `json:"std_time_per_unit"`
	Status         string  `json:"status"`

	MaterialCost   float64 `json:"material_cost"`
	LaborCost      float64 `json:"labor_cost"`
	GrossProfit    float64 `json:"gross_profit"`
	ActTimePerUnit float64 `json:"actual_time_per_unit"`
	VariancePct    float64 `json:"variance_pct"`

	StdHours    float64 `json:"std_hours"`
	ActualHours float64 `json:"actual_hours"`

	Flags []string `json:"flags,omitempty"`
}

// Round2 rounds to 2 decimal places, the precision of every numeric field
// exposed at the API boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// actualHours sums the labor ledger for one order. WorkerLog is the only
// source of actual time; manufacture procurements carry estimates.
func actualHours(logs []*storage.WorkerLog) float64 {
	var total float64
	for _, l := range logs {
		total += l.ActHours()
	}
	return total
}
