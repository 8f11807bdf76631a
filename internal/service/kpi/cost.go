package kpi

import (
	"prod-analytics/internal/storage"
)

// CostResult is the outcome of costing a single order.
type CostResult struct {
	MaterialCost float64
	LaborCost    float64
	GrossProfit  float64
	Flags        []string
}

// CostAggregator computes material and labor cost for one order from its
// procurement and worker-log children.
type CostAggregator struct {
	// HourlyRate prices worker-log hours. Not configured (<= 0) means labor
	// cost is reported as 0 with FlagRateUnavailable.
	HourlyRate float64
}

func (c CostAggregator) Aggregate(order *storage.Order, procs []*storage.Procurement, logs []*storage.WorkerLog) CostResult {
	var res CostResult

	for _, p := range procs {
		if p.Kind != storage.KindPurchase || p.Purchase == nil {
			continue
		}
		if p.Purchase.UnitPrice == nil {
			// Missing price contributes 0 rather than sinking the whole order.
			res.Flags = appendFlag(res.Flags, FlagMaterialCostIncomplete)
			continue
		}
		res.MaterialCost += *p.Purchase.UnitPrice * float64(p.Qty)
	}

	hours := actualHours(logs)
	if c.HourlyRate > 0 {
		res.LaborCost = hours * c.HourlyRate
	} else {
		res.Flags = appendFlag(res.Flags, FlagRateUnavailable)
	}

	// Never clamped: a negative gross profit is a real signal.
	res.GrossProfit = order.SalesAmount() - res.MaterialCost - res.LaborCost

	return res
}

func appendFlag(flags []string, flag string) []string {
	for _, f := range flags {
		if f == flag {
			return flags
		}
	}
	return append(flags, flag)
}
