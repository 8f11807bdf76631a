package kpi

import (
	"prod-analytics/internal/storage"
)

// VarianceResult is actual time per unit plus its deviation from standard.
type VarianceResult struct {
	ActTimePerUnit float64
	VariancePct    float64
	Flags          []string
}

// CalcVariance derives actual time per unit from the worker-log ledger and
// compares it against the order's standard. Both divisions are guarded: a
// zero quantity or zero standard yields 0 with a flag, never NaN or Inf.
func CalcVariance(order *storage.Order, logs []*storage.WorkerLog) VarianceResult {
	var res VarianceResult

	if order.Qty == 0 {
		res.Flags = appendFlag(res.Flags, FlagNoQuantity)
	} else {
		res.ActTimePerUnit = actualHours(logs) / float64(order.Qty)
	}

	if order.StdTimePerUnit == 0 {
		// Guard, not a business claim that variance is zero.
		res.Flags = appendFlag(res.Flags, FlagNoStandard)
		return res
	}

	res.VariancePct = Round2((res.ActTimePerUnit - order.StdTimePerUnit) / order.StdTimePerUnit * 100)

	return res
}
