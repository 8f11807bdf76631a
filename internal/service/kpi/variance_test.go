package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prod-analytics/internal/storage"
)

func TestCalcVariance_AboveStandard(t *testing.T) {
	order := &storage.Order{ID: "ORD-1", Qty: 100, StdTimePerUnit: 0.5}
	logs := []*storage.WorkerLog{
		{OrderID: "ORD-1", Qty: 50, ActTimePerUnit: 0.6},
		{OrderID: "ORD-1", Qty: 50, ActTimePerUnit: 0.6},
	}

	res := CalcVariance(order, logs)

	assert.Equal(t, 0.6, res.ActTimePerUnit)
	assert.Equal(t, 20.00, res.VariancePct)
	assert.Empty(t, res.Flags)
}

func TestCalcVariance_ActualEqualsStandard(t *testing.T) {
	order := &storage.Order{ID: "ORD-2", Qty: 10, StdTimePerUnit: 2}
	logs := []*storage.WorkerLog{
		{OrderID: "ORD-2", Qty: 10, ActTimePerUnit: 2},
	}

	res := CalcVariance(order, logs)

	assert.Equal(t, 0.0, res.VariancePct)
	assert.Empty(t, res.Flags)
}

func TestCalcVariance_ZeroStandardGuarded(t *testing.T) {
	order := &storage.Order{ID: "ORD-3", Qty: 10, StdTimePerUnit: 0}
	logs := []*storage.WorkerLog{
		{OrderID: "ORD-3", Qty: 10, ActTimePerUnit: 1},
	}

	res := CalcVariance(order, logs)

	assert.Equal(t, 1.0, res.ActTimePerUnit)
	assert.Equal(t, 0.0, res.VariancePct)
	assert.Contains(t, res.Flags, FlagNoStandard)
}

func TestCalcVariance_ZeroQuantityGuarded(t *testing.T) {
	order := &storage.Order{ID: "ORD-4", Qty: 0, StdTimePerUnit: 0.5}
	logs := []*storage.WorkerLog{
		{OrderID: "ORD-4", Qty: 3, ActTimePerUnit: 1},
	}

	res := CalcVariance(order, logs)

	assert.Equal(t, 0.0, res.ActTimePerUnit)
	assert.Contains(t, res.Flags, FlagNoQuantity)
	// Guarded value, not NaN or Inf.
	assert.Equal(t, -100.0, res.VariancePct)
}
