package kpi

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"prod-analytics/internal/storage"
)

type Repository interface {
	GetOrderByID(ctx context.Context, orderID string) (*storage.Order, error)
	GetProcurementsByOrder(ctx context.Context, orderID string) ([]*storage.Procurement, error)
	GetWorkerLogsByOrder(ctx context.Context, orderID string) ([]*storage.WorkerLog, error)
}

// Builder assembles the per-order KPI record from one repository snapshot.
type Builder struct {
	storage Repository
	costs   CostAggregator
}

func NewBuilder(storage Repository, hourlyRate float64) *Builder {
	return &Builder{
		storage: storage,
		costs:   CostAggregator{HourlyRate: hourlyRate},
	}
}

// BuildOrderKPI fetches the order and both child sets in parallel, then runs
// cost and variance against the same snapshot. An unknown order id is the
// only failure mode; all arithmetic is guarded.
func (b *Builder) BuildOrderKPI(ctx context.Context, orderID string) (*OrderKPI, error) {
	const op = "service.kpi.BuildOrderKPI"

	var (
		order *storage.Order
		procs []*storage.Procurement
		logs  []*storage.WorkerLog
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = b.storage.GetOrderByID(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("order: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		procs, err = b.storage.GetProcurementsByOrder(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("procurements: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = b.storage.GetWorkerLogsByOrder(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("worker logs: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b.FromRecords(order, procs, logs), nil
}

// FromRecords assembles a KPI from already-fetched records. The dashboard
// rollup and the report exports use this to cost many orders off one range
// query instead of refetching per id.
func (b *Builder) FromRecords(order *storage.Order, procs []*storage.Procurement, logs []*storage.WorkerLog) *OrderKPI {
	costs := b.costs.Aggregate(order, procs, logs)
	variance := CalcVariance(order, logs)

	k := &OrderKPI{
		OrderID:        order.ID,
		ProductName:    order.ProductName,
		Qty:            order.Qty,
		DueDate:        order.DueDate.Format("2006-01-02"),
		Sales:          Round2(order.SalesAmount()),
		StdTimePerUnit: order.StdTimePerUnit,
		Status:         order.Status,

		MaterialCost:   Round2(costs.MaterialCost),
		LaborCost:      Round2(costs.LaborCost),
		GrossProfit:    Round2(costs.GrossProfit),
		ActTimePerUnit: Round2(variance.ActTimePerUnit),
		VariancePct:    variance.VariancePct,

		StdHours:    Round2(order.StdHours()),
		ActualHours: Round2(actualHours(logs)),
	}

	k.Flags = append(k.Flags, costs.Flags...)
	for _, f := range variance.Flags {
		k.Flags = appendFlag(k.Flags, f)
	}

	return k
}
