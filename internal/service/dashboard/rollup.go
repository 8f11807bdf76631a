package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"prod-analytics/internal/constants"
	"prod-analytics/internal/service/kpi"
	"prod-analytics/internal/storage"
)

const FlagEmptySet = "empty_set"

// maxFetchConcurrency bounds the per-order child fetch fan-out so a wide
// date range does not open one connection per order.
const maxFetchConcurrency = 8

type Repository interface {
	kpi.Repository
	GetOrdersRange(ctx context.Context, from, to time.Time) ([]*storage.Order, error)
	GetProcurementsRange(ctx context.Context, from, to time.Time) ([]*storage.Procurement, error)
}

// KPI is the dashboard-wide rollup over a date-filtered order set.
// Completion rates are fractions in [0,1]; nil means undefined because no
// procurement of that kind fell in range.
type KPI struct {
	TotalSales       float64 `json:"total_sales"`
	TotalGrossProfit float64 `json:"total_gross_profit"`
	TotalStdHours    float64 `json:"total_std_hours"`
	TotalActualHours float64 `json:"total_actual_hours"`
	AvgVariancePct   float64 `json:"avg_variance_pct"`

	PurchaseCompletionRate    *float64 `json:"purchase_completion_rate,omitempty"`
	ManufactureCompletionRate *float64 `json:"manufacture_completion_rate,omitempty"`

	OrderCount int      `json:"order_count"`
	Flags      []string `json:"flags,omitempty"`
}

type Rollup struct {
	storage Repository
	builder *kpi.Builder
}

func NewRollup(storage Repository, hourlyRate float64) *Rollup {
	return &Rollup{
		storage: storage,
		builder: kpi.NewBuilder(storage, hourlyRate),
	}
}

// OrderKPIs builds one KPI per order whose order date falls in [from, to]
// inclusive. The per-order child fetches run on a bounded errgroup; results
// keep the repository ordering.
func (r *Rollup) OrderKPIs(ctx context.Context, from, to time.Time) ([]*kpi.OrderKPI, error) {
	const op = "service.dashboard.OrderKPIs"

	if from.After(to) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidRange)
	}

	orders, err := r.storage.GetOrdersRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	kpis := make([]*kpi.OrderKPI, len(orders))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxFetchConcurrency)
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			procs, err := r.storage.GetProcurementsByOrder(gCtx, order.ID)
			if err != nil {
				return fmt.Errorf("procurements %s: %w", order.ID, err)
			}
			logs, err := r.storage.GetWorkerLogsByOrder(gCtx, order.ID)
			if err != nil {
				return fmt.Errorf("worker logs %s: %w", order.ID, err)
			}
			kpis[i] = r.builder.FromRecords(order, procs, logs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return kpis, nil
}

// BuildDashboard reduces the per-order KPIs of [from, to] into totals plus
// the completion rates of the procurements in the same range.
func (r *Rollup) BuildDashboard(ctx context.Context, from, to time.Time) (*KPI, error) {
	const op = "service.dashboard.BuildDashboard"

	if from.After(to) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidRange)
	}

	kpis, err := r.OrderKPIs(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	procs, err := r.storage.GetProcurementsRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &KPI{OrderCount: len(kpis)}

	// Weighted by standard hours so small orders do not dominate the signal.
	// Zero-weight orders are excluded from the mean, not counted as zero.
	var weightedVariance, totalWeight float64
	for _, k := range kpis {
		res.TotalSales += k.Sales
		res.TotalGrossProfit += k.GrossProfit
		res.TotalStdHours += k.StdHours
		res.TotalActualHours += k.ActualHours

		if k.StdHours > 0 {
			weightedVariance += k.VariancePct * k.StdHours
			totalWeight += k.StdHours
		}
	}

	res.TotalSales = kpi.Round2(res.TotalSales)
	res.TotalGrossProfit = kpi.Round2(res.TotalGrossProfit)
	res.TotalStdHours = kpi.Round2(res.TotalStdHours)
	res.TotalActualHours = kpi.Round2(res.TotalActualHours)

	if totalWeight > 0 {
		res.AvgVariancePct = kpi.Round2(weightedVariance / totalWeight)
	}
	if len(kpis) == 0 {
		res.Flags = append(res.Flags, FlagEmptySet)
	}

	res.PurchaseCompletionRate = completionRate(procs, storage.KindPurchase, constants.PurchaseDone)
	res.ManufactureCompletionRate = completionRate(procs, storage.KindManufacture, constants.ManufactureDone)

	return res, nil
}

// completionRate returns nil when no procurement of the kind is in range;
// an undefined rate is not the same signal as 0%.
func completionRate(procs []*storage.Procurement, kind string, done map[string]bool) *float64 {
	var total, completed int
	for _, p := range procs {
		if p.Kind != kind {
			continue
		}
		total++
		if done[p.Status] {
			completed++
		}
	}
	if total == 0 {
		return nil
	}
	rate := float64(completed) / float64(total)
	return &rate
}
