package export

import (
	"context"
	"fmt"
	"time"

	"prod-analytics/internal/service/kpi"
)

type KPISource interface {
	OrderKPIs(ctx context.Context, from, to time.Time) ([]*kpi.OrderKPI, error)
}

// Service renders the per-order KPI set of a date range as a flat report,
// either CSV or xlsx. Both formats share the same column contract.
type Service struct {
	source KPISource
	rate   float64
}

func NewService(source KPISource, hourlyRate float64) *Service {
	return &Service{source: source, rate: hourlyRate}
}

func (s *Service) GenerateCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	const op = "service.export.GenerateCSV"

	kpis, err := s.source.OrderKPIs(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := make([][]string, 0, len(kpis))
	for _, k := range kpis {
		rows = append(rows, CSVRow(k, s.rate))
	}

	out, err := writeCSV(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
