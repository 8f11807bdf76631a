package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prod-analytics/internal/storage"
)

const procurementColumns = `p.id, p.order_id, p.kind, p.qty, p.eta, p.status,
		p.vendor, p.unit_price, p.received_at,
		p.std_time_per_unit, p.act_time_per_unit, p.worker, p.completed_at`

func (s *Storage) GetProcurementsByOrder(ctx context.Context, orderID string) ([]*storage.Procurement, error) {
	const op = "storage.mysql.GetProcurementsByOrder"

	stmt := `
		SELECT ` + procurementColumns + `
		FROM procurements p
		WHERE p.order_id = ?
		ORDER BY p.id`

	return s.queryProcurements(ctx, op, stmt, orderID)
}

// GetProcurementsRange returns the procurements of every order whose order
// date lies in [from, to] inclusive, so completion rates cover the same
// order set as the dashboard totals.
func (s *Storage) GetProcurementsRange(ctx context.Context, from, to time.Time) ([]*storage.Procurement, error) {
	const op = "storage.mysql.GetProcurementsRange"

	stmt := `
		SELECT ` + procurementColumns + `
		FROM procurements p
		JOIN orders o ON o.id = p.order_id
		WHERE o.order_date >= ? AND o.order_date < ?
		ORDER BY p.id`

	return s.queryProcurements(ctx, op, stmt, from, to.AddDate(0, 0, 1))
}

func (s *Storage) queryProcurements(ctx context.Context, op, stmt string, args ...any) ([]*storage.Procurement, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var procs []*storage.Procurement
	for rows.Next() {
		proc, err := scanProcurement(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		procs = append(procs, proc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return procs, nil
}

// scanProcurement builds the tagged variant: only the payload matching the
// kind column is populated, so purchase fields can never leak onto a
// manufacture record.
func scanProcurement(row rowScanner) (*storage.Procurement, error) {
	var (
		proc        storage.Procurement
		eta         sql.NullTime
		vendor      sql.NullString
		unitPrice   sql.NullFloat64
		receivedAt  sql.NullTime
		stdTime     sql.NullFloat64
		actTime     sql.NullFloat64
		worker      sql.NullString
		completedAt sql.NullTime
	)

	err := row.Scan(
		&proc.ID,
		&proc.OrderID,
		&proc.Kind,
		&proc.Qty,
		&eta,
		&proc.Status,
		&vendor,
		&unitPrice,
		&receivedAt,
		&stdTime,
		&actTime,
		&worker,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if eta.Valid {
		proc.ETA = &eta.Time
	}

	switch proc.Kind {
	case storage.KindPurchase:
		details := &storage.PurchaseDetails{Vendor: vendor.String}
		if unitPrice.Valid {
			details.UnitPrice = &unitPrice.Float64
		}
		if receivedAt.Valid {
			details.ReceivedAt = &receivedAt.Time
		}
		proc.Purchase = details
	case storage.KindManufacture:
		details := &storage.ManufactureDetails{
			StdTimePerUnit: stdTime.Float64,
			ActTimePerUnit: actTime.Float64,
			Worker:         worker.String,
		}
		if completedAt.Valid {
			details.CompletedAt = &completedAt.Time
		}
		proc.Manufacture = details
	default:
		return nil, fmt.Errorf("unknown procurement kind %q", proc.Kind)
	}

	return &proc, nil
}
