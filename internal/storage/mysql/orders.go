package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"prod-analytics/internal/storage"
)

const orderColumns = `id, product_name, qty, order_date, due_date, start_date,
		sales, estimated_amount, estimated_cost, std_time_per_unit, status`

func (s *Storage) GetOrderByID(ctx context.Context, orderID string) (*storage.Order, error) {
	const op = "storage.mysql.GetOrderByID"

	stmt := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = ?`

	row := s.db.QueryRowContext(ctx, stmt, orderID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %s: %w", op, orderID, storage.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

// GetOrdersRange returns orders whose order date lies in [from, to]
// inclusive. Dates are calendar days; the upper bound is made exclusive by
// shifting it one day.
func (s *Storage) GetOrdersRange(ctx context.Context, from, to time.Time) ([]*storage.Order, error) {
	const op = "storage.mysql.GetOrdersRange"

	stmt := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_date >= ? AND order_date < ?
		ORDER BY order_date, id`

	rows, err := s.db.QueryContext(ctx, stmt, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*storage.Order, error) {
	var order storage.Order
	var startDate sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.ProductName,
		&order.Qty,
		&order.OrderDate,
		&order.DueDate,
		&startDate,
		&order.Sales,
		&order.EstimatedAmount,
		&order.EstimatedCost,
		&order.StdTimePerUnit,
		&order.Status,
	)
	if err != nil {
		return nil, err
	}

	if startDate.Valid {
		order.StartDate = &startDate.Time
	}

	return &order, nil
}
