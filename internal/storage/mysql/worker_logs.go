package mysql

import (
	"context"
	"fmt"

	"prod-analytics/internal/storage"
)

func (s *Storage) GetWorkerLogsByOrder(ctx context.Context, orderID string) ([]*storage.WorkerLog, error) {
	const op = "storage.mysql.GetWorkerLogsByOrder"

	stmt := `
		SELECT id, order_id, qty, act_time_per_unit, worker, date
		FROM worker_logs
		WHERE order_id = ?
		ORDER BY date, id`

	rows, err := s.db.QueryContext(ctx, stmt, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logs []*storage.WorkerLog
	for rows.Next() {
		var l storage.WorkerLog

		err := rows.Scan(&l.ID, &l.OrderID, &l.Qty, &l.ActTimePerUnit, &l.Worker, &l.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		logs = append(logs, &l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return logs, nil
}
