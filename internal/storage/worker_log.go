package storage

import "time"

// WorkerLog is an immutable ledger entry of actual labor time against an
// order. Corrections are append/delete only; there is no update path.
type WorkerLog struct {
	ID             int64     `json:"id"`
	OrderID        string    `json:"order_id"`
	Qty            int       `json:"qty"`
	ActTimePerUnit float64   `json:"act_time_per_unit"`
	Worker         string    `json:"worker"`
	Date           time.Time `json:"date"`
}

// ActHours is the total actual labor this entry covers.
func (w *WorkerLog) ActHours() float64 {
	return float64(w.Qty) * w.ActTimePerUnit
}
