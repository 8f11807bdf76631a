package storage

import "time"

const (
	KindPurchase    = "purchase"
	KindManufacture = "manufacture"
)

// Procurement is a tagged variant: exactly one of Purchase or Manufacture is
// non-nil and it always matches Kind. Purchase fields must never be read off
// a manufacture record and vice versa.
type Procurement struct {
	ID      int64      `json:"id"`
	OrderID string     `json:"order_id"`
	Kind    string     `json:"kind"`
	Qty     int        `json:"qty"`
	ETA     *time.Time `json:"eta,omitempty"`
	Status  string     `json:"status"`

	Purchase    *PurchaseDetails    `json:"purchase,omitempty"`
	Manufacture *ManufactureDetails `json:"manufacture,omitempty"`
}

type PurchaseDetails struct {
	Vendor     string     `json:"vendor"`
	UnitPrice  *float64   `json:"unit_price,omitempty"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

// ManufactureDetails carries planning figures for an in-house step.
// ActTimePerUnit here is an estimate echo; actual labor time lives in
// WorkerLog and is never summed from this record.
type ManufactureDetails struct {
	StdTimePerUnit float64    `json:"std_time_per_unit"`
	ActTimePerUnit float64    `json:"act_time_per_unit"`
	Worker         string     `json:"worker"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
