package storage

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
)

type Order struct {
	ID              string     `json:"id"`
	ProductName     string     `json:"product_name"`
	Qty             int        `json:"qty"`
	OrderDate       time.Time  `json:"order_date"`
	DueDate         time.Time  `json:"due_date"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	Sales           float64    `json:"sales"`
	EstimatedAmount float64    `json:"estimated_amount"`
	EstimatedCost   float64    `json:"estimated_cost"`
	StdTimePerUnit  float64    `json:"std_time_per_unit"`
	Status          string     `json:"status"`
}

// SalesAmount falls back to the estimate when no sales figure was entered.
func (o *Order) SalesAmount() float64 {
	if o.Sales == 0 && o.EstimatedAmount > 0 {
		return o.EstimatedAmount
	}
	return o.Sales
}

// StdHours is the planned total labor for the order.
func (o *Order) StdHours() float64 {
	return float64(o.Qty) * o.StdTimePerUnit
}
