package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"prod-analytics/internal/constants"
	"prod-analytics/internal/storage"
)

const (
	TypeDueDate   = "due_date"
	TypeETA       = "eta"
	TypeReceived  = "received"
	TypeCompleted = "completed"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOverdue    = "overdue"
)

// Event is a synthesized, dated schedule marker. IDs derive from
// (entity id, type), so repeated synthesis over unchanged data yields an
// identical set. Nothing is persisted.
type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	OrderID       string `json:"order_id,omitempty"`
	ProcurementID int64  `json:"procurement_id,omitempty"`
}

type Repository interface {
	GetOrdersRange(ctx context.Context, from, to time.Time) ([]*storage.Order, error)
	GetProcurementsRange(ctx context.Context, from, to time.Time) ([]*storage.Procurement, error)
}

type Synthesizer struct {
	storage Repository
}

func NewSynthesizer(storage Repository) *Synthesizer {
	return &Synthesizer{storage: storage}
}

// Synthesize derives the flat event list for [from, to]. The caller supplies
// now so overdue decisions are reproducible in tests and consistent across
// one request.
func (s *Synthesizer) Synthesize(ctx context.Context, from, to, now time.Time) ([]Event, error) {
	const op = "service.calendar.Synthesize"

	if from.After(to) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidRange)
	}

	orders, err := s.storage.GetOrdersRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	procs, err := s.storage.GetProcurementsRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var events []Event
	for _, o := range orders {
		events = append(events, dueDateEvent(o, now))
	}
	for _, p := range procs {
		events = append(events, procurementEvents(p)...)
	}

	return events, nil
}

func dueDateEvent(o *storage.Order, now time.Time) Event {
	status := StatusPending
	switch {
	case o.Status == storage.OrderStatusCompleted:
		status = StatusCompleted
	case o.DueDate.Before(now):
		status = StatusOverdue
	}

	return Event{
		ID:      fmt.Sprintf("order:%s:%s", o.ID, TypeDueDate),
		Title:   fmt.Sprintf("%s due", o.ProductName),
		Date:    o.DueDate.Format("2006-01-02"),
		Type:    TypeDueDate,
		Status:  status,
		OrderID: o.ID,
	}
}

func procurementEvents(p *storage.Procurement) []Event {
	var events []Event

	switch p.Kind {
	case storage.KindPurchase:
		if p.ETA != nil {
			events = append(events, Event{
				ID:            fmt.Sprintf("proc:%d:%s", p.ID, TypeETA),
				Title:         fmt.Sprintf("Purchase from %s due", p.Purchase.Vendor),
				Date:          p.ETA.Format("2006-01-02"),
				Type:          TypeETA,
				Status:        procurementStatus(p.Status, constants.PurchaseDone),
				OrderID:       p.OrderID,
				ProcurementID: p.ID,
			})
		}
		if p.Purchase.ReceivedAt != nil {
			events = append(events, Event{
				ID:            fmt.Sprintf("proc:%d:%s", p.ID, TypeReceived),
				Title:         fmt.Sprintf("Received from %s", p.Purchase.Vendor),
				Date:          p.Purchase.ReceivedAt.Format("2006-01-02"),
				Type:          TypeReceived,
				Status:        StatusCompleted,
				OrderID:       p.OrderID,
				ProcurementID: p.ID,
			})
		}
	case storage.KindManufacture:
		if p.ETA != nil {
			events = append(events, Event{
				ID:            fmt.Sprintf("proc:%d:%s", p.ID, TypeETA),
				Title:         fmt.Sprintf("Manufacture step for order %s due", p.OrderID),
				Date:          p.ETA.Format("2006-01-02"),
				Type:          TypeETA,
				Status:        procurementStatus(p.Status, constants.ManufactureDone),
				OrderID:       p.OrderID,
				ProcurementID: p.ID,
			})
		}
		if p.Manufacture.CompletedAt != nil {
			events = append(events, Event{
				ID:            fmt.Sprintf("proc:%d:%s", p.ID, TypeCompleted),
				Title:         fmt.Sprintf("Manufacture step for order %s completed", p.OrderID),
				Date:          p.Manufacture.CompletedAt.Format("2006-01-02"),
				Type:          TypeCompleted,
				Status:        StatusCompleted,
				OrderID:       p.OrderID,
				ProcurementID: p.ID,
			})
		}
	}

	return events
}

// procurementStatus maps a free-form procurement status onto the event
// status domain.
func procurementStatus(status string, done map[string]bool) string {
	switch {
	case done[status]:
		return StatusCompleted
	case status == "in_progress":
		return StatusInProgress
	default:
		return StatusPending
	}
}

// SortByDate orders events date-ascending with the id as tiebreaker. The
// synthesizer itself emits in repository order; consumers that want a
// timeline opt in.
func SortByDate(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].ID < events[j].ID
	})
}
