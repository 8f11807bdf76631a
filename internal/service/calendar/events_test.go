package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prod-analytics/internal/storage"
)

type fixtureRepo struct {
	orders []*storage.Order
	procs  []*storage.Procurement
}

func (r *fixtureRepo) GetOrdersRange(_ context.Context, from, to time.Time) ([]*storage.Order, error) {
	return r.orders, nil
}

func (r *fixtureRepo) GetProcurementsRange(_ context.Context, from, to time.Time) ([]*storage.Procurement, error) {
	return r.procs, nil
}

func f64(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrDate(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func testRepo() *fixtureRepo {
	return &fixtureRepo{
		orders: []*storage.Order{
			{
				ID: "ORD-A", ProductName: "Frame assembly", Qty: 100,
				OrderDate: date(2025, 5, 5), DueDate: date(2025, 6, 1),
				Status: storage.OrderStatusInProgress,
			},
			{
				ID: "ORD-B", ProductName: "Hinge set", Qty: 10,
				OrderDate: date(2025, 5, 10), DueDate: date(2025, 6, 10),
				Status: storage.OrderStatusCompleted,
			},
		},
		procs: []*storage.Procurement{
			{
				ID: 1, OrderID: "ORD-A", Kind: storage.KindPurchase, Qty: 110,
				ETA: ptrDate(2025, 5, 20), Status: "received",
				Purchase: &storage.PurchaseDetails{
					Vendor:     "Alu Nord",
					UnitPrice:  f64(750),
					ReceivedAt: ptrDate(2025, 5, 18),
				},
			},
			{
				ID: 2, OrderID: "ORD-B", Kind: storage.KindManufacture, Qty: 10,
				ETA: ptrDate(2025, 5, 25), Status: "completed",
				Manufacture: &storage.ManufactureDetails{
					StdTimePerUnit: 1, Worker: "Ivanov",
					CompletedAt: ptrDate(2025, 5, 24),
				},
			},
		},
	}
}

func eventByID(t *testing.T, events []Event, id string) Event {
	t.Helper()
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("event %s not found", id)
	return Event{}
}

func TestSynthesize_OverdueOrder(t *testing.T) {
	synth := NewSynthesizer(testRepo())

	// Evaluated two weeks past the first due date.
	events, err := synth.Synthesize(context.Background(), date(2025, 5, 1), date(2025, 6, 30), date(2025, 6, 15))
	require.NoError(t, err)

	due := eventByID(t, events, "order:ORD-A:due_date")
	assert.Equal(t, TypeDueDate, due.Type)
	assert.Equal(t, StatusOverdue, due.Status)
	assert.Equal(t, "2025-06-01", due.Date)
}

func TestSynthesize_CompletedOrderNeverOverdue(t *testing.T) {
	synth := NewSynthesizer(testRepo())

	events, err := synth.Synthesize(context.Background(), date(2025, 5, 1), date(2025, 6, 30), date(2025, 7, 1))
	require.NoError(t, err)

	due := eventByID(t, events, "order:ORD-B:due_date")
	assert.Equal(t, StatusCompleted, due.Status)
}

func TestSynthesize_ProcurementEvents(t *testing.T) {
	synth := NewSynthesizer(testRepo())

	events, err := synth.Synthesize(context.Background(), date(2025, 5, 1), date(2025, 6, 30), date(2025, 5, 15))
	require.NoError(t, err)

	eta := eventByID(t, events, "proc:1:eta")
	assert.Equal(t, StatusCompleted, eta.Status)
	assert.Equal(t, "ORD-A", eta.OrderID)
	assert.Equal(t, int64(1), eta.ProcurementID)

	received := eventByID(t, events, "proc:1:received")
	assert.Equal(t, "2025-05-18", received.Date)
	assert.Equal(t, StatusCompleted, received.Status)

	mfgETA := eventByID(t, events, "proc:2:eta")
	assert.Equal(t, TypeETA, mfgETA.Type)

	completed := eventByID(t, events, "proc:2:completed")
	assert.Equal(t, "2025-05-24", completed.Date)

	// One due date per order plus the four procurement markers.
	assert.Len(t, events, 6)
}

// A purchase with no target date has nothing to place on the calendar: no
// eta event is emitted, but a receipt still shows up.
func TestSynthesize_PurchaseWithoutETA(t *testing.T) {
	repo := testRepo()
	repo.procs = []*storage.Procurement{
		{
			ID: 7, OrderID: "ORD-A", Kind: storage.KindPurchase, Qty: 5,
			Status: "received",
			Purchase: &storage.PurchaseDetails{
				Vendor:     "Glass+",
				ReceivedAt: ptrDate(2025, 5, 19),
			},
		},
	}
	synth := NewSynthesizer(repo)

	events, err := synth.Synthesize(context.Background(), date(2025, 5, 1), date(2025, 6, 30), date(2025, 5, 20))
	require.NoError(t, err)

	for _, e := range events {
		assert.NotEqual(t, "proc:7:eta", e.ID)
	}

	received := eventByID(t, events, "proc:7:received")
	assert.Equal(t, "2025-05-19", received.Date)
}

func TestSynthesize_Deterministic(t *testing.T) {
	synth := NewSynthesizer(testRepo())
	now := date(2025, 6, 15)

	first, err := synth.Synthesize(context.Background(), date(2025, 5, 1), date(2025, 6, 30), now)
	require.NoError(t, err)
	second, err := synth.Synthesize(context.Background(), date(2025, 5, 1), date(2025, 6, 30), now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSynthesize_InvalidRange(t *testing.T) {
	synth := NewSynthesizer(testRepo())

	_, err := synth.Synthesize(context.Background(), date(2025, 6, 1), date(2025, 5, 1), date(2025, 6, 15))
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrInvalidRange))
}

func TestSortByDate(t *testing.T) {
	events := []Event{
		{ID: "b", Date: "2025-06-10"},
		{ID: "a", Date: "2025-06-01"},
		{ID: "c", Date: "2025-06-01"},
	}

	SortByDate(events)

	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "c", events[1].ID)
	assert.Equal(t, "b", events[2].ID)
}
