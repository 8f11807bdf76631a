package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"prod-analytics/internal/service/calendar"
	"prod-analytics/internal/storage"
)

type EventSynthesizer interface {
	Synthesize(ctx context.Context, from, to, now time.Time) ([]calendar.Event, error)
}

type ResponseEvents struct {
	Events []calendar.Event `json:"events"`
}

func GetCalendar(log *slog.Logger, synth EventSynthesizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calendar.GetCalendar"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		now := time.Now()

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")

		// Default window: the current month.
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)

		var err error
		if fromStr != "" {
			from, err = time.Parse("2006-01-02", fromStr)
			if err != nil {
				http.Error(w, "invalid from date", http.StatusBadRequest)
				return
			}
		}
		if toStr != "" {
			to, err = time.Parse("2006-01-02", toStr)
			if err != nil {
				http.Error(w, "invalid to date", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		events, err := synth.Synthesize(ctx, from, to, now)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidRange) {
				http.Error(w, "from is after to", http.StatusBadRequest)
				return
			}
			log.Error("failed to synthesize calendar", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("sorted") == "1" {
			calendar.SortByDate(events)
		}

		render.JSON(w, r, ResponseEvents{Events: events})
	}
}
