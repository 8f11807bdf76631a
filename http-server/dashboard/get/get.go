package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"prod-analytics/internal/service/dashboard"
	"prod-analytics/internal/storage"
)

type DashboardBuilder interface {
	BuildDashboard(ctx context.Context, from, to time.Time) (*dashboard.KPI, error)
}

func GetDashboard(log *slog.Logger, rollup DashboardBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.dashboard.GetDashboard"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		from, to, err := ParseRange(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := rollup.BuildDashboard(ctx, from, to)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidRange) {
				http.Error(w, "from is after to", http.StatusBadRequest)
				return
			}
			log.Error("failed to build dashboard", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, result)
	}
}

// ParseRange reads from/to query dates. Missing bounds default to the start
// of the current month and today, the same defaults the report export uses.
func ParseRange(r *http.Request) (time.Time, time.Time, error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from date")
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to date")
		}
	}

	return from, to, nil
}
