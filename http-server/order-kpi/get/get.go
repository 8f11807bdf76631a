package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"prod-analytics/internal/service/kpi"
	"prod-analytics/internal/storage"
)

type KPIBuilder interface {
	BuildOrderKPI(ctx context.Context, orderID string) (*kpi.OrderKPI, error)
}

func GetOrderKPI(log *slog.Logger, builder KPIBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.order-kpi.GetOrderKPI"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		orderID := chi.URLParam(r, "orderID")
		if orderID == "" {
			http.Error(w, "missing order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := builder.BuildOrderKPI(ctx, orderID)
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				http.Error(w, "order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to build order kpi", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, result)
	}
}
