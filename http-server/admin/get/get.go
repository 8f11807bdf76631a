package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type ResponseRate struct {
	HourlyRate float64 `json:"hourly_rate"`
	Configured bool    `json:"configured"`
}

// GetHourlyRate exposes the configured wage rate so the admin UI can verify
// what labor costs are being priced with.
func GetHourlyRate(log *slog.Logger, hourlyRate float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ResponseRate{
			HourlyRate: hourlyRate,
			Configured: hourlyRate > 0,
		})
	}
}
