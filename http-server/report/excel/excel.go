package excel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	dashget "prod-analytics/http-server/dashboard/get"
	"prod-analytics/internal/storage"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, from, to time.Time) ([]byte, error)
}

func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		from, to, err := dashget.ParseRange(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Workbook generation gets a longer budget than the JSON endpoints.
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		out, err := gen.GenerateExcel(ctx, from, to)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidRange) {
				http.Error(w, "from is after to", http.StatusBadRequest)
				return
			}
			log.Error("failed to generate excel", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("kpi_report_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(out)
	}
}
