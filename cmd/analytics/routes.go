package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "prod-analytics/http-server/admin/get"
	getcalendar "prod-analytics/http-server/calendar/get"
	getdashboard "prod-analytics/http-server/dashboard/get"
	getkpi "prod-analytics/http-server/order-kpi/get"
	reportcsv "prod-analytics/http-server/report/csv"
	reportexcel "prod-analytics/http-server/report/excel"
	"prod-analytics/internal/config"
	"prod-analytics/internal/middleware/auth"
	"prod-analytics/internal/service/calendar"
	"prod-analytics/internal/service/dashboard"
	"prod-analytics/internal/service/export"
	"prod-analytics/internal/service/kpi"
)

func routes(cfg config.Config, log *slog.Logger, builder *kpi.Builder, rollup *dashboard.Rollup, synth *calendar.Synthesizer, reports *export.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Per-order KPI, the unit both the dashboard and the exports consume.
	router.Get("/api/orders/{orderID}/kpi", getkpi.GetOrderKPI(log, builder))

	// Dashboard rollup over a date range.
	router.Get("/api/dashboard", getdashboard.GetDashboard(log, rollup))

	// Synthesized schedule events.
	router.Get("/api/calendar", getcalendar.GetCalendar(log, synth))

	// Report exports.
	router.Get("/api/report/csv", reportcsv.GenerateReportCSV(log, reports))
	router.Get("/api/report/excel", reportexcel.GenerateReportExcel(log, reports))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Get("/rate", getadmin.GetHourlyRate(log, cfg.HourlyRate))

	router.Mount("/api/admin", adminRouter)

	return router
}
