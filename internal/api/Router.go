package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(h *APIHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats/summary", h.Summary)
		r.Get("/devices", h.Devices)
		r.Get("/devices/{id}", h.DeviceDetail)
		r.Get("/reports/usage/{period}", h.UsageReport)
		r.Post("/alerts/{id}/ack", h.AckAlert)
		r.Post("/rollup/daily", h.RollupDaily)
		r.Post("/rollup/monthly", h.RollupMonthly)
		r.Get("/network/ping/{host}", h.Ping)
		r.Get("/health", h.Health)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
