package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Abhiraj235/GearGo/internal/middleware"
)

// Routes wires every endpoint onto a chi router. Operation names follow the
// storefront's calling convention: one route per operation under /api.
func (h *Handler) Routes(rl *middleware.RateLimiter, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics)
	r.Use(middleware.Identity(h.secret))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		// credential endpoints are the brute-force target, so only they
		// sit behind the limiter
		r.With(middleware.RateLimit(rl)).Post("/register", h.Register)
		r.With(middleware.RateLimit(rl)).Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.Post("/logout", h.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/getAdmin", h.GetAdmin)
		r.Get("/getAdminTestDrives", h.GetAdminTestDrives)
		r.Post("/updateTestDriveStatus", h.UpdateTestDriveStatus)
		r.Get("/getDashboardData", h.GetDashboardData)

		r.Get("/getCars", h.GetCars)
		r.Get("/getCarById", h.GetCarByID)
		r.Get("/getCarFilters", h.GetCarFilters)

		r.Post("/toggleSavedCar", h.ToggleSavedCar)
		r.Get("/getSavedCars", h.GetSavedCars)
	})

	return r
}
