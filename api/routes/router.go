package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rahulmenon/labtrack-backend/api/controllers"
	"github.com/rahulmenon/labtrack-backend/api/middleware"
	"github.com/rahulmenon/labtrack-backend/api/responses"
	"github.com/rahulmenon/labtrack-backend/internal/auth"
	"github.com/rahulmenon/labtrack-backend/internal/equipment"
	"github.com/rahulmenon/labtrack-backend/internal/scanlogs"
	"github.com/rahulmenon/labtrack-backend/pkg/config"
	"github.com/rahulmenon/labtrack-backend/pkg/db"
	"github.com/rahulmenon/labtrack-backend/pkg/logger"
	"github.com/rahulmenon/labtrack-backend/pkg/metrics"
	"github.com/rahulmenon/labtrack-backend/pkg/redis"
)

// RouterParams groups everything the HTTP surface needs.
type RouterParams struct {
	Config           *config.Config
	Logger           *logger.Logger
	DB               db.Pinger
	Redis            redis.Pinger
	Metrics          *metrics.HTTPMetrics
	MetricsGatherer  prometheus.Gatherer
	EquipmentService equipment.Service
	ScanLogService   scanlogs.Service
	AuthService      auth.Service
}

// NewRouter wires middleware and routes. Inventory and scan endpoints are
// public; only the console login itself checks a credential.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if params.Metrics != nil {
		r.Use(middleware.Metrics(params.Metrics))
	}
	r.Use(middleware.CORS())

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteErrorMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteErrorMessage(w, http.StatusNotFound, "route not found")
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.DB, params.Redis, logg))
	})

	if params.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/equipment", func(r chi.Router) {
		r.Options("/", preflightOK)
		r.Get("/", controllers.EquipmentList(params.EquipmentService, logg))
		r.Post("/", controllers.EquipmentCreate(params.EquipmentService, logg))
		r.Put("/", controllers.EquipmentUpdate(params.EquipmentService, logg))
		r.Delete("/", controllers.EquipmentDelete(params.EquipmentService, logg))
	})

	r.Route("/api/v1/scan-logs", func(r chi.Router) {
		r.Options("/", preflightOK)
		r.Get("/", controllers.ScanLogList(params.ScanLogService, logg))
		r.Post("/", controllers.ScanLogCreate(params.ScanLogService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(params.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(params.AuthService, logg))
	})

	return r
}

// preflightOK answers OPTIONS probes that skip the preflight headers. The
// CORS middleware only intercepts requests carrying
// Access-Control-Request-Method, so bare OPTIONS falls through to the route
// and still expects an empty 200.
func preflightOK(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
