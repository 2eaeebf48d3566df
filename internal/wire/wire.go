package wire

import (
	"net/http"

	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, deps usecase.Deps) *App {
	service := usecase.NewService(repo, config, logger, deps)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger, deps)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	deps usecase.Deps,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	// Feature routes
	wireAuth(r, handler.Auth, config, logger)
	wirePackage(r, handler.Package)
	wireBooking(r, handler.Booking, config, logger)
	wireChat(r, handler.Chat, config, logger)
	wireSupport(r, handler.Support, config, logger)
	wirePayment(r, handler.Payment, config, logger)

	// API index
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseSuccess(w, "Jharkhand Tourism API", map[string]any{
			"name":      config.App.Name,
			"version":   apiVersion,
			"endpoints": endpointIndex(),
		})
	})

	// Health check: reports process liveness and database connectivity
	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		dbStatus := "connected"
		status := "ok"
		if err := repo.Ping(req.Context()); err != nil {
			logger.Warn("Health check database ping failed", zap.Error(err))
			dbStatus = "disconnected"
			status = "degraded"
		}

		utils.ResponseSuccess(w, "Health check", map[string]any{
			"status":   status,
			"database": dbStatus,
			"services": map[string]string{
				"api":  "running",
				"chat": "running",
			},
		})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Static tourism info
	r.Get("/api/tourism/info", handler.Info.TourismInfo)

	// Structured 404 so clients see the available surface
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseJSON(w, http.StatusNotFound, false,
			"Endpoint not found: "+req.Method+" "+req.URL.Path,
			nil, endpointIndex())
	})

	return r
}

func endpointIndex() map[string][]string {
	return map[string][]string{
		"auth": {
			"POST /api/auth/signup",
			"POST /api/auth/register",
			"POST /api/auth/login",
			"GET /api/auth/check/{email}",
		},
		"users":    {"GET /api/users/{userId}"},
		"packages": {"GET /api/packages", "GET /api/packages/featured", "GET /api/packages/{id}"},
		"bookings": {
			"POST /api/bookings",
			"GET /api/bookings/user/{userId}",
			"GET /api/bookings/{bookingId}",
		},
		"chat": {
			"POST /api/chat/session",
			"POST /api/chat/session/{sessionId}/message",
			"GET /api/chat/session/{sessionId}/messages",
			"GET /api/chat/sessions/user/{userId}",
			"POST /api/chat/session/{sessionId}/close",
			"POST /api/chat/session/{sessionId}/create-ticket",
		},
		"support": {
			"POST /api/support/ticket",
			"GET /api/support/user/{userId}",
			"GET /api/support/tickets",
		},
		"payments": {"POST /api/payments/conversation", "GET /api/payments/user/{userId}"},
		"info":     {"GET /api/tourism/info", "GET /api/health"},
	}
}
