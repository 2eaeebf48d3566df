package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The frontend historically used both signup and register
	r.Post("/api/auth/signup", authHandler.Register)
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Get("/api/auth/check/{email}", authHandler.CheckEmail)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(config.JWT, log)).Get("/api/users/{userId}", authHandler.GetProfile)
}
