package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSupport(
	r chi.Router,
	supportHandler *adaptor.SupportHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Ticket creation accepts guests from the chat widget; listing does not
	r.With(middleware.OptionalAuth(config.JWT, log)).
		Post("/api/support/ticket", supportHandler.CreateTicket)
	r.With(middleware.Auth(config.JWT, log)).
		Get("/api/support/user/{userId}", supportHandler.GetUserTickets)

	// Agent queue across all users
	r.With(middleware.Auth(config.JWT, log), middleware.Admin(log)).
		Get("/api/support/tickets", supportHandler.ListTickets)
}
