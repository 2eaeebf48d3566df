package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Payment conversations start from the chat widget, guests included
	r.With(middleware.OptionalAuth(config.JWT, log)).
		Post("/api/payments/conversation", paymentHandler.CreateConversation)
	r.With(middleware.Auth(config.JWT, log)).
		Get("/api/payments/user/{userId}", paymentHandler.GetUserConversations)
}
