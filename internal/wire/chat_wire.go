package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireChat(
	r chi.Router,
	chatHandler *adaptor.ChatHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// The chat widget serves guests too, so these routes only claim a user
	// identity when a valid token is presented.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(config.JWT, log))

		r.Post("/api/chat/session", chatHandler.CreateSession)
		r.Post("/api/chat/session/{sessionId}/message", chatHandler.PostMessage)
		r.Get("/api/chat/session/{sessionId}/messages", chatHandler.GetMessages)
		r.Post("/api/chat/session/{sessionId}/close", chatHandler.CloseSession)
		r.Post("/api/chat/session/{sessionId}/create-ticket", chatHandler.CreateTicket)
	})

	// Listing someone's sessions requires a verified identity
	r.With(middleware.Auth(config.JWT, log)).
		Get("/api/chat/sessions/user/{userId}", chatHandler.GetUserSessions)
}
