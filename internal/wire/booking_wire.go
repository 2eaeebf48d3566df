package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Post("/api/bookings", bookingHandler.Create)
		r.Get("/api/bookings/user/{userId}", bookingHandler.GetUserBookings)
	})

	// ==================== PUBLIC ROUTES ====================
	// Lookup by reference is public: the reference itself is the capability,
	// shared in confirmation emails and the chat widget.
	r.Get("/api/bookings/{bookingId}", bookingHandler.GetByReference)
}
