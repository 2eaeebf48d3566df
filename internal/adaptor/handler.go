package adaptor

import (
	"tourism-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Package *PackageHandler
	Booking *BookingHandler
	Chat    *ChatHandler
	Support *SupportHandler
	Payment *PaymentHandler
	Info    *InfoHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Package: NewPackageHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
		Chat:    NewChatHandler(service.Chat, log),
		Support: NewSupportHandler(service.Support, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Info:    NewInfoHandler(log),
	}
}
