package repository

import (
	"context"

	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User                UserRepository
	Package             PackageRepository
	Booking             BookingRepository
	ChatSession         ChatSessionRepository
	ChatMessage         ChatMessageRepository
	SupportTicket       SupportTicketRepository
	PaymentConversation PaymentConversationRepository

	db database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:                NewUserRepository(db, log),
		Package:             NewPackageRepository(db, log),
		Booking:             NewBookingRepository(db, log),
		ChatSession:         NewChatSessionRepository(db, log),
		ChatMessage:         NewChatMessageRepository(db, log),
		SupportTicket:       NewSupportTicketRepository(db, log),
		PaymentConversation: NewPaymentConversationRepository(db, log),
		db:                  db,
	}
}

// Ping reports connectivity of the underlying pool, used by the health endpoint
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
