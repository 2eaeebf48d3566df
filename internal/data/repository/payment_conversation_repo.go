package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentConversationRepository interface {
	Create(ctx context.Context, conversation *entity.PaymentConversation) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentConversation, error)
}

type paymentConversationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentConversationRepository(db database.PgxIface, log *zap.Logger) PaymentConversationRepository {
	return &paymentConversationRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_conversation")),
	}
}

func (pr *paymentConversationRepository) Create(ctx context.Context, conversation *entity.PaymentConversation) error {
	query := `
		INSERT INTO payment_conversations (
			id, conversation_id, user_id, booking_id, payment_reference,
			conversation_type, amount_discussed, currency, payment_method,
			transaction_id, status, resolution_details, conversation_data,
			resolved_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	conversationData, err := marshalBlob(conversation.ConversationData)
	if err != nil {
		return err
	}

	_, err = pr.db.Exec(ctx, query,
		conversation.ID,
		conversation.ConversationID,
		conversation.UserID,
		conversation.BookingID,
		conversation.PaymentReference,
		conversation.ConversationType,
		conversation.AmountDiscussed,
		conversation.Currency,
		conversation.PaymentMethod,
		conversation.TransactionID,
		conversation.Status,
		conversation.ResolutionDetails,
		conversationData,
		conversation.ResolvedAt,
		conversation.CreatedAt,
		conversation.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create payment conversation",
			zap.Error(err),
			zap.String("conversation_id", conversation.ConversationID),
		)
		return fmt.Errorf("create payment conversation %s: %w", conversation.ConversationID, err)
	}

	return nil
}

// FindByUserID returns a user's payment conversations newest first
func (pr *paymentConversationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentConversation, error) {
	query := `
		SELECT id, conversation_id, user_id, booking_id, payment_reference,
		       conversation_type, amount_discussed, currency, payment_method,
		       transaction_id, status, resolution_details, conversation_data,
		       resolved_at, created_at, updated_at
		FROM payment_conversations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := pr.db.Query(ctx, query, userID)
	if err != nil {
		pr.log.Error("Failed to query payment conversations",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query payment conversations for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var conversations []*entity.PaymentConversation
	for rows.Next() {
		var conversation entity.PaymentConversation
		var conversationData []byte

		err := rows.Scan(
			&conversation.ID,
			&conversation.ConversationID,
			&conversation.UserID,
			&conversation.BookingID,
			&conversation.PaymentReference,
			&conversation.ConversationType,
			&conversation.AmountDiscussed,
			&conversation.Currency,
			&conversation.PaymentMethod,
			&conversation.TransactionID,
			&conversation.Status,
			&conversation.ResolutionDetails,
			&conversationData,
			&conversation.ResolvedAt,
			&conversation.CreatedAt,
			&conversation.UpdatedAt,
		)
		if err != nil {
			pr.log.Error("Failed to scan payment conversation row", zap.Error(err))
			return nil, fmt.Errorf("scan payment conversation row: %w", err)
		}

		conversation.ConversationData = entity.UserInfo{}
		if err := unmarshalBlob(conversationData, &conversation.ConversationData); err != nil {
			return nil, err
		}

		conversations = append(conversations, &conversation)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment conversation rows: %w", err)
	}

	return conversations, nil
}
